package notifications

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// CycleReport summarizes one conversion cycle for the operator.
type CycleReport struct {
	Fetched   []string
	Ignored   []string
	Converted []string
	Outcome   string
	Result    string
}

// RenderReport formats a cycle report as a fixed-width table block,
// fenced so Telegram's Markdown renderer keeps the alignment.
func RenderReport(report CycleReport) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"Fetched", joinOrDash(report.Fetched)},
		{"Ignored", joinOrDash(report.Ignored)},
		{"Converted", joinOrDash(report.Converted)},
		{"Outcome", report.Outcome},
	})

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	if report.Result != "" {
		b.WriteString(report.Result)
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String()
}

func joinOrDash(symbols []string) string {
	if len(symbols) == 0 {
		return "-"
	}
	return strings.Join(symbols, ", ")
}
