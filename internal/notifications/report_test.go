package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRenderReport verifies the report is a fenced fixed-width block
// naming every stage of the cycle.
func TestRenderReport(t *testing.T) {
	rendered := RenderReport(CycleReport{
		Fetched:   []string{"USDC", "DOGE", "SHIB"},
		Ignored:   []string{"USDC"},
		Converted: []string{"DOGE", "SHIB"},
		Outcome:   "converted",
		Result:    `{"successList":["DOGE","SHIB"]}`,
	})

	assert.True(t, strings.HasPrefix(rendered, "```\n"))
	assert.True(t, strings.HasSuffix(rendered, "```"))
	assert.Contains(t, rendered, "DOGE, SHIB")
	assert.Contains(t, rendered, "USDC")
	assert.Contains(t, rendered, "converted")
	assert.Contains(t, rendered, `{"successList":["DOGE","SHIB"]}`)
}

// TestRenderReport_EmptySlices verifies empty stages render as dashes
// instead of blank cells.
func TestRenderReport_EmptySlices(t *testing.T) {
	rendered := RenderReport(CycleReport{
		Outcome: "failed",
		Result:  "MEXC API error 400: invalid asset",
	})

	assert.Contains(t, rendered, "-")
	assert.Contains(t, rendered, "failed")
	assert.Contains(t, rendered, "MEXC API error 400")
}
