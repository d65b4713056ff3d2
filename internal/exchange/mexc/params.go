package mexc

import (
	"net/url"
	"strings"
)

// Params holds request parameters in insertion order. The exchange
// verifies the signature against the exact byte sequence of the encoded
// query, so key order must survive encoding; url.Values cannot be used
// because its Encode sorts keys.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty parameter list.
func NewParams() *Params {
	return &Params{
		values: make(map[string]string),
	}
}

// Set adds a parameter, keeping the position of a key that is already
// present.
func (p *Params) Set(key, value string) *Params {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value for key, or an empty string.
func (p *Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.values[key]
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Encode serializes the parameters as key=value pairs joined by '&',
// in insertion order, percent-encoding keys and values.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, key := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percentEncode(key))
		b.WriteByte('=')
		b.WriteString(percentEncode(p.values[key]))
	}
	return b.String()
}

// percentEncode escapes per RFC 3986. QueryEscape is close but encodes
// spaces as '+', which the exchange does not accept in signed strings.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
