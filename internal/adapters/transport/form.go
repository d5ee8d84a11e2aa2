package transport

import (
	"net/url"
	"strings"
)

// Form is an ordered application/x-www-form-urlencoded body. Unlike
// url.Values it keeps insertion order and allows repeated keys.
type Form struct {
	pairs [][2]string
}

// Add appends key=value. Empty values are skipped.
func (f *Form) Add(key, value string) {
	if value == "" {
		return
	}
	f.pairs = append(f.pairs, [2]string{key, value})
}

// Get returns the first value stored under key.
func (f *Form) Get(key string) string {
	for _, p := range f.pairs {
		if p[0] == key {
			return p[1]
		}
	}
	return ""
}

// Encode renders the body.
func (f *Form) Encode() string {
	var b strings.Builder
	for i, p := range f.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// Bytes renders the body for a Request.
func (f *Form) Bytes() []byte {
	return []byte(f.Encode())
}
