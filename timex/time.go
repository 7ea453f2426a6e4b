package timex

import (
	"strings"
	"time"
)

// patternTokens maps date-pattern tokens (yyyy-MM-dd HH:mm:ss style) to Go
// reference-layout fragments. Longer tokens first so yyyy wins over yy.
var patternTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"SSS", "000"},
	{"a", "PM"},
}

// ToGoLayout converts a yyyy-MM-dd style date pattern to the equivalent Go
// time layout. Characters outside known tokens pass through unchanged.
func ToGoLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, t := range patternTokens {
			if strings.HasPrefix(pattern[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// Parse parses a raw value against a yyyy-MM-dd style pattern.
func Parse(value, pattern string) (time.Time, error) {
	return time.Parse(ToGoLayout(pattern), value)
}
