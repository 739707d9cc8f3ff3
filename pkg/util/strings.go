package util

import "strings"

// ParseBoolDefault interprets a boolean query string the way the API
// documents it: only the literal "true" (any case) is true.
func ParseBoolDefault(s string, def bool) bool {
	if s == "" {
		return def
	}
	return strings.EqualFold(s, "true")
}

// SplitSymbols splits a comma-separated ticker list, trimming whitespace
// and dropping empty entries.
func SplitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p))
	}
	return out
}
