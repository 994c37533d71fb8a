// Package strings holds small helpers for normalising configured string lists.
package strings

import "strings"

// DedupeAndTrim trims each element and drops blanks and repeats, keeping
// first-seen order. A nil or empty input is returned unchanged.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if _, dup := seen[v]; v == "" || dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
