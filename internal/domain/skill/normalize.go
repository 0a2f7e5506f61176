package skill

import (
	"regexp"
	"strings"
)

var tokenSplitRe = regexp.MustCompile(`[\s,]+`)

// Normalize lowercases and trims a skill token for case-insensitive
// comparison. Total: any input, including the empty string, is valid.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Uniq drops empty entries and duplicates while preserving first-seen order.
func Uniq(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Tokenize flattens raw skill entries into a clean unique token list.
// Entries may carry comma or whitespace separated sub-tokens
// (e.g. "react, node"). Case is preserved; callers normalize at
// comparison time.
func Tokenize(entries []string) []string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		raw := strings.TrimSpace(entry)
		if raw == "" {
			continue
		}
		for _, token := range tokenSplitRe.Split(raw, -1) {
			t := strings.TrimSpace(token)
			if t != "" {
				parts = append(parts, t)
			}
		}
	}
	return Uniq(parts)
}

// NormalizeAll maps Normalize over a list and dedups the result.
func NormalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, Normalize(s))
	}
	return Uniq(out)
}
