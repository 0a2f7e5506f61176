package skill

import (
	"regexp"
	"strings"
)

// DefaultVocabulary is the baseline keyword set scanned for in job posting
// text when no explicit vocabulary is given. It is also the fallback
// required-skill list for unknown roles.
var DefaultVocabulary = []string{
	"javascript", "typescript", "react", "node", "node.js", "express", "next.js",
	"html", "css", "tailwind",
	"python", "django", "flask",
	"java", "spring",
	"c#", ".net", "asp.net",
	"sql", "postgresql", "mysql", "mongodb",
	"aws", "azure", "gcp",
	"docker", "kubernetes",
	"git", "rest", "graphql",
	"redis", "microservices",
}

// Extract scans job posting text for vocabulary keywords using
// word-boundary matching, so "java" never matches inside "javascript".
// An empty vocabulary falls back to DefaultVocabulary. Matches are
// returned deduplicated, in vocabulary order.
func Extract(listings []Listing, vocab []string) []string {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary
	}
	keywords := NormalizeAll(vocab)

	found := make(map[string]struct{}, len(keywords))
	for _, l := range listings {
		haystack := Normalize(joinNonEmpty(l.Title, l.Description, l.Category))
		if haystack == "" {
			continue
		}
		for _, kw := range keywords {
			if _, ok := found[kw]; ok {
				continue
			}
			if boundaryRe(kw).MatchString(haystack) {
				found[kw] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for _, kw := range keywords {
		if _, ok := found[kw]; ok {
			out = append(out, kw)
		}
	}
	return out
}

// Boundary classes are ASCII on purpose; tokens like "c#" and ".net" keep
// their historical matching behavior.
func boundaryRe(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^a-z0-9])` + regexp.QuoteMeta(keyword) + `([^a-z0-9]|$)`)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
