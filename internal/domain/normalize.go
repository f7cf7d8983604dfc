package domain

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var plainTextPolicy = bluemonday.StrictPolicy()

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PlainText strips all markup from user-entered text and trims it.
// HTML entities produced by sanitising are decoded back so that
// "R&D" round-trips unchanged.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(s)))
}

// SplitSkills splits a comma-separated skill list into lower-cased,
// trimmed tokens. Empty tokens are dropped.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MatchesSkills reports whether any token of seekerSkills occurs,
// case-insensitively, within jobSkills.
func MatchesSkills(seekerSkills []string, jobSkills string) bool {
	haystack := strings.ToLower(jobSkills)
	for _, s := range seekerSkills {
		if strings.Contains(haystack, s) {
			return true
		}
	}
	return false
}
