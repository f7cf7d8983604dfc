package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into an ILIKE pattern matching any value that
// contains s literally. LIKE wildcards inside s are escaped.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
