package compare

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultFilePatterns are the file names the comparison service accepts.
var DefaultFilePatterns = []string{"*.{fasta,fa,txt}"}

// MatchesPatterns reports whether the base name of path matches any of the
// glob patterns. Matching is case-insensitive. An empty pattern list matches
// everything.
func MatchesPatterns(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	name := strings.ToLower(filepath.Base(path))
	for _, p := range patterns {
		ok, err := doublestar.Match(strings.ToLower(p), name)
		if err == nil && ok {
			return true
		}
	}
	return false
}
