package present

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// FlattenVisualization reduces the server's visualization fragment to plain
// text for terminals. Each closing block element ends a line; all markup is
// dropped. The fragment is never interpreted beyond that.
func FlattenVisualization(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	s := strings.ReplaceAll(fragment, "</div>", "</div>\n")
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = html.UnescapeString(strict.Sanitize(s))

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
