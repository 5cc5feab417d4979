package tui

import (
	"html"
	"regexp"
	"strings"
)

// The renderer emits a small fixed tag set; these are the only patterns the
// presenter has to translate back into terminal text.
var (
	strongTag = regexp.MustCompile(`<strong>(.*?)</strong>`)
	emTag     = regexp.MustCompile(`<em>(.*?)</em>`)
	itemTag   = regexp.MustCompile(`<div class="(?:numbered|bullet)-item">(.*?)</div>`)
)

// presentMarkup flattens a rendered HTML fragment into styled terminal
// text. The fragment is trusted by construction: it came out of
// markup.Render, which escaped everything model-supplied. Entities are
// unescaped exactly once, at the end, after all tags are gone.
func presentMarkup(fragment string, theme Theme) string {
	out := fragment

	out = strongTag.ReplaceAllStringFunc(out, func(m string) string {
		return theme.Strong.Render(strongTag.FindStringSubmatch(m)[1])
	})
	out = emTag.ReplaceAllStringFunc(out, func(m string) string {
		return theme.Em.Render(emTag.FindStringSubmatch(m)[1])
	})

	out = itemTag.ReplaceAllString(out, "$1\n")

	out = strings.ReplaceAll(out, "</p>", "\n\n")
	out = strings.ReplaceAll(out, "<p>", "")
	out = strings.ReplaceAll(out, "<br>", "\n")

	out = html.UnescapeString(out)

	return strings.TrimRight(out, "\n")
}
