// Package markup turns raw model text into safe HTML fragments.
//
// Only AI-origin text goes through Render; user-authored text is displayed
// as literal text and never treated as rich text. Every HTML-sensitive
// character is entity-escaped before any structural rule runs, so the only
// tags that can appear in the output are the ones this package inserts.
package markup

import (
	"html"
	"regexp"
	"strings"
)

// Substitution order matters: escaping first, then inline emphasis before
// list detection, lists before paragraph splitting. Later rules must never
// re-match text introduced by earlier ones.
var (
	strongStar      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	strongUnder     = regexp.MustCompile(`__(.+?)__`)
	emStar          = regexp.MustCompile(`\*(.+?)\*`)
	emUnder         = regexp.MustCompile(`_(.+?)_`)
	numberedItem    = regexp.MustCompile(`(?m)^(\d+)\.\s+(.+)$`)
	bulletItem      = regexp.MustCompile(`(?m)^[-*+]\s+(.+)$`)
	emptyParagraph  = regexp.MustCompile(`<p>\s*</p>`)
	paragraphBreaks = regexp.MustCompile(`\n\s*\n`)
)

// Render converts one AI reply into an HTML fragment. Pure and
// deterministic: same input, same output, no external state.
func Render(text string) string {
	// 1. Neutralize & < > " ' before anything structural.
	out := html.EscapeString(text)

	// 2-3. Inline emphasis. Strong first so ** is not eaten as two *.
	out = strongStar.ReplaceAllString(out, "<strong>$1</strong>")
	out = strongUnder.ReplaceAllString(out, "<strong>$1</strong>")
	out = emStar.ReplaceAllString(out, "<em>$1</em>")
	out = emUnder.ReplaceAllString(out, "<em>$1</em>")

	// 4-5. List lines.
	out = numberedItem.ReplaceAllString(out, `<div class="numbered-item">$1. $2</div>`)
	out = bulletItem.ReplaceAllString(out, `<div class="bullet-item">• $1</div>`)

	// 6. Paragraphs: wrap, split on blank lines, drop empties.
	out = "<p>" + paragraphBreaks.ReplaceAllString(out, "</p><p>") + "</p>"
	out = emptyParagraph.ReplaceAllString(out, "")

	// 7. Remaining single newlines become line breaks.
	out = strings.ReplaceAll(out, "\n", "<br>")

	return out
}
