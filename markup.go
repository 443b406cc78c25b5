package coincidence

import "regexp"

// markupRx matches the bracketed spans that usually carry wiki
// boilerplate: [links], [[internal links]], {{templates}}, and
// ==headings==. Each alternative matches an innermost pair only.
var markupRx = regexp.MustCompile(`\[\[[^\[\]]*\]\]|\[[^\[\]]*\]|\{\{[^{}]*\}\}|==[^=]*==`)

// StripMarkup removes wiki markup spans from article text. The contents
// within these brackets is mostly boilerplate, and boilerplate makes the
// longest common substrings less interesting.
func StripMarkup(text string) string {
	return markupRx.ReplaceAllString(text, "")
}
