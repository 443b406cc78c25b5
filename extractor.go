package coincidence

// ExtractResult holds the content extracted from a rendered article page.
type ExtractResult struct {
	// Title is the article title as displayed on the page.
	Title string

	// ContentHTML is the article body as HTML.
	// Page chrome (navigation, infoboxes, edit links) has been removed.
	ContentHTML string
}

// TextExtractor extracts the article body from rendered page HTML,
// removing the page chrome that surrounds it.
type TextExtractor interface {
	// Extract processes raw page HTML and returns the article content.
	Extract(html string) (*ExtractResult, error)
}
