package coincidence

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms article content HTML into Markdown text.
	// The input should be clean HTML (e.g., from a TextExtractor).
	Convert(html string) (string, error)
}
