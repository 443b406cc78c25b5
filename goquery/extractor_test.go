package goquery_test

import (
	"testing"

	"github.com/mkohler/coincidence"
	"github.com/mkohler/coincidence/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Ada Lovelace - Wikipedia</title></head>
<body>
  <div id="content">
    <h1 id="firstHeading">Ada Lovelace</h1>
    <div id="mw-content-text">
      <table class="infobox"><tr><td>Born 1815</td></tr></table>
      <p>Ada Lovelace was an English mathematician.<sup class="reference">[1]</sup></p>
      <span class="mw-editsection">edit</span>
      <p>She worked on the Analytical Engine.</p>
    </div>
  </div>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and body from an article page", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewExtractor()

		result, err := extractor.Extract(articleHTML)
		require.NoError(t, err)

		assert.Equal(t, "Ada Lovelace", result.Title)
		assert.Contains(t, result.ContentHTML, "English mathematician")
		assert.Contains(t, result.ContentHTML, "Analytical Engine")
	})

	t.Run("removes page chrome from the content", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewExtractor()

		result, err := extractor.Extract(articleHTML)
		require.NoError(t, err)

		assert.NotContains(t, result.ContentHTML, "Born 1815")
		assert.NotContains(t, result.ContentHTML, "[1]")
		assert.NotContains(t, result.ContentHTML, "edit")
	})

	t.Run("falls back to the document title", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewExtractor()

		result, err := extractor.Extract(`<html><head><title>Fallback</title></head><body><p>text</p></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Fallback", result.Title)
		assert.Contains(t, result.ContentHTML, "text")
	})

	t.Run("returns ENOTFOUND for a page with no prose", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewExtractor()

		_, err := extractor.Extract(`<html><body><script>var x;</script></body></html>`)
		require.Error(t, err)
		assert.Equal(t, coincidence.ENOTFOUND, coincidence.ErrorCode(err))
	})
}
