package htmltomarkdown_test

import (
	"testing"

	"github.com/mkohler/coincidence"
	"github.com/mkohler/coincidence/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs to prose", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Ada Lovelace was an English mathematician.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Ada Lovelace was an English mathematician.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h2>Early life</h2><p>Some text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Early life")
		assert.Contains(t, md, "Some text.")
	})

	t.Run("drops tags but keeps emphasized text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>The <b>Analytical Engine</b> was proposed by <i>Babbage</i>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Analytical Engine")
		assert.Contains(t, md, "Babbage")
		assert.NotContains(t, md, "<b>")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, coincidence.EINVALID, coincidence.ErrorCode(err))
	})
}
