package readability_test

import (
	"testing"

	"github.com/fwojciec/pagescribe"
	"github.com/fwojciec/pagescribe/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagescribe.Extractor at compile time.
var _ pagescribe.Extractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts sections from article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Reader Mode Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h2>Installation</h2>
<p>Reader mode extraction keeps the substantive body text of an article while
discarding the navigation chrome that surrounds it on the page.</p>
<p>A second paragraph with enough material that the readability scoring
considers this the primary content block of the document.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := readability.NewExtractor()
		doc, err := ext.Extract(html, "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", doc.Metadata.SourceURL)
		require.NotEmpty(t, doc.Sections)

		var texts []string
		for _, s := range doc.Sections {
			if p, ok := s.(pagescribe.Paragraph); ok {
				texts = append(texts, p.Text)
			}
		}
		require.NotEmpty(t, texts)
		assert.Contains(t, texts[0], "Reader mode extraction")
	})

	t.Run("uses the article title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Getting Started - My Docs</title></head>
<body>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page, long enough for the
readability heuristics to score it as an article body.</p>
</main>
</body>
</html>`

		ext := readability.NewExtractor()
		doc, err := ext.Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.NotEmpty(t, doc.Title)
	})

	t.Run("empty input degrades to an empty document", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		doc, err := ext.Extract("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, doc.Sections)
		assert.Empty(t, doc.Title)
		assert.False(t, doc.Metadata.ExtractedAt.IsZero())
	})

	t.Run("invalid source URL is tolerated", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Some content that survives extraction
despite the malformed source URL passed alongside it.</p></main></body></html>`

		ext := readability.NewExtractor()
		doc, err := ext.Extract(html, "://not-a-url")

		require.NoError(t, err)
		assert.Equal(t, "://not-a-url", doc.Metadata.SourceURL)
	})
}
