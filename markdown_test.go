package pagescribe_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagescribe"
	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders headings at their level", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.Heading{Level: 3, Text: "Details"},
		})

		out := pagescribe.RenderMarkdown(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "### Details\n")
	})

	t.Run("renders unordered list with dash prefixes", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.List{Ordered: false, Items: []string{"X", "Y"}},
		})

		out := pagescribe.RenderMarkdown(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "- X\n")
		assert.Contains(t, out, "- Y\n")
		assert.NotContains(t, out, "1. X")
	})

	t.Run("renders ordered list with 1-based numbering", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.List{Ordered: true, Items: []string{"first", "second", "third"}},
		})

		out := pagescribe.RenderMarkdown(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "1. first\n")
		assert.Contains(t, out, "2. second\n")
		assert.Contains(t, out, "3. third\n")
	})

	t.Run("renders quote with blockquote prefix", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.Quote{Text: "Stay hungry"},
		})

		out := pagescribe.RenderMarkdown(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "> Stay hungry\n")
	})

	t.Run("includes title, source URL and generation date", func(t *testing.T) {
		t.Parallel()

		out := pagescribe.RenderMarkdown(testDocument(), pagescribe.RenderOptions{})

		assert.True(t, strings.HasPrefix(out, "# Test Page\n"))
		assert.Contains(t, out, "https://example.com/page")
		assert.Contains(t, out, "15. Januar 2025")
	})

	t.Run("omits title line for empty title", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Title = ""

		out := pagescribe.RenderMarkdown(doc, pagescribe.RenderOptions{})

		assert.True(t, strings.HasPrefix(out, "Quelle: "))
	})

	t.Run("footer appears exactly once when set", func(t *testing.T) {
		t.Parallel()

		out := pagescribe.RenderMarkdown(testDocument(), pagescribe.RenderOptions{FooterText: "Acme"})

		assert.Equal(t, 1, strings.Count(out, "Acme"))
		assert.Contains(t, out, "---\n\nAcme\n")
	})

	t.Run("empty footer omits the separator", func(t *testing.T) {
		t.Parallel()

		out := pagescribe.RenderMarkdown(testDocument(), pagescribe.RenderOptions{})

		assert.NotContains(t, out, "---")
	})

	t.Run("zero sections still yields a valid document", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections(nil)

		out := pagescribe.RenderMarkdown(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "# Test Page")
		assert.Contains(t, out, "Quelle: https://example.com/page")
	})
}
