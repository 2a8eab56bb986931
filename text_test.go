package pagescribe_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagescribe"
	"github.com/stretchr/testify/assert"
)

func TestRenderText(t *testing.T) {
	t.Parallel()

	t.Run("level 1 heading is underlined with equals signs", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.Heading{Level: 1, Text: "Intro"},
		})

		out := pagescribe.RenderText(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "Intro\n=====\n")
	})

	t.Run("level 2 heading is underlined with hyphens", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.Heading{Level: 2, Text: "Setup"},
		})

		out := pagescribe.RenderText(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "Setup\n-----\n")
	})

	t.Run("level 3 heading renders as a bare line", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.Heading{Level: 3, Text: "Deep"},
		})

		out := pagescribe.RenderText(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "Deep\n")
		assert.NotContains(t, out, "Deep\n----")
		assert.NotContains(t, out, "Deep\n====")
	})

	t.Run("unordered items use the bullet glyph", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.List{Ordered: false, Items: []string{"X", "Y"}},
		})

		out := pagescribe.RenderText(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "• X\n")
		assert.Contains(t, out, "• Y\n")
	})

	t.Run("ordered items use 1-based numbering", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.List{Ordered: true, Items: []string{"X", "Y"}},
		})

		out := pagescribe.RenderText(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "1. X\n")
		assert.Contains(t, out, "2. Y\n")
	})

	t.Run("quote is indented and wrapped in quotation marks", func(t *testing.T) {
		t.Parallel()

		doc := testDocument().WithSections([]pagescribe.Section{
			pagescribe.Quote{Text: "Stay hungry"},
		})

		out := pagescribe.RenderText(doc, pagescribe.RenderOptions{})

		assert.Contains(t, out, "    “Stay hungry”\n")
	})

	t.Run("footer separated by a dashed rule exactly once", func(t *testing.T) {
		t.Parallel()

		out := pagescribe.RenderText(testDocument(), pagescribe.RenderOptions{FooterText: "Acme"})

		assert.Equal(t, 1, strings.Count(out, "Acme"))
		assert.Contains(t, out, strings.Repeat("-", 40)+"\nAcme\n")
	})

	t.Run("empty footer omits the rule", func(t *testing.T) {
		t.Parallel()

		out := pagescribe.RenderText(testDocument(), pagescribe.RenderOptions{})

		assert.NotContains(t, out, strings.Repeat("-", 40))
	})

	t.Run("generation date derives from the captured extraction time", func(t *testing.T) {
		t.Parallel()

		out := pagescribe.RenderText(testDocument(), pagescribe.RenderOptions{})

		assert.Contains(t, out, "Erstellt am: 15. Januar 2025")
	})
}
