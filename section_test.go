package pagescribe_test

import (
	"testing"

	"github.com/fwojciec/pagescribe"
	"github.com/stretchr/testify/assert"
)

func TestSectionKey(t *testing.T) {
	t.Parallel()

	t.Run("identical headings share a key", func(t *testing.T) {
		t.Parallel()

		a := pagescribe.Heading{Level: 2, Text: "Getting Started"}
		b := pagescribe.Heading{Level: 2, Text: "Getting Started"}

		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("heading level does not affect the key", func(t *testing.T) {
		t.Parallel()

		a := pagescribe.Heading{Level: 2, Text: "Overview"}
		b := pagescribe.Heading{Level: 3, Text: "Overview"}

		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("key normalizes case and whitespace", func(t *testing.T) {
		t.Parallel()

		a := pagescribe.Paragraph{Text: "Hello   World"}
		b := pagescribe.Paragraph{Text: "hello world"}

		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("different variants with same text have different keys", func(t *testing.T) {
		t.Parallel()

		h := pagescribe.Heading{Level: 1, Text: "Notes"}
		p := pagescribe.Paragraph{Text: "Notes"}
		q := pagescribe.Quote{Text: "Notes"}

		assert.NotEqual(t, h.Key(), p.Key())
		assert.NotEqual(t, p.Key(), q.Key())
		assert.NotEqual(t, h.Key(), q.Key())
	})

	t.Run("list key covers items in order", func(t *testing.T) {
		t.Parallel()

		a := pagescribe.List{Items: []string{"X", "Y"}}
		b := pagescribe.List{Items: []string{"Y", "X"}}

		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("ordered and unordered lists are distinct", func(t *testing.T) {
		t.Parallel()

		a := pagescribe.List{Ordered: false, Items: []string{"X", "Y"}}
		b := pagescribe.List{Ordered: true, Items: []string{"X", "Y"}}

		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("list items do not collide across boundaries", func(t *testing.T) {
		t.Parallel()

		a := pagescribe.List{Items: []string{"ab", "c"}}
		b := pagescribe.List{Items: []string{"a", "bc"}}

		assert.NotEqual(t, a.Key(), b.Key())
	})
}
