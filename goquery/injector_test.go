package goquery_test

import (
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectMeta(t *testing.T) {
	t.Parallel()

	t.Run("appends meta elements to the head", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head><title>Page</title><link rel="stylesheet" href="main.css"></head><body></body></html>`)

		err := goquery.InjectMeta(doc, []pagemeta.MetaTag{
			pagemeta.NameTag("description", "A short description."),
			pagemeta.PropertyTag("og:title", "Page"),
		})
		require.NoError(t, err)

		sel := doc.Find(`head meta[name="description"]`)
		require.Equal(t, 1, sel.Length())
		content, _ := sel.Attr("content")
		assert.Equal(t, "A short description.", content)

		sel = doc.Find(`head meta[property="og:title"]`)
		require.Equal(t, 1, sel.Length())
		content, _ = sel.Attr("content")
		assert.Equal(t, "Page", content)
	})

	t.Run("preserves existing head children", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head><title>Page</title><link rel="stylesheet" href="main.css"></head><body></body></html>`)

		err := goquery.InjectMeta(doc, []pagemeta.MetaTag{
			pagemeta.NameTag("description", "A short description."),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, doc.Find("head title").Length())
		assert.Equal(t, 1, doc.Find(`head link[href="main.css"]`).Length())

		// New elements are appended after the pre-existing children.
		assert.Equal(t, "meta", gq.NodeName(doc.Find("head").Children().Last()))
	})

	t.Run("appends in call order", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head></head><body></body></html>`)

		err := goquery.InjectMeta(doc, []pagemeta.MetaTag{
			pagemeta.NameTag("description", "first"),
			pagemeta.NameTag("theme-color", "second"),
		})
		require.NoError(t, err)

		metas := doc.Find("head meta")
		require.Equal(t, 2, metas.Length())
		name, _ := metas.First().Attr("name")
		assert.Equal(t, "description", name)
		name, _ = metas.Last().Attr("name")
		assert.Equal(t, "theme-color", name)
	})

	t.Run("does not deduplicate repeated fields", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head></head><body></body></html>`)

		tags := []pagemeta.MetaTag{pagemeta.NameTag("description", "once")}
		require.NoError(t, goquery.InjectMeta(doc, tags))
		require.NoError(t, goquery.InjectMeta(doc, tags))

		assert.Equal(t, 2, doc.Find(`head meta[name="description"]`).Length())
	})

	t.Run("escapes attribute values on serialization", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head></head><body></body></html>`)

		err := goquery.InjectMeta(doc, []pagemeta.MetaTag{
			pagemeta.NameTag("description", `He said "hello" & left.`),
		})
		require.NoError(t, err)

		out, err := doc.Html()
		require.NoError(t, err)
		assert.Contains(t, out, "&#34;hello&#34; &amp; left.")

		content, _ := doc.Find(`head meta[name="description"]`).Attr("content")
		assert.Equal(t, `He said "hello" & left.`, content)
	})
}
