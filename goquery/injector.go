package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InjectMeta appends one <meta> element per tag as the last children of the
// document's <head>, in call order. The document is mutated in place;
// serialization is the caller's responsibility.
//
// Injection does not deduplicate: injecting the same logical field twice
// produces two elements. Callers inject at most once per field per document.
func InjectMeta(doc *goquery.Document, tags []pagemeta.MetaTag) error {
	head := doc.Find("head").First()
	if head.Length() == 0 {
		return pagemeta.Errorf(pagemeta.EINVALID, "document has no head element")
	}
	for _, tag := range tags {
		head.AppendNodes(metaNode(tag))
	}
	return nil
}

// metaNode builds the element node for one meta tag. Attribute values are
// escaped by the HTML renderer on serialization.
func metaNode(tag pagemeta.MetaTag) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "meta",
		DataAtom: atom.Meta,
		Attr: []html.Attribute{
			{Key: tag.Attr, Val: tag.Value},
			{Key: "content", Val: tag.Content},
		},
	}
}
