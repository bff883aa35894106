package main

import (
	"fmt"
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/fs"
	"github.com/fwojciec/pagemeta/goquery"
)

// Run executes the preview command: extract and derive for a single file,
// printing the description that would be injected. A file with no excerpt
// prints nothing and exits zero.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	typ := pagemeta.DocumentType(c.Type)
	if !typ.Known() {
		err := pagemeta.Errorf(pagemeta.EINVALID, "unknown document type %q", c.Type)
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	selectors, err := goquery.Selectors(c.Selectors)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	markup, err := fs.NewStore().Load(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	doc, err := gq.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to parse %s: %v\n", c.File, err)
		return err
	}

	excerpt := goquery.NewExtractor(selectors).Excerpt(doc, typ)
	if excerpt == "" {
		return nil
	}

	bound := c.Length
	if bound == 0 {
		bound = pagemeta.DefaultDescriptionLength
	}
	fmt.Fprintln(deps.Stdout, pagemeta.Describe(excerpt, bound))
	return nil
}
