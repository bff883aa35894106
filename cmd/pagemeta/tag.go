package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/batch"
	"github.com/fwojciec/pagemeta/fs"
	"github.com/fwojciec/pagemeta/goquery"
	pmslog "github.com/fwojciec/pagemeta/slog"
	"github.com/fwojciec/pagemeta/yaml"
)

// Run executes the tag command.
func (c *TagCmd) Run(deps *Dependencies) error {
	site, err := c.siteMeta()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	selectors, err := goquery.Selectors(site.Selectors)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	manifest, err := fs.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	outputDir := c.Output
	if outputDir == "" {
		outputDir = filepath.Dir(c.Manifest)
	}

	var tagger pagemeta.PageTagger = goquery.NewTagger(selectors, *site)
	if deps.Verbose {
		tagger = pmslog.NewLoggingTagger(tagger, deps.Logger)
	}

	processor := &batch.Processor{
		Tagger:      tagger,
		Store:       fs.NewStore(),
		Concurrency: site.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			deps.Logger.Info("tagging started", "files", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := processor.Process(deps.Ctx, manifest, c.Source, outputDir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Tagged %d of %d files", result.Tagged, result.Total)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

// siteMeta assembles site metadata from the optional config file and flags.
// Flags override file values.
func (c *TagCmd) siteMeta() (*pagemeta.SiteMeta, error) {
	site := &pagemeta.SiteMeta{}
	if c.Config != "" {
		loaded, err := yaml.LoadSiteMeta(c.Config)
		if err != nil {
			return nil, err
		}
		site = loaded
	}
	if c.SiteName != "" {
		site.SiteName = c.SiteName
	}
	if c.Image != "" {
		site.ImageURL = c.Image
	}
	if c.ThemeColor != "" {
		site.ThemeColor = c.ThemeColor
	}
	if c.Length != 0 {
		site.DescriptionLength = c.Length
	}
	if c.Selectors != "" {
		site.Selectors = c.Selectors
	}
	if c.Concurrency != 0 {
		site.Concurrency = c.Concurrency
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}
