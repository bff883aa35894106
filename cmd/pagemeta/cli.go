package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds configuration and collaborators for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Verbose bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Tag     TagCmd     `cmd:"" help:"Tag the files of a documentation build with SEO metadata"`
	Preview PreviewCmd `cmd:"" help:"Show the description derived from a single HTML file"`

	Verbose bool `short:"v" help:"Enable per-file debug logging"`
}

// TagCmd is the "tag" subcommand.
type TagCmd struct {
	Manifest string `arg:"" help:"Path to the build output manifest (JSON)"`

	Source      string `short:"s" default:"." help:"Source content root"`
	Output      string `short:"o" help:"Rendered site root (default: manifest directory)"`
	Config      string `short:"c" help:"YAML site metadata file"`
	SiteName    string `help:"og:site_name value"`
	Image       string `help:"og:image URL"`
	ThemeColor  string `help:"theme-color value"`
	Length      int    `help:"Description length bound in characters (default 150)"`
	Selectors   string `help:"Selector set: modern or legacy"`
	Concurrency int    `short:"n" help:"Concurrent file limit (default 10)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	File string `arg:"" help:"Path to a rendered HTML file"`

	Type      string `short:"t" default:"Conceptual" help:"Document type: Conceptual or Reference"`
	Length    int    `help:"Description length bound in characters (default 150)"`
	Selectors string `help:"Selector set: modern or legacy"`
}
