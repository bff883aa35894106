// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingTagger implements pagemeta.PageTagger.
var _ pagemeta.PageTagger = (*LoggingTagger)(nil)

// LoggingTagger wraps a PageTagger with per-page diagnostic logging.
type LoggingTagger struct {
	next   pagemeta.PageTagger
	logger *slog.Logger
}

// NewLoggingTagger creates a new LoggingTagger.
func NewLoggingTagger(next pagemeta.PageTagger, logger *slog.Logger) *LoggingTagger {
	return &LoggingTagger{next: next, logger: logger}
}

// Tag delegates to the wrapped tagger, logging the outcome.
func (t *LoggingTagger) Tag(html string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error) {
	begin := time.Now()
	result, err := t.next.Tag(html, typ)
	if err != nil {
		t.logger.Error("page tagging failed",
			"type", string(typ),
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	t.logger.Debug("page tagged",
		"type", string(typ),
		"tags", len(result.Tags),
		"duration", time.Since(begin),
	)
	return result, nil
}
