package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	pmslog "github.com/fwojciec/pagemeta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTagger_Tag(t *testing.T) {
	t.Parallel()

	t.Run("logs tag count with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Tagger{
			TagFn: func(html string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error) {
				return &pagemeta.TagResult{
					HTML: html,
					Tags: []pagemeta.MetaTag{pagemeta.NameTag("description", "d")},
				}, nil
			},
		}

		tagger := pmslog.NewLoggingTagger(inner, logger)
		result, err := tagger.Tag("<html></html>", pagemeta.TypeConceptual)

		require.NoError(t, err)
		assert.Len(t, result.Tags, 1)
		output := buf.String()
		assert.Contains(t, output, "page tagged")
		assert.Contains(t, output, "type=Conceptual")
		assert.Contains(t, output, "tags=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Tagger{
			TagFn: func(html string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error) {
				return nil, pagemeta.Errorf(pagemeta.EINVALID, "bad markup")
			},
		}

		tagger := pmslog.NewLoggingTagger(inner, logger)
		_, err := tagger.Tag("<html></html>", pagemeta.TypeReference)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "page tagging failed")
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "type=Reference")
	})

	t.Run("is quiet at the default level on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Tagger{
			TagFn: func(html string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error) {
				return &pagemeta.TagResult{HTML: html}, nil
			},
		}

		tagger := pmslog.NewLoggingTagger(inner, logger)
		_, err := tagger.Tag("<html></html>", pagemeta.TypeConceptual)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
