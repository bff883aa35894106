package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	t.Parallel()

	t.Run("empty name resolves to the modern set", func(t *testing.T) {
		t.Parallel()

		s, err := goquery.Selectors("")

		require.NoError(t, err)
		assert.Equal(t, "modern", s.Name)
	})

	t.Run("resolves modern by name", func(t *testing.T) {
		t.Parallel()

		s, err := goquery.Selectors("modern")

		require.NoError(t, err)
		assert.Equal(t, goquery.ModernSelectors(), s)
	})

	t.Run("resolves legacy by name", func(t *testing.T) {
		t.Parallel()

		s, err := goquery.Selectors("legacy")

		require.NoError(t, err)
		assert.Equal(t, goquery.LegacySelectors(), s)
	})

	t.Run("unknown name is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.Selectors("docusaurus")

		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})
}
