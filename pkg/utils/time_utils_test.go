package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseDate("2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseDate("2026-03-01T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		_, err := ParseDate("  2026-03-01  ")
		require.NoError(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("yesterday")
		assert.Error(t, err)
	})
}
