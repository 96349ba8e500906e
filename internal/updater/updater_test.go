package updater

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_NextRunTime(t *testing.T) {
	t.Run("before nine runs today", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 7, 30, 0, 0, time.UTC)
		require.Equal(t, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), NextRunTime(now))
	})

	t.Run("after nine runs tomorrow", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		require.Equal(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC), NextRunTime(now))
	})

	t.Run("exactly nine runs tomorrow", func(t *testing.T) {
		now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
		require.Equal(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC), NextRunTime(now))
	})
}
