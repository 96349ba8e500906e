package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"binder/internal/domain"
	"binder/internal/util"
)

func TestValuationRepository(t *testing.T) {
	t.Run("replace and read back", func(t *testing.T) {
		tx := testTx(t)
		repo := NewValuationRepository()
		require.NoError(t, repo.AcquireRebuildLock(tx))

		series := []domain.DailyValuation{
			{
				Date:                  day("2024-01-01"),
				TotalCostBasis:        dec(200),
				TotalMarketValue:      dec(200),
				UnrealizedPnl:         dec(0),
				CumulativeRealizedPnl: dec(0),
			},
			{
				Date:                  day("2024-01-03"),
				TotalCostBasis:        dec(200),
				TotalMarketValue:      dec(260),
				UnrealizedPnl:         dec(60),
				CumulativeRealizedPnl: dec(0),
			},
		}
		history := []domain.ItemDailyHistory{
			{
				ItemID:                  "12345",
				Date:                    day("2024-01-01"),
				CumulativeAcquireAmount: dec(200),
				CumulativeCostBasis:     dec(200),
				SealedQuantity:          2,
				CostBasisQuantity:       2,
				AverageCostPerUnit:      dec(100),
			},
		}
		require.NoError(t, repo.ReplaceSeries(tx, series, history))

		latest, err := repo.Latest(tx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		require.True(t, util.SameDay(day("2024-01-03"), latest.Date))
		require.True(t, latest.TotalMarketValue.Equal(dec(260)))

		all, err := repo.ListSeries(tx, nil, nil)
		require.NoError(t, err)
		require.Len(t, all, 2)

		start := day("2024-01-02")
		windowed, err := repo.ListSeries(tx, &start, nil)
		require.NoError(t, err)
		require.Len(t, windowed, 1)

		itemHistory, err := repo.ItemHistory(tx, "12345")
		require.NoError(t, err)
		require.Len(t, itemHistory, 1)
		require.True(t, itemHistory[0].AverageCostPerUnit.Equal(dec(100)))
	})

	t.Run("replace overwrites prior series", func(t *testing.T) {
		tx := testTx(t)
		repo := NewValuationRepository()
		require.NoError(t, repo.AcquireRebuildLock(tx))

		first := []domain.DailyValuation{{
			Date:             day("2024-01-01"),
			TotalCostBasis:   dec(100),
			TotalMarketValue: dec(100),
		}}
		require.NoError(t, repo.ReplaceSeries(tx, first, nil))

		second := []domain.DailyValuation{{
			Date:             day("2024-02-01"),
			TotalCostBasis:   dec(300),
			TotalMarketValue: dec(330),
		}}
		require.NoError(t, repo.ReplaceSeries(tx, second, nil))

		all, err := repo.ListSeries(tx, nil, nil)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.True(t, util.SameDay(day("2024-02-01"), all[0].Date))
	})

	t.Run("empty series has no latest row", func(t *testing.T) {
		tx := testTx(t)
		repo := NewValuationRepository()
		require.NoError(t, repo.AcquireRebuildLock(tx))
		require.NoError(t, repo.ReplaceSeries(tx, nil, nil))

		latest, err := repo.Latest(tx)
		require.NoError(t, err)
		require.Nil(t, latest)
	})
}
