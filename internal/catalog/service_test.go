package catalog

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	binder_errors "binder/internal"
	"binder/internal/logging"
	"binder/internal/util"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(s string) time.Time {
	t, err := util.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func Test_BackfillEarliestDates(t *testing.T) {
	t.Run("stamps first observation date per item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productStore := NewMockProductStore(ctrl)
		priceStore := NewMockPriceStore(ctrl)
		service := NewService(productStore, priceStore, logging.NewSilentLogger())

		priceStore.EXPECT().ListAvailableDates(nil).Return([]time.Time{
			day("2024-01-03"),
			day("2024-01-01"),
		}, nil)
		priceStore.EXPECT().ReadSnapshot(nil, day("2024-01-01")).Return(map[string]decimal.Decimal{
			"item-1": dec(10),
		}, nil)
		priceStore.EXPECT().ReadSnapshot(nil, day("2024-01-03")).Return(map[string]decimal.Decimal{
			"item-1": dec(11),
			"item-2": dec(50),
		}, nil)

		productStore.EXPECT().SetEarliestDate(nil, "item-1", day("2024-01-01")).Return(nil)
		productStore.EXPECT().SetEarliestDate(nil, "item-2", day("2024-01-03")).Return(nil)

		updated, err := service.BackfillEarliestDates(nil)
		require.NoError(t, err)
		require.Equal(t, 2, updated)
	})

	t.Run("priced items missing from the catalog are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productStore := NewMockProductStore(ctrl)
		priceStore := NewMockPriceStore(ctrl)
		service := NewService(productStore, priceStore, logging.NewSilentLogger())

		priceStore.EXPECT().ListAvailableDates(nil).Return([]time.Time{day("2024-01-01")}, nil)
		priceStore.EXPECT().ReadSnapshot(nil, day("2024-01-01")).Return(map[string]decimal.Decimal{
			"item-1":   dec(10),
			"stranger": dec(5),
		}, nil)

		productStore.EXPECT().SetEarliestDate(nil, "item-1", day("2024-01-01")).Return(nil)
		productStore.EXPECT().SetEarliestDate(nil, "stranger", day("2024-01-01")).
			Return(binder_errors.ErrUnknownProduct{ItemID: "stranger"})

		updated, err := service.BackfillEarliestDates(nil)
		require.NoError(t, err)
		require.Equal(t, 1, updated)
	})

	t.Run("no snapshots is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productStore := NewMockProductStore(ctrl)
		priceStore := NewMockPriceStore(ctrl)
		service := NewService(productStore, priceStore, logging.NewSilentLogger())

		priceStore.EXPECT().ListAvailableDates(nil).Return([]time.Time{}, nil)

		updated, err := service.BackfillEarliestDates(nil)
		require.NoError(t, err)
		require.Equal(t, 0, updated)
	})
}
