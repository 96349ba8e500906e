package recompile

import (
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	binder_errors "binder/internal"
	"binder/internal/db/models/postgres/public/model"
	"binder/internal/domain"
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

func entry(itemID string, kind model.EntryKind, quantity int32, unitPrice float64, date string) domain.LedgerEntry {
	e := domain.LedgerEntry{
		ItemID:       itemID,
		ItemName:     itemID,
		Kind:         kind,
		Quantity:     quantity,
		EventDate:    day(date),
		RecordedDate: day(date),
	}
	if kind != model.EntryKind_Withdraw {
		e.UnitPrice = util.DecimalPtr(dec(unitPrice))
	}
	return e
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockLedgerStore, *MockPriceStore, *MockHoldingStore, *MockValuationStore) {
	ledgerStore := NewMockLedgerStore(ctrl)
	priceStore := NewMockPriceStore(ctrl)
	holdingStore := NewMockHoldingStore(ctrl)
	valuationStore := NewMockValuationStore(ctrl)

	service := NewService(ledgerStore, priceStore, holdingStore, valuationStore, logging.NewSilentLogger())
	service.Now = func() time.Time { return day("2024-01-05") }

	return service, ledgerStore, priceStore, holdingStore, valuationStore
}

func Test_RecompileAllTx(t *testing.T) {
	t.Run("rebuilds holdings and series, summary from last row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, ledgerStore, priceStore, holdingStore, valuationStore := newTestService(ctrl)

		valuationStore.EXPECT().AcquireRebuildLock(nil).Return(nil)
		ledgerStore.EXPECT().List(nil, false).Return([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 100, "2024-01-01"),
		}, nil)
		priceStore.EXPECT().ListAvailableDates(nil).Return([]time.Time{day("2024-01-03")}, nil)
		priceStore.EXPECT().ReadSnapshot(nil, day("2024-01-03")).Return(map[string]decimal.Decimal{
			"item-1": dec(130),
		}, nil)

		var storedHoldings []domain.ItemHolding
		holdingStore.EXPECT().Replace(nil, gomock.Any()).DoAndReturn(
			func(tx *sql.Tx, holdings []domain.ItemHolding) error {
				storedHoldings = holdings
				return nil
			},
		)
		var storedSeries []domain.DailyValuation
		var storedHistory []domain.ItemDailyHistory
		valuationStore.EXPECT().ReplaceSeries(nil, gomock.Any(), gomock.Any()).DoAndReturn(
			func(tx *sql.Tx, series []domain.DailyValuation, history []domain.ItemDailyHistory) error {
				storedSeries = series
				storedHistory = history
				return nil
			},
		)

		summary, err := service.RecompileAllTx(nil)
		require.NoError(t, err)

		require.Len(t, storedHoldings, 1)
		require.EqualValues(t, 2, storedHoldings[0].SealedQuantity)

		// axis: event date, price date, today
		require.Len(t, storedSeries, 3)
		require.Len(t, storedHistory, 3)

		last := storedSeries[len(storedSeries)-1]
		require.EqualValues(t, 1, summary.ItemCount)
		require.EqualValues(t, 2, summary.TotalQuantity)
		require.True(t, summary.TotalCostBasis.Equal(last.TotalCostBasis))
		require.True(t, summary.CurrentMarketValue.Equal(last.TotalMarketValue))
		require.True(t, summary.UnrealizedPnl.Equal(last.UnrealizedPnl))
		require.True(t, summary.CurrentMarketValue.Equal(dec(260)))
	})

	t.Run("integrity fault aborts before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, ledgerStore, priceStore, _, valuationStore := newTestService(ctrl)

		valuationStore.EXPECT().AcquireRebuildLock(nil).Return(nil)
		ledgerStore.EXPECT().List(nil, false).Return([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Dispose, 1, 100, "2024-01-01"),
		}, nil)
		priceStore.EXPECT().ListAvailableDates(nil).Return([]time.Time{}, nil)

		// no Replace or ReplaceSeries calls expected

		_, err := service.RecompileAllTx(nil)
		var integrityErr binder_errors.LedgerIntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})

	t.Run("empty ledger clears derived state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, ledgerStore, priceStore, holdingStore, valuationStore := newTestService(ctrl)

		valuationStore.EXPECT().AcquireRebuildLock(nil).Return(nil)
		ledgerStore.EXPECT().List(nil, false).Return([]domain.LedgerEntry{}, nil)
		priceStore.EXPECT().ListAvailableDates(nil).Return([]time.Time{}, nil)
		holdingStore.EXPECT().Replace(nil, []domain.ItemHolding{}).Return(nil)
		valuationStore.EXPECT().ReplaceSeries(nil, []domain.DailyValuation{}, []domain.ItemDailyHistory{}).Return(nil)

		summary, err := service.RecompileAllTx(nil)
		require.NoError(t, err)
		require.EqualValues(t, 0, summary.ItemCount)
		require.True(t, summary.CurrentMarketValue.IsZero())
	})
}

func Test_ReadSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, _, _, holdingStore, valuationStore := newTestService(ctrl)

	holdingStore.EXPECT().List(nil).Return([]domain.ItemHolding{
		{ItemID: "item-1", SealedQuantity: 2},
		{ItemID: "item-2", SealedQuantity: 0},
	}, nil)
	valuationStore.EXPECT().Latest(nil).Return(&domain.DailyValuation{
		Date:             day("2024-01-05"),
		TotalCostBasis:   dec(200),
		TotalMarketValue: dec(260),
		UnrealizedPnl:    dec(60),
	}, nil)

	summary, err := service.ReadSummary(nil)
	require.NoError(t, err)

	// the zero-sealed item does not count
	require.EqualValues(t, 1, summary.ItemCount)
	require.EqualValues(t, 2, summary.TotalQuantity)
	require.True(t, summary.TotalCostBasis.Equal(dec(200)))
	require.True(t, summary.CurrentMarketValue.Equal(dec(260)))
	require.True(t, summary.UnrealizedPnl.Equal(dec(60)))
}

func Test_ReadSummary_noSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, _, _, holdingStore, valuationStore := newTestService(ctrl)

	holdingStore.EXPECT().List(nil).Return([]domain.ItemHolding{}, nil)
	valuationStore.EXPECT().Latest(nil).Return(nil, nil)

	summary, err := service.ReadSummary(nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, summary.ItemCount)
	require.True(t, summary.TotalCostBasis.IsZero())
}
