package transactions

import (
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

func int32Ptr(i int32) *int32 {
	return &i
}

func testProduct(itemID string, earliest *time.Time) *domain.Product {
	return &domain.Product{
		ItemID:       itemID,
		Name:         "Test Product",
		EarliestDate: earliest,
	}
}

func newTestHandler(ctrl *gomock.Controller) (*serviceHandler, *MockLedgerStore, *MockProductStore, *MockRecompiler) {
	ledgerStore := NewMockLedgerStore(ctrl)
	productStore := NewMockProductStore(ctrl)
	recompiler := NewMockRecompiler(ctrl)

	service := NewService(ledgerStore, productStore, recompiler, logging.NewSilentLogger())
	return service.(*serviceHandler), ledgerStore, productStore, recompiler
}

func Test_buildEntry(t *testing.T) {
	t.Run("valid acquisition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, productStore, _ := newTestHandler(ctrl)

		productStore.EXPECT().Get(nil, "item-1").Return(testProduct("item-1", nil), nil)

		entry, err := h.buildEntry(nil, "item-1", model.EntryKind_Acquire, 2, util.DecimalPtr(dec(50)), nil, day("2024-01-05"), nil)
		require.NoError(t, err)
		require.Equal(t, "item-1", entry.ItemID)
		require.Equal(t, "Test Product", entry.ItemName)
		require.Equal(t, day("2024-01-05"), entry.EventDate)
		require.Equal(t, day("2024-01-05"), entry.RecordedDate)
		require.False(t, entry.DateAdjusted)
	})

	t.Run("event date moved forward to earliest known date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, productStore, _ := newTestHandler(ctrl)

		earliest := day("2024-01-10")
		productStore.EXPECT().Get(nil, "item-1").Return(testProduct("item-1", &earliest), nil)

		entry, err := h.buildEntry(nil, "item-1", model.EntryKind_Acquire, 1, util.DecimalPtr(dec(50)), nil, day("2024-01-05"), nil)
		require.NoError(t, err)
		require.Equal(t, day("2024-01-10"), entry.EventDate)
		// the as-entered date survives
		require.Equal(t, day("2024-01-05"), entry.RecordedDate)
		require.True(t, entry.DateAdjusted)
	})

	t.Run("withdrawal carries no price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, productStore, _ := newTestHandler(ctrl)

		productStore.EXPECT().Get(nil, "item-1").Return(testProduct("item-1", nil), nil)

		entry, err := h.buildEntry(nil, "item-1", model.EntryKind_Withdraw, 1, util.DecimalPtr(dec(50)), util.DecimalPtr(dec(50)), day("2024-01-05"), nil)
		require.NoError(t, err)
		require.Nil(t, entry.UnitPrice)
		require.Nil(t, entry.TotalAmount)
	})

	t.Run("acquisition without a price rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, _ := newTestHandler(ctrl)

		_, err := h.buildEntry(nil, "item-1", model.EntryKind_Acquire, 1, nil, nil, day("2024-01-05"), nil)
		require.Error(t, err)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, _ := newTestHandler(ctrl)

		_, err := h.buildEntry(nil, "item-1", model.EntryKind_Acquire, 0, util.DecimalPtr(dec(50)), nil, day("2024-01-05"), nil)
		require.Error(t, err)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, _ := newTestHandler(ctrl)

		_, err := h.buildEntry(nil, "item-1", model.EntryKind("TRANSFER"), 1, util.DecimalPtr(dec(50)), nil, day("2024-01-05"), nil)
		require.Error(t, err)
	})

	t.Run("unknown product passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, productStore, _ := newTestHandler(ctrl)

		productStore.EXPECT().Get(nil, "missing").Return(nil, binder_errors.ErrUnknownProduct{ItemID: "missing"})

		_, err := h.buildEntry(nil, "missing", model.EntryKind_Acquire, 1, util.DecimalPtr(dec(50)), nil, day("2024-01-05"), nil)
		var unknownErr binder_errors.ErrUnknownProduct
		require.ErrorAs(t, err, &unknownErr)
	})
}

func Test_checkInventory(t *testing.T) {
	ledger := []domain.LedgerEntry{
		{LedgerEntryID: int32Ptr(1), ItemID: "item-1", Kind: model.EntryKind_Acquire, Quantity: 5},
		{LedgerEntryID: int32Ptr(2), ItemID: "item-1", Kind: model.EntryKind_Dispose, Quantity: 2},
		{LedgerEntryID: int32Ptr(3), ItemID: "item-1", Kind: model.EntryKind_Withdraw, Quantity: 1},
		{LedgerEntryID: int32Ptr(4), ItemID: "item-2", Kind: model.EntryKind_Acquire, Quantity: 10},
	}

	t.Run("sufficient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, ledgerStore, _, _ := newTestHandler(ctrl)

		ledgerStore.EXPECT().List(nil, false).Return(ledger, nil)

		require.NoError(t, h.checkInventory(nil, "item-1", 2, nil))
	})

	t.Run("insufficient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, ledgerStore, _, _ := newTestHandler(ctrl)

		ledgerStore.EXPECT().List(nil, false).Return(ledger, nil)

		err := h.checkInventory(nil, "item-1", 3, nil)
		var inventoryErr binder_errors.ErrInsufficientInventory
		require.ErrorAs(t, err, &inventoryErr)
		require.EqualValues(t, 2, inventoryErr.Current)
		require.EqualValues(t, 3, inventoryErr.Requested)
	})

	t.Run("prior version of an updated entry excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, ledgerStore, _, _ := newTestHandler(ctrl)

		ledgerStore.EXPECT().List(nil, false).Return(ledger, nil)

		// dropping the old disposal of 2 frees those units up
		require.NoError(t, h.checkInventory(nil, "item-1", 4, int32Ptr(2)))
	})
}

func Test_ListTransactions(t *testing.T) {
	ledger := []domain.LedgerEntry{
		{LedgerEntryID: int32Ptr(1), ItemID: "item-1", Kind: model.EntryKind_Acquire, Quantity: 5},
		{LedgerEntryID: int32Ptr(2), ItemID: "item-1", Kind: model.EntryKind_Dispose, Quantity: 2},
	}

	t.Run("all kinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, ledgerStore, _, _ := newTestHandler(ctrl)

		ledgerStore.EXPECT().List(nil, false).Return(ledger, nil)

		out, err := h.ListTransactions(nil, nil)
		require.NoError(t, err)
		require.Len(t, out, 2)
	})

	t.Run("filtered by kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, ledgerStore, _, _ := newTestHandler(ctrl)

		ledgerStore.EXPECT().List(nil, false).Return(ledger, nil)

		kind := model.EntryKind_Dispose
		out, err := h.ListTransactions(nil, &kind)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, model.EntryKind_Dispose, out[0].Kind)
	})
}
