package holdings

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	binder_errors "binder/internal"
	"binder/internal/db/models/postgres/public/model"
	"binder/internal/domain"
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
	return domain.LedgerEntry{
		ItemID:       itemID,
		ItemName:     itemID,
		Kind:         kind,
		Quantity:     quantity,
		UnitPrice:    util.DecimalPtr(dec(unitPrice)),
		EventDate:    day(date),
		RecordedDate: day(date),
	}
}

func withdrawal(itemID string, quantity int32, date string) domain.LedgerEntry {
	return domain.LedgerEntry{
		ItemID:       itemID,
		ItemName:     itemID,
		Kind:         model.EntryKind_Withdraw,
		Quantity:     quantity,
		EventDate:    day(date),
		RecordedDate: day(date),
	}
}

func Test_Compute(t *testing.T) {
	t.Run("acquisitions accumulate", func(t *testing.T) {
		out, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
			entry("item-1", model.EntryKind_Acquire, 1, 80, "2024-01-05"),
		}, day("2024-01-31"))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				map[string]domain.ItemHolding{
					"item-1": {
						ItemID:             "item-1",
						ItemName:           "item-1",
						TotalAcquired:      3,
						SealedQuantity:     3,
						CostBasisQuantity:  3,
						TotalCostBasis:     dec(180),
						AverageCostPerUnit: dec(60),
					},
				},
				out,
			),
		)
	})

	t.Run("disposal reduces basis by proceeds", func(t *testing.T) {
		out, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
			entry("item-1", model.EntryKind_Dispose, 1, 60, "2024-01-10"),
		}, day("2024-01-31"))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				map[string]domain.ItemHolding{
					"item-1": {
						ItemID:            "item-1",
						ItemName:          "item-1",
						TotalAcquired:     2,
						TotalDisposed:     1,
						SealedQuantity:    1,
						CostBasisQuantity: 1,
						// 100 paid, 60 recovered
						TotalCostBasis:     dec(40),
						AverageCostPerUnit: dec(50),
					},
				},
				out,
			),
		)
	})

	t.Run("withdrawal reduces sealed quantity only", func(t *testing.T) {
		out, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 3, 10, "2024-01-01"),
			withdrawal("item-1", 1, "2024-01-15"),
		}, day("2024-01-31"))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				map[string]domain.ItemHolding{
					"item-1": {
						ItemID:             "item-1",
						ItemName:           "item-1",
						TotalAcquired:      3,
						TotalWithdrawn:     1,
						SealedQuantity:     2,
						CostBasisQuantity:  3,
						TotalCostBasis:     dec(30),
						AverageCostPerUnit: dec(10),
					},
				},
				out,
			),
		)
	})

	t.Run("total amount preferred over quantity times unit price", func(t *testing.T) {
		e := entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01")
		e.TotalAmount = util.DecimalPtr(dec(90))

		out, err := Compute([]domain.LedgerEntry{e}, day("2024-01-31"))
		require.NoError(t, err)
		require.True(t, out["item-1"].TotalCostBasis.Equal(dec(90)))
		require.True(t, out["item-1"].AverageCostPerUnit.Equal(dec(45)))
	})

	t.Run("entries after cutoff excluded", func(t *testing.T) {
		out, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
			entry("item-1", model.EntryKind_Dispose, 1, 60, "2024-02-10"),
		}, day("2024-01-31"))
		require.NoError(t, err)
		require.EqualValues(t, 0, out["item-1"].TotalDisposed)
		require.True(t, out["item-1"].TotalCostBasis.Equal(dec(100)))
	})

	t.Run("deleted entries ignored", func(t *testing.T) {
		deleted := entry("item-1", model.EntryKind_Dispose, 5, 60, "2024-01-10")
		deleted.Deleted = true

		out, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
			deleted,
		}, day("2024-01-31"))
		require.NoError(t, err)
		require.EqualValues(t, 0, out["item-1"].TotalDisposed)
	})

	t.Run("rounding at the storage boundary", func(t *testing.T) {
		out, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 3, 10.004, "2024-01-01"),
		}, day("2024-01-31"))
		require.NoError(t, err)
		// 30.012 rounds half-up to 30.01
		require.Equal(t, "30.01", out["item-1"].TotalCostBasis.String())
	})

	t.Run("over-disposal is an integrity fault", func(t *testing.T) {
		_, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 1, 50, "2024-01-01"),
			entry("item-1", model.EntryKind_Dispose, 2, 60, "2024-01-10"),
		}, day("2024-01-31"))

		var integrityErr binder_errors.LedgerIntegrityError
		require.ErrorAs(t, err, &integrityErr)
		require.Equal(t, "item-1", integrityErr.ItemID)
	})

	t.Run("over-withdrawal is an integrity fault", func(t *testing.T) {
		_, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
			entry("item-1", model.EntryKind_Dispose, 1, 60, "2024-01-05"),
			withdrawal("item-1", 2, "2024-01-10"),
		}, day("2024-01-31"))

		var integrityErr binder_errors.LedgerIntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})

	t.Run("non-positive quantity rejected even outside cutoff", func(t *testing.T) {
		_, err := Compute([]domain.LedgerEntry{
			entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
			entry("item-1", model.EntryKind_Acquire, 0, 50, "2024-06-01"),
		}, day("2024-01-31"))

		var integrityErr binder_errors.LedgerIntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		bad := entry("item-1", model.EntryKind("TRANSFER"), 1, 50, "2024-01-01")

		_, err := Compute([]domain.LedgerEntry{bad}, day("2024-01-31"))

		var integrityErr binder_errors.LedgerIntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})
}

func Test_AverageAcquireCost(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("item-1", model.EntryKind_Acquire, 3, 10, "2024-01-01"),
		entry("item-1", model.EntryKind_Acquire, 1, 11, "2024-01-05"),
		entry("item-1", model.EntryKind_Dispose, 2, 25, "2024-01-10"),
		entry("item-2", model.EntryKind_Acquire, 1, 99, "2024-01-05"),
	}

	t.Run("unrounded, acquisition only", func(t *testing.T) {
		avg := AverageAcquireCost(entries, "item-1", day("2024-01-31"))
		require.Equal(t, "10.25", avg.String())
	})

	t.Run("disposal does not move it", func(t *testing.T) {
		before := AverageAcquireCost(entries, "item-1", day("2024-01-05"))
		after := AverageAcquireCost(entries, "item-1", day("2024-01-31"))
		require.True(t, before.Equal(after))
	})

	t.Run("zero before first acquisition", func(t *testing.T) {
		avg := AverageAcquireCost(entries, "item-1", day("2023-12-31"))
		require.True(t, avg.IsZero())
	})
}

func Test_CumulativeAmounts(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("item-1", model.EntryKind_Acquire, 2, 50, "2024-01-01"),
		entry("item-1", model.EntryKind_Dispose, 1, 60, "2024-01-10"),
		withdrawal("item-1", 1, "2024-01-15"),
	}

	acquire, dispose := CumulativeAmounts(entries, "item-1", day("2024-01-31"))
	require.True(t, acquire.Equal(dec(100)))
	require.True(t, dispose.Equal(dec(60)))

	acquire, dispose = CumulativeAmounts(entries, "item-1", day("2024-01-05"))
	require.True(t, acquire.Equal(dec(100)))
	require.True(t, dispose.IsZero())
}
