package holdings

import (
	"fmt"
	"time"

	binder_errors "binder/internal"
	"binder/internal/db/models/postgres/public/model"
	"binder/internal/domain"
	"binder/internal/util"

	"github.com/shopspring/decimal"
)

type accumulator struct {
	itemName      string
	acquired      int32
	disposed      int32
	withdrawn     int32
	acquireAmount decimal.Decimal
	disposeAmount decimal.Decimal
}

// Compute folds the non-deleted ledger up to and including cutoff into
// per-item aggregate state. Pure function: no store access, no mutation of
// its inputs.
//
// Cost basis is net-proceeds: cumulative acquire amount minus cumulative
// dispose amount. Disposal proceeds reduce the carried basis directly
// instead of removing a proportional share of it. The average cost per unit
// is acquisition-only and is never reduced by disposals; it is what realized
// P&L is measured against.
func Compute(entries []domain.LedgerEntry, cutoff time.Time) (map[string]domain.ItemHolding, error) {
	cutoff = util.Day(cutoff)

	byItem := map[string]*accumulator{}
	for _, e := range entries {
		if e.Deleted {
			continue
		}
		// structural validation covers the whole ledger, not just the
		// entries inside the cutoff
		if e.Quantity <= 0 {
			return nil, binder_errors.LedgerIntegrityError{
				ItemID: e.ItemID,
				Cutoff: cutoff,
				Reason: fmt.Sprintf("entry has non-positive quantity %d", e.Quantity),
			}
		}
		switch e.Kind {
		case model.EntryKind_Acquire, model.EntryKind_Dispose, model.EntryKind_Withdraw:
		default:
			return nil, binder_errors.LedgerIntegrityError{
				ItemID: e.ItemID,
				Cutoff: cutoff,
				Reason: fmt.Sprintf("unknown entry kind %q", e.Kind),
			}
		}

		if util.Day(e.EventDate).After(cutoff) {
			continue
		}

		a, ok := byItem[e.ItemID]
		if !ok {
			a = &accumulator{itemName: e.ItemName}
			byItem[e.ItemID] = a
		}

		switch e.Kind {
		case model.EntryKind_Acquire:
			a.acquired += e.Quantity
			a.acquireAmount = a.acquireAmount.Add(e.Amount())
		case model.EntryKind_Dispose:
			a.disposed += e.Quantity
			a.disposeAmount = a.disposeAmount.Add(e.Amount())
		case model.EntryKind_Withdraw:
			a.withdrawn += e.Quantity
		}
	}

	out := map[string]domain.ItemHolding{}
	for itemID, a := range byItem {
		costBasisQuantity := a.acquired - a.disposed
		if costBasisQuantity < 0 {
			return nil, binder_errors.LedgerIntegrityError{
				ItemID: itemID,
				Cutoff: cutoff,
				Reason: fmt.Sprintf("disposed %d units but only acquired %d", a.disposed, a.acquired),
			}
		}
		sealedQuantity := costBasisQuantity - a.withdrawn
		if sealedQuantity < 0 {
			return nil, binder_errors.LedgerIntegrityError{
				ItemID: itemID,
				Cutoff: cutoff,
				Reason: fmt.Sprintf("withdrew %d units but only %d remained sealed", a.withdrawn, costBasisQuantity),
			}
		}

		averageCost := decimal.Zero
		if a.acquired > 0 {
			averageCost = a.acquireAmount.Div(decimal.NewFromInt32(a.acquired))
		}

		out[itemID] = domain.ItemHolding{
			ItemID:             itemID,
			ItemName:           a.itemName,
			TotalAcquired:      a.acquired,
			TotalDisposed:      a.disposed,
			TotalWithdrawn:     a.withdrawn,
			SealedQuantity:     sealedQuantity,
			CostBasisQuantity:  costBasisQuantity,
			TotalCostBasis:     a.acquireAmount.Sub(a.disposeAmount).Round(2),
			AverageCostPerUnit: averageCost.Round(2),
		}
	}

	return out, nil
}

// AverageAcquireCost is the acquisition-only average unit cost of an item
// over entries dated on or before cutoff, unrounded. Disposals and
// withdrawals do not move it.
func AverageAcquireCost(entries []domain.LedgerEntry, itemID string, cutoff time.Time) decimal.Decimal {
	cutoff = util.Day(cutoff)

	var quantity int32
	amount := decimal.Zero
	for _, e := range entries {
		if e.Deleted || e.ItemID != itemID || e.Kind != model.EntryKind_Acquire {
			continue
		}
		if util.Day(e.EventDate).After(cutoff) {
			continue
		}
		quantity += e.Quantity
		amount = amount.Add(e.Amount())
	}

	if quantity <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt32(quantity))
}

// CumulativeAmounts returns the unrounded cumulative acquire and dispose
// amounts for an item up to and including cutoff. Feeds the per-item daily
// history rows.
func CumulativeAmounts(entries []domain.LedgerEntry, itemID string, cutoff time.Time) (acquire, dispose decimal.Decimal) {
	cutoff = util.Day(cutoff)

	acquire, dispose = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.Deleted || e.ItemID != itemID {
			continue
		}
		if util.Day(e.EventDate).After(cutoff) {
			continue
		}
		switch e.Kind {
		case model.EntryKind_Acquire:
			acquire = acquire.Add(e.Amount())
		case model.EntryKind_Dispose:
			dispose = dispose.Add(e.Amount())
		}
	}
	return acquire, dispose
}
