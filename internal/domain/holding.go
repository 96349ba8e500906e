package domain

import (
	"github.com/shopspring/decimal"
)

// ItemHolding is the aggregate state of one item after folding the ledger
// up to some cutoff date. Rebuilt wholesale on every recompilation, never
// patched in place.
type ItemHolding struct {
	ItemID         string
	ItemName       string
	TotalAcquired  int32
	TotalDisposed  int32
	TotalWithdrawn int32
	// SealedQuantity is what still carries market value:
	// acquired - disposed - withdrawn.
	SealedQuantity int32
	// CostBasisQuantity is acquired - disposed. Withdrawing an item out of
	// the sealed pool does not reduce the cost-bearing quantity.
	CostBasisQuantity  int32
	TotalCostBasis     decimal.Decimal
	AverageCostPerUnit decimal.Decimal
}
