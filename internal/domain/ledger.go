package domain

import (
	"binder/internal/db/models/postgres/public/model"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerEntry struct {
	LedgerEntryID *int32
	ItemID        string
	ItemName      string
	Kind          model.EntryKind
	Quantity      int32
	UnitPrice     *decimal.Decimal
	TotalAmount   *decimal.Decimal
	// EventDate is the accounting date. It may have been adjusted forward
	// to the item's earliest known date; RecordedDate is always as-entered.
	EventDate    time.Time
	RecordedDate time.Time
	DateAdjusted bool
	Notes        *string
	Deleted      bool
}

func (e LedgerEntry) GetDate() time.Time { return e.EventDate }

// Amount is the cash amount of the entry. Prefers the stored total,
// falls back to quantity * unit price.
func (e LedgerEntry) Amount() decimal.Decimal {
	if e.TotalAmount != nil {
		return *e.TotalAmount
	}
	if e.UnitPrice != nil {
		return e.UnitPrice.Mul(decimal.NewFromInt32(e.Quantity))
	}
	return decimal.Zero
}
