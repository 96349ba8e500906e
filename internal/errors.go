package binder_errors

import (
	"fmt"
	"time"
)

// LedgerIntegrityError means the ledger itself is structurally bad: an
// unknown entry kind, a non-positive quantity, or more units disposed or
// withdrawn than were ever acquired. It aborts a recompilation pass so the
// previously committed derived state stays intact.
type LedgerIntegrityError struct {
	ItemID string
	Cutoff time.Time
	Reason string
}

func (e LedgerIntegrityError) Error() string {
	if e.Cutoff.IsZero() {
		return fmt.Sprintf("ledger integrity fault for item %s: %s", e.ItemID, e.Reason)
	}
	return fmt.Sprintf("ledger integrity fault for item %s at cutoff %s: %s", e.ItemID, e.Cutoff.Format("2006-01-02"), e.Reason)
}

type ErrUnknownProduct struct {
	ItemID string
}

func (e ErrUnknownProduct) Error() string {
	return fmt.Sprintf("unknown product %s", e.ItemID)
}

type ErrInsufficientInventory struct {
	ItemID    string
	Current   int32
	Requested int32
}

func (e ErrInsufficientInventory) Error() string {
	return fmt.Sprintf("insufficient sealed inventory for %s: have %d, requested %d", e.ItemID, e.Current, e.Requested)
}
