package domain

import "time"

type Product struct {
	ItemID  string
	Name    string
	SetName *string
	// EarliestDate is the first date the item has a price observation.
	// Ledger entries dated before it are adjusted forward onto it.
	EarliestDate *time.Time
}
