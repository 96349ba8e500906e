package recompile

import (
	"database/sql"
	"time"

	"binder/internal/domain"

	"github.com/shopspring/decimal"
)

// Store contracts the recompiler consumes. Satisfied by the repository
// package; mocked in tests (see store_mock.go).

type LedgerStore interface {
	List(tx *sql.Tx, includeDeleted bool) ([]domain.LedgerEntry, error)
}

type PriceStore interface {
	ListAvailableDates(tx *sql.Tx) ([]time.Time, error)
	ReadSnapshot(tx *sql.Tx, date time.Time) (map[string]decimal.Decimal, error)
}

type HoldingStore interface {
	Replace(tx *sql.Tx, holdings []domain.ItemHolding) error
	List(tx *sql.Tx) ([]domain.ItemHolding, error)
}

type ValuationStore interface {
	AcquireRebuildLock(tx *sql.Tx) error
	ReplaceSeries(tx *sql.Tx, series []domain.DailyValuation, history []domain.ItemDailyHistory) error
	Latest(tx *sql.Tx) (*domain.DailyValuation, error)
}
