package catalog

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"binder/internal/domain"
)

// Store contracts consumed by the catalog service. Satisfied by the
// repository package; mocked in tests (see deps_mock.go).

type ProductStore interface {
	Get(tx *sql.Tx, itemID string) (*domain.Product, error)
	Search(tx *sql.Tx, query string, limit int64) ([]domain.Product, error)
	Upsert(tx *sql.Tx, products []domain.Product) error
	SetEarliestDate(tx *sql.Tx, itemID string, date time.Time) error
}

type PriceStore interface {
	ListAvailableDates(tx *sql.Tx) ([]time.Time, error)
	ReadSnapshot(tx *sql.Tx, date time.Time) (map[string]decimal.Decimal, error)
}
