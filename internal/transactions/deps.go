package transactions

import (
	"database/sql"

	"binder/internal/domain"
)

// Store contracts consumed by the mutation service. Satisfied by the
// repository package; mocked in tests (see deps_mock.go).

type LedgerStore interface {
	List(tx *sql.Tx, includeDeleted bool) ([]domain.LedgerEntry, error)
	Get(tx *sql.Tx, ledgerEntryID int32) (*domain.LedgerEntry, error)
	Add(tx *sql.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	Update(tx *sql.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	SoftDelete(tx *sql.Tx, ledgerEntryID int32) error
}

type ProductStore interface {
	Get(tx *sql.Tx, itemID string) (*domain.Product, error)
}

// Recompiler rebuilds the derived tables inside the caller's transaction.
// Satisfied by recompile.Service.
type Recompiler interface {
	RecompileAllTx(tx *sql.Tx) (*domain.Summary, error)
}
