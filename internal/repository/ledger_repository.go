package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"binder/internal/db/models/postgres/public/model"
	. "binder/internal/db/models/postgres/public/table"
	"binder/internal/domain"
	"binder/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// LedgerRepository reads and mutates the append-only transaction ledger.
// The recompiler only ever reads; mutation goes through the transaction
// service. Deletes are soft.
type LedgerRepository interface {
	List(tx *sql.Tx, includeDeleted bool) ([]domain.LedgerEntry, error)
	Get(tx *sql.Tx, ledgerEntryID int32) (*domain.LedgerEntry, error)
	Add(tx *sql.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	Update(tx *sql.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	SoftDelete(tx *sql.Tx, ledgerEntryID int32) error
}

type ledgerRepositoryHandler struct {
}

func NewLedgerRepository() LedgerRepository {
	return ledgerRepositoryHandler{}
}

func (h ledgerRepositoryHandler) List(tx *sql.Tx, includeDeleted bool) ([]domain.LedgerEntry, error) {
	stmt := LedgerEntry.SELECT(LedgerEntry.AllColumns)
	if !includeDeleted {
		stmt = stmt.WHERE(LedgerEntry.IsDeleted.IS_FALSE())
	}
	// event date first, then insertion order
	stmt = stmt.ORDER_BY(LedgerEntry.EventDate.ASC(), LedgerEntry.LedgerEntryID.ASC())

	result := []model.LedgerEntry{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return ledgerEntriesFromDb(result), nil
}

func (h ledgerRepositoryHandler) Get(tx *sql.Tx, ledgerEntryID int32) (*domain.LedgerEntry, error) {
	stmt := LedgerEntry.SELECT(LedgerEntry.AllColumns).
		WHERE(LedgerEntry.LedgerEntryID.EQ(postgres.Int32(ledgerEntryID)))

	result := model.LedgerEntry{}
	err := stmt.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("ledger entry %d not found", ledgerEntryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry %d: %w", ledgerEntryID, err)
	}

	entry := ledgerEntryFromDb(result)
	return &entry, nil
}

func (h ledgerRepositoryHandler) Add(tx *sql.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	stmt := LedgerEntry.INSERT(LedgerEntry.MutableColumns).
		MODEL(ledgerEntryToDb(entry)).
		RETURNING(LedgerEntry.AllColumns)

	result := model.LedgerEntry{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	inserted := ledgerEntryFromDb(result)
	return &inserted, nil
}

func (h ledgerRepositoryHandler) Update(tx *sql.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if entry.LedgerEntryID == nil {
		return nil, errors.New("cannot update ledger entry without an id")
	}

	stmt := LedgerEntry.UPDATE(LedgerEntry.MutableColumns).
		MODEL(ledgerEntryToDb(entry)).
		WHERE(LedgerEntry.LedgerEntryID.EQ(postgres.Int32(*entry.LedgerEntryID))).
		RETURNING(LedgerEntry.AllColumns)

	result := model.LedgerEntry{}
	err := stmt.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("ledger entry %d not found", *entry.LedgerEntryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update ledger entry %d: %w", *entry.LedgerEntryID, err)
	}

	updated := ledgerEntryFromDb(result)
	return &updated, nil
}

func (h ledgerRepositoryHandler) SoftDelete(tx *sql.Tx, ledgerEntryID int32) error {
	stmt := LedgerEntry.UPDATE(LedgerEntry.IsDeleted, LedgerEntry.ModifiedAt).
		SET(postgres.Bool(true), postgres.TimestampzT(time.Now().UTC())).
		WHERE(LedgerEntry.LedgerEntryID.EQ(postgres.Int32(ledgerEntryID)))

	result, err := stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %d: %w", ledgerEntryID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("ledger entry %d not found", ledgerEntryID)
	}

	return nil
}

func ledgerEntryFromDb(e model.LedgerEntry) domain.LedgerEntry {
	id := e.LedgerEntryID
	return domain.LedgerEntry{
		LedgerEntryID: &id,
		ItemID:        e.ItemID,
		ItemName:      e.ItemName,
		Kind:          e.Kind,
		Quantity:      e.Quantity,
		UnitPrice:     e.UnitPrice,
		TotalAmount:   e.TotalAmount,
		EventDate:     util.Day(e.EventDate),
		RecordedDate:  util.Day(e.RecordedDate),
		DateAdjusted:  e.DateAdjusted,
		Notes:         e.Notes,
		Deleted:       e.IsDeleted,
	}
}

func ledgerEntriesFromDb(entries []model.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = ledgerEntryFromDb(e)
	}
	return out
}

func ledgerEntryToDb(e domain.LedgerEntry) model.LedgerEntry {
	m := model.LedgerEntry{
		ItemID:       e.ItemID,
		ItemName:     e.ItemName,
		Kind:         e.Kind,
		Quantity:     e.Quantity,
		UnitPrice:    e.UnitPrice,
		TotalAmount:  e.TotalAmount,
		EventDate:    util.Day(e.EventDate),
		RecordedDate: util.Day(e.RecordedDate),
		DateAdjusted: e.DateAdjusted,
		Notes:        e.Notes,
		IsDeleted:    e.Deleted,
		CreatedAt:    time.Now().UTC(),
		ModifiedAt:   time.Now().UTC(),
	}
	if e.LedgerEntryID != nil {
		m.LedgerEntryID = *e.LedgerEntryID
	}
	// keep total_amount consistent with quantity * unit_price when the
	// caller did not set it
	if m.TotalAmount == nil && m.UnitPrice != nil {
		m.TotalAmount = util.DecimalPtr(m.UnitPrice.Mul(decimal.NewFromInt32(m.Quantity)))
	}
	return m
}
