package transactions

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"binder/internal/db/models/postgres/public/model"
	db "binder/internal/db/query"
	"binder/internal/domain"
	binder_errors "binder/internal"
)

// Service validates and applies ledger mutations. Every mutation is
// followed by a full recompilation inside the same transaction; if the
// recompilation reports a ledger integrity fault, the mutation is rolled
// back to its savepoint and the fault is returned to the caller.
type Service interface {
	AddTransaction(tx *sql.Tx, in AddTransactionInput) (*domain.LedgerEntry, *domain.Summary, error)
	UpdateTransaction(tx *sql.Tx, in UpdateTransactionInput) (*domain.LedgerEntry, *domain.Summary, error)
	DeleteTransaction(tx *sql.Tx, ledgerEntryID int32) (*domain.Summary, error)
	ListTransactions(tx *sql.Tx, kind *model.EntryKind) ([]domain.LedgerEntry, error)
}

type serviceHandler struct {
	LedgerStore  LedgerStore
	ProductStore ProductStore
	Recompiler   Recompiler
	Logger       zerolog.Logger
}

func NewService(
	ledgerStore LedgerStore,
	productStore ProductStore,
	recompiler Recompiler,
	logger zerolog.Logger,
) Service {
	return &serviceHandler{
		LedgerStore:  ledgerStore,
		ProductStore: productStore,
		Recompiler:   recompiler,
		Logger:       logger,
	}
}

type AddTransactionInput struct {
	ItemID      string
	Kind        model.EntryKind
	Quantity    int32
	UnitPrice   *decimal.Decimal
	TotalAmount *decimal.Decimal
	EventDate   time.Time
	Notes       *string
}

type UpdateTransactionInput struct {
	LedgerEntryID int32
	ItemID        string
	Kind          model.EntryKind
	Quantity      int32
	UnitPrice     *decimal.Decimal
	TotalAmount   *decimal.Decimal
	EventDate     time.Time
	Notes         *string
}

func (h *serviceHandler) AddTransaction(tx *sql.Tx, in AddTransactionInput) (*domain.LedgerEntry, *domain.Summary, error) {
	entry, err := h.buildEntry(tx, in.ItemID, in.Kind, in.Quantity, in.UnitPrice, in.TotalAmount, in.EventDate, in.Notes)
	if err != nil {
		return nil, nil, err
	}

	if entry.Kind == model.EntryKind_Dispose || entry.Kind == model.EntryKind_Withdraw {
		if err := h.checkInventory(tx, entry.ItemID, entry.Quantity, nil); err != nil {
			return nil, nil, err
		}
	}

	savepoint, err := db.AddSavepoint(tx)
	if err != nil {
		return nil, nil, err
	}
	added, err := h.LedgerStore.Add(tx, *entry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add ledger entry: %w", err)
	}
	summary, err := h.recompileOrRevert(tx, savepoint)
	if err != nil {
		return nil, nil, err
	}

	h.Logger.Info().
		Str("itemId", added.ItemID).
		Str("kind", string(added.Kind)).
		Int32("quantity", added.Quantity).
		Msg("added ledger entry")

	return added, summary, nil
}

func (h *serviceHandler) UpdateTransaction(tx *sql.Tx, in UpdateTransactionInput) (*domain.LedgerEntry, *domain.Summary, error) {
	existing, err := h.LedgerStore.Get(tx, in.LedgerEntryID)
	if err != nil {
		return nil, nil, err
	}

	entry, err := h.buildEntry(tx, in.ItemID, in.Kind, in.Quantity, in.UnitPrice, in.TotalAmount, in.EventDate, in.Notes)
	if err != nil {
		return nil, nil, err
	}
	entry.LedgerEntryID = existing.LedgerEntryID

	if entry.Kind == model.EntryKind_Dispose || entry.Kind == model.EntryKind_Withdraw {
		if err := h.checkInventory(tx, entry.ItemID, entry.Quantity, existing.LedgerEntryID); err != nil {
			return nil, nil, err
		}
	}

	savepoint, err := db.AddSavepoint(tx)
	if err != nil {
		return nil, nil, err
	}
	updated, err := h.LedgerStore.Update(tx, *entry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}
	summary, err := h.recompileOrRevert(tx, savepoint)
	if err != nil {
		return nil, nil, err
	}

	return updated, summary, nil
}

func (h *serviceHandler) DeleteTransaction(tx *sql.Tx, ledgerEntryID int32) (*domain.Summary, error) {
	savepoint, err := db.AddSavepoint(tx)
	if err != nil {
		return nil, err
	}
	if err := h.LedgerStore.SoftDelete(tx, ledgerEntryID); err != nil {
		return nil, err
	}
	summary, err := h.recompileOrRevert(tx, savepoint)
	if err != nil {
		return nil, err
	}

	h.Logger.Info().Int32("ledgerEntryId", ledgerEntryID).Msg("soft-deleted ledger entry")

	return summary, nil
}

func (h *serviceHandler) ListTransactions(tx *sql.Tx, kind *model.EntryKind) ([]domain.LedgerEntry, error) {
	entries, err := h.LedgerStore.List(tx, false)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return entries, nil
	}
	filtered := []domain.LedgerEntry{}
	for _, e := range entries {
		if e.Kind == *kind {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// buildEntry validates the mutation fields and resolves the event date
// against the product's earliest known date. A date entered before the
// product existed is moved forward to that date; the as-entered date is
// kept as the recorded date and the entry is flagged as adjusted.
func (h *serviceHandler) buildEntry(
	tx *sql.Tx,
	itemID string,
	kind model.EntryKind,
	quantity int32,
	unitPrice *decimal.Decimal,
	totalAmount *decimal.Decimal,
	eventDate time.Time,
	notes *string,
) (*domain.LedgerEntry, error) {
	switch kind {
	case model.EntryKind_Acquire, model.EntryKind_Dispose, model.EntryKind_Withdraw:
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", string(kind))
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	if kind == model.EntryKind_Withdraw {
		// a withdrawal moves units out of the sealed pool with no proceeds
		unitPrice = nil
		totalAmount = nil
	} else if unitPrice == nil && totalAmount == nil {
		return nil, fmt.Errorf("%s requires a unit price or total amount", string(kind))
	}

	product, err := h.ProductStore.Get(tx, itemID)
	if err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		ItemID:       product.ItemID,
		ItemName:     product.Name,
		Kind:         kind,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalAmount:  totalAmount,
		EventDate:    eventDate,
		RecordedDate: eventDate,
		Notes:        notes,
	}
	if product.EarliestDate != nil && eventDate.Before(*product.EarliestDate) {
		entry.EventDate = *product.EarliestDate
		entry.DateAdjusted = true
	}
	return &entry, nil
}

// checkInventory verifies the sealed pool can cover the requested units.
// excludeID skips the prior version of an entry being updated.
func (h *serviceHandler) checkInventory(tx *sql.Tx, itemID string, requested int32, excludeID *int32) error {
	entries, err := h.LedgerStore.List(tx, false)
	if err != nil {
		return err
	}
	var sealed int32
	for _, e := range entries {
		if e.ItemID != itemID {
			continue
		}
		if excludeID != nil && e.LedgerEntryID != nil && *e.LedgerEntryID == *excludeID {
			continue
		}
		switch e.Kind {
		case model.EntryKind_Acquire:
			sealed += e.Quantity
		case model.EntryKind_Dispose, model.EntryKind_Withdraw:
			sealed -= e.Quantity
		}
	}
	if sealed < requested {
		return binder_errors.ErrInsufficientInventory{
			ItemID:    itemID,
			Current:   sealed,
			Requested: requested,
		}
	}
	return nil
}

// recompileOrRevert rebuilds the derived tables after a mutation. An
// integrity fault means the mutation produced an inconsistent ledger, so
// the mutation itself is rolled back and the fault surfaced.
func (h *serviceHandler) recompileOrRevert(tx *sql.Tx, savepoint string) (*domain.Summary, error) {
	summary, err := h.Recompiler.RecompileAllTx(tx)
	if err != nil {
		var integrityErr binder_errors.LedgerIntegrityError
		if errors.As(err, &integrityErr) {
			h.Logger.Warn().
				Str("itemId", integrityErr.ItemID).
				Str("reason", integrityErr.Reason).
				Msg("reverting mutation after integrity fault")
			return nil, db.RollbackWithError(tx, savepoint, integrityErr)
		}
		return nil, err
	}
	return summary, nil
}
