package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"binder/internal/db/models/postgres/public/model"
	. "binder/internal/db/models/postgres/public/table"
	"binder/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

// HoldingsRepository owns the derived item_holding table. The table is
// only ever replaced wholesale, inside the recompiler's transaction; it is
// never patched row by row.
type HoldingsRepository interface {
	Replace(tx *sql.Tx, holdings []domain.ItemHolding) error
	List(tx *sql.Tx) ([]domain.ItemHolding, error)
}

type holdingsRepositoryHandler struct {
}

func NewHoldingsRepository() HoldingsRepository {
	return holdingsRepositoryHandler{}
}

func (h holdingsRepositoryHandler) Replace(tx *sql.Tx, holdings []domain.ItemHolding) error {
	_, err := ItemHolding.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear item holdings: %w", err)
	}

	if len(holdings) == 0 {
		return nil
	}

	models := make([]model.ItemHolding, len(holdings))
	for i, holding := range holdings {
		models[i] = itemHoldingToDb(holding)
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].ItemID < models[j].ItemID
	})

	stmt := ItemHolding.INSERT(ItemHolding.AllColumns).MODELS(models)
	_, err = stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert item holdings: %w", err)
	}

	return nil
}

func (h holdingsRepositoryHandler) List(tx *sql.Tx) ([]domain.ItemHolding, error) {
	stmt := ItemHolding.SELECT(ItemHolding.AllColumns).
		ORDER_BY(ItemHolding.ItemID.ASC())

	result := []model.ItemHolding{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list item holdings: %w", err)
	}

	out := make([]domain.ItemHolding, len(result))
	for i, m := range result {
		out[i] = itemHoldingFromDb(m)
	}
	return out, nil
}

func itemHoldingToDb(h domain.ItemHolding) model.ItemHolding {
	return model.ItemHolding{
		ItemID:             h.ItemID,
		ItemName:           h.ItemName,
		TotalAcquired:      h.TotalAcquired,
		TotalDisposed:      h.TotalDisposed,
		TotalWithdrawn:     h.TotalWithdrawn,
		SealedQuantity:     h.SealedQuantity,
		CostBasisQuantity:  h.CostBasisQuantity,
		TotalCostBasis:     h.TotalCostBasis,
		AverageCostPerUnit: h.AverageCostPerUnit,
		LastUpdated:        time.Now().UTC(),
	}
}

func itemHoldingFromDb(m model.ItemHolding) domain.ItemHolding {
	return domain.ItemHolding{
		ItemID:             m.ItemID,
		ItemName:           m.ItemName,
		TotalAcquired:      m.TotalAcquired,
		TotalDisposed:      m.TotalDisposed,
		TotalWithdrawn:     m.TotalWithdrawn,
		SealedQuantity:     m.SealedQuantity,
		CostBasisQuantity:  m.CostBasisQuantity,
		TotalCostBasis:     m.TotalCostBasis,
		AverageCostPerUnit: m.AverageCostPerUnit,
	}
}
