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
)

// advisory lock key for the recompiler; arbitrary but stable
const rebuildLockID = 0x62696e64 // "bind"

// ValuationRepository owns the derived daily_valuation and
// item_daily_history tables, replaced wholesale on every recompilation.
type ValuationRepository interface {
	// AcquireRebuildLock blocks until this transaction is the only writer
	// of the derived tables. Released automatically at commit or rollback.
	AcquireRebuildLock(tx *sql.Tx) error
	ReplaceSeries(tx *sql.Tx, series []domain.DailyValuation, history []domain.ItemDailyHistory) error
	ListSeries(tx *sql.Tx, start, end *time.Time) ([]domain.DailyValuation, error)
	Latest(tx *sql.Tx) (*domain.DailyValuation, error)
	ItemHistory(tx *sql.Tx, itemID string) ([]domain.ItemDailyHistory, error)
}

type valuationRepositoryHandler struct {
}

func NewValuationRepository() ValuationRepository {
	return valuationRepositoryHandler{}
}

func (h valuationRepositoryHandler) AcquireRebuildLock(tx *sql.Tx) error {
	_, err := tx.Exec("SELECT pg_advisory_xact_lock($1)", rebuildLockID)
	if err != nil {
		return fmt.Errorf("failed to acquire rebuild lock: %w", err)
	}
	return nil
}

func (h valuationRepositoryHandler) ReplaceSeries(tx *sql.Tx, series []domain.DailyValuation, history []domain.ItemDailyHistory) error {
	if _, err := DailyValuation.DELETE().WHERE(postgres.Bool(true)).Exec(tx); err != nil {
		return fmt.Errorf("failed to clear daily valuations: %w", err)
	}
	if _, err := ItemDailyHistory.DELETE().WHERE(postgres.Bool(true)).Exec(tx); err != nil {
		return fmt.Errorf("failed to clear item daily history: %w", err)
	}

	if len(series) > 0 {
		models := make([]model.DailyValuation, len(series))
		for i, v := range series {
			models[i] = dailyValuationToDb(v)
		}
		stmt := DailyValuation.INSERT(DailyValuation.AllColumns).MODELS(models)
		if _, err := stmt.Exec(tx); err != nil {
			return fmt.Errorf("failed to insert daily valuations: %w", err)
		}
	}

	if len(history) > 0 {
		models := make([]model.ItemDailyHistory, len(history))
		for i, r := range history {
			models[i] = itemDailyHistoryToDb(r)
		}
		stmt := ItemDailyHistory.INSERT(ItemDailyHistory.AllColumns).MODELS(models)
		if _, err := stmt.Exec(tx); err != nil {
			return fmt.Errorf("failed to insert item daily history: %w", err)
		}
	}

	return nil
}

func (h valuationRepositoryHandler) ListSeries(tx *sql.Tx, start, end *time.Time) ([]domain.DailyValuation, error) {
	stmt := DailyValuation.SELECT(DailyValuation.AllColumns)
	conditions := []postgres.BoolExpression{}
	if start != nil {
		conditions = append(conditions, DailyValuation.Date.GT_EQ(postgres.DateT(util.Day(*start))))
	}
	if end != nil {
		conditions = append(conditions, DailyValuation.Date.LT_EQ(postgres.DateT(util.Day(*end))))
	}
	if len(conditions) > 0 {
		stmt = stmt.WHERE(postgres.AND(conditions...))
	}
	stmt = stmt.ORDER_BY(DailyValuation.Date.ASC())

	result := []model.DailyValuation{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily valuations: %w", err)
	}

	out := make([]domain.DailyValuation, len(result))
	for i, m := range result {
		out[i] = dailyValuationFromDb(m)
	}
	return out, nil
}

func (h valuationRepositoryHandler) Latest(tx *sql.Tx) (*domain.DailyValuation, error) {
	stmt := DailyValuation.SELECT(DailyValuation.AllColumns).
		ORDER_BY(DailyValuation.Date.DESC()).
		LIMIT(1)

	result := model.DailyValuation{}
	err := stmt.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read latest daily valuation: %w", err)
	}

	v := dailyValuationFromDb(result)
	return &v, nil
}

func (h valuationRepositoryHandler) ItemHistory(tx *sql.Tx, itemID string) ([]domain.ItemDailyHistory, error) {
	stmt := ItemDailyHistory.SELECT(ItemDailyHistory.AllColumns).
		WHERE(ItemDailyHistory.ItemID.EQ(postgres.String(itemID))).
		ORDER_BY(ItemDailyHistory.Date.ASC())

	result := []model.ItemDailyHistory{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to read history for item %s: %w", itemID, err)
	}

	out := make([]domain.ItemDailyHistory, len(result))
	for i, m := range result {
		out[i] = itemDailyHistoryFromDb(m)
	}
	return out, nil
}

func dailyValuationToDb(v domain.DailyValuation) model.DailyValuation {
	return model.DailyValuation{
		Date:                  util.Day(v.Date),
		TotalCostBasis:        v.TotalCostBasis,
		TotalMarketValue:      v.TotalMarketValue,
		UnrealizedPnl:         v.UnrealizedPnl,
		CumulativeRealizedPnl: v.CumulativeRealizedPnl,
	}
}

func dailyValuationFromDb(m model.DailyValuation) domain.DailyValuation {
	return domain.DailyValuation{
		Date:                  util.Day(m.Date),
		TotalCostBasis:        m.TotalCostBasis,
		TotalMarketValue:      m.TotalMarketValue,
		UnrealizedPnl:         m.UnrealizedPnl,
		CumulativeRealizedPnl: m.CumulativeRealizedPnl,
	}
}

func itemDailyHistoryToDb(r domain.ItemDailyHistory) model.ItemDailyHistory {
	return model.ItemDailyHistory{
		ItemID:                  r.ItemID,
		Date:                    util.Day(r.Date),
		CumulativeAcquireAmount: r.CumulativeAcquireAmount,
		CumulativeDisposeAmount: r.CumulativeDisposeAmount,
		CumulativeCostBasis:     r.CumulativeCostBasis,
		SealedQuantity:          r.SealedQuantity,
		CostBasisQuantity:       r.CostBasisQuantity,
		AverageCostPerUnit:      r.AverageCostPerUnit,
	}
}

func itemDailyHistoryFromDb(m model.ItemDailyHistory) domain.ItemDailyHistory {
	return domain.ItemDailyHistory{
		ItemID:                  m.ItemID,
		Date:                    util.Day(m.Date),
		CumulativeAcquireAmount: m.CumulativeAcquireAmount,
		CumulativeDisposeAmount: m.CumulativeDisposeAmount,
		CumulativeCostBasis:     m.CumulativeCostBasis,
		SealedQuantity:          m.SealedQuantity,
		CostBasisQuantity:       m.CostBasisQuantity,
		AverageCostPerUnit:      m.AverageCostPerUnit,
	}
}
