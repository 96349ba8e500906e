package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"binder/internal/db/models/postgres/public/model"
	. "binder/internal/db/models/postgres/public/table"

	"binder/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// PriceRepository exposes the price snapshot history. A date with no
// snapshot is a normal condition, and a snapshot may cover any subset of
// items.
type PriceRepository interface {
	ListAvailableDates(tx *sql.Tx) ([]time.Time, error)
	ReadSnapshot(tx *sql.Tx, date time.Time) (map[string]decimal.Decimal, error)
	UpsertSnapshot(tx *sql.Tx, date time.Time, snapshot map[string]decimal.Decimal) error
}

type priceRepositoryHandler struct {
}

func NewPriceRepository() PriceRepository {
	return priceRepositoryHandler{}
}

func (h priceRepositoryHandler) ListAvailableDates(tx *sql.Tx) ([]time.Time, error) {
	stmt := PriceSnapshot.SELECT(PriceSnapshot.Date).
		DISTINCT().
		ORDER_BY(PriceSnapshot.Date.ASC())

	result := []model.PriceSnapshot{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list price snapshot dates: %w", err)
	}

	dates := make([]time.Time, len(result))
	for i, r := range result {
		dates[i] = util.Day(r.Date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates, nil
}

func (h priceRepositoryHandler) ReadSnapshot(tx *sql.Tx, date time.Time) (map[string]decimal.Decimal, error) {
	stmt := PriceSnapshot.SELECT(PriceSnapshot.AllColumns).
		WHERE(PriceSnapshot.Date.EQ(postgres.DateT(util.Day(date))))

	result := []model.PriceSnapshot{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to read price snapshot for %s: %w", util.DateStr(date), err)
	}

	snapshot := map[string]decimal.Decimal{}
	for _, r := range result {
		if r.MarketPrice == nil {
			// recorded row without an observation; treat as absent
			continue
		}
		snapshot[r.ItemID] = *r.MarketPrice
	}
	return snapshot, nil
}

func (h priceRepositoryHandler) UpsertSnapshot(tx *sql.Tx, date time.Time, snapshot map[string]decimal.Decimal) error {
	if len(snapshot) == 0 {
		return nil
	}

	models := make([]model.PriceSnapshot, 0, len(snapshot))
	for itemID, price := range snapshot {
		p := price
		models = append(models, model.PriceSnapshot{
			ItemID:      itemID,
			Date:        util.Day(date),
			MarketPrice: &p,
			CreatedAt:   time.Now().UTC(),
		})
	}
	// deterministic insert order keeps statements reproducible
	sort.Slice(models, func(i, j int) bool {
		return models[i].ItemID < models[j].ItemID
	})

	stmt := PriceSnapshot.INSERT(PriceSnapshot.AllColumns).
		MODELS(models).
		ON_CONFLICT(PriceSnapshot.ItemID, PriceSnapshot.Date).
		DO_UPDATE(postgres.SET(
			PriceSnapshot.MarketPrice.SET(PriceSnapshot.EXCLUDED.MarketPrice),
		))

	_, err := stmt.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert price snapshot for %s: %w", util.DateStr(date), err)
	}

	return nil
}
