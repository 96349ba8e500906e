package valuation

import (
	"sort"
	"time"

	"binder/internal/db/models/postgres/public/model"
	"binder/internal/domain"
	"binder/internal/holdings"
	"binder/internal/util"

	"github.com/shopspring/decimal"
)

// PriceSource resolves an item's market price on a date, falling back to
// the most recent earlier observation. Satisfied by prices.Book.
type PriceSource interface {
	Dates() []time.Time
	PriceOn(itemID string, date time.Time) (decimal.Decimal, bool)
}

// ComputeDailySeries folds the ledger and price history into one valuation
// row per date plus per-item history rows. The date axis is the union of
// price observation dates, ledger event dates and today, restricted to
// dates on or after the first ledger event, so the series starts exactly at
// first ownership even when no price snapshot exists that day.
//
// The output is a deterministic function of its inputs: running it twice on
// unchanged data produces identical rows in identical order.
func ComputeDailySeries(
	entries []domain.LedgerEntry,
	priceSource PriceSource,
	today time.Time,
) ([]domain.DailyValuation, []domain.ItemDailyHistory, error) {
	axis := buildDateAxis(entries, priceSource.Dates(), today)
	if len(axis) == 0 {
		return []domain.DailyValuation{}, []domain.ItemDailyHistory{}, nil
	}

	series := []domain.DailyValuation{}
	history := []domain.ItemDailyHistory{}
	cumulativeRealizedPnl := decimal.Zero

	for _, date := range axis {
		held, err := holdings.Compute(entries, date)
		if err != nil {
			return nil, nil, err
		}

		totalCostBasis := decimal.Zero
		totalMarketValue := decimal.Zero
		for _, h := range held {
			totalCostBasis = totalCostBasis.Add(h.TotalCostBasis)
			if h.SealedQuantity <= 0 {
				continue
			}
			price, ok := priceSource.PriceOn(h.ItemID, date)
			if !ok {
				// price data gap: the item contributes nothing to market
				// value on this date
				continue
			}
			totalMarketValue = totalMarketValue.Add(price.Mul(decimal.NewFromInt32(h.SealedQuantity)))
		}

		cumulativeRealizedPnl = cumulativeRealizedPnl.Add(realizedPnlOn(entries, date))

		roundedCostBasis := totalCostBasis.Round(2)
		roundedMarketValue := totalMarketValue.Round(2)
		series = append(series, domain.DailyValuation{
			Date:                  date,
			TotalCostBasis:        roundedCostBasis,
			TotalMarketValue:      roundedMarketValue,
			UnrealizedPnl:         roundedMarketValue.Sub(roundedCostBasis),
			CumulativeRealizedPnl: cumulativeRealizedPnl.Round(2),
		})

		history = append(history, historyRowsOn(entries, held, date)...)
	}

	return series, history, nil
}

func buildDateAxis(entries []domain.LedgerEntry, priceDates []time.Time, today time.Time) []time.Time {
	var earliest time.Time
	dateSet := map[time.Time]struct{}{}
	for _, e := range entries {
		if e.Deleted {
			continue
		}
		day := util.Day(e.EventDate)
		dateSet[day] = struct{}{}
		if earliest.IsZero() || day.Before(earliest) {
			earliest = day
		}
	}
	if earliest.IsZero() {
		// empty ledger, nothing to value
		return nil
	}

	for _, d := range priceDates {
		dateSet[util.Day(d)] = struct{}{}
	}
	dateSet[util.Day(today)] = struct{}{}

	axis := []time.Time{}
	for d := range dateSet {
		if d.Before(earliest) {
			continue
		}
		axis = append(axis, d)
	}
	sort.Slice(axis, func(i, j int) bool {
		return axis[i].Before(axis[j])
	})
	return axis
}

// realizedPnlOn is the realized P&L locked in by disposals dated exactly on
// date: proceeds minus quantity times the acquisition-only average cost up
// to and including that date.
func realizedPnlOn(entries []domain.LedgerEntry, date time.Time) decimal.Decimal {
	realized := decimal.Zero
	for _, e := range entries {
		if e.Deleted || e.Kind != model.EntryKind_Dispose {
			continue
		}
		if !util.SameDay(e.EventDate, date) {
			continue
		}
		avgCost := holdings.AverageAcquireCost(entries, e.ItemID, date)
		costRemoved := avgCost.Mul(decimal.NewFromInt32(e.Quantity))
		realized = realized.Add(e.Amount().Sub(costRemoved))
	}
	return realized
}

func historyRowsOn(entries []domain.LedgerEntry, held map[string]domain.ItemHolding, date time.Time) []domain.ItemDailyHistory {
	itemIDs := make([]string, 0, len(held))
	for itemID := range held {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Strings(itemIDs)

	rows := make([]domain.ItemDailyHistory, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		h := held[itemID]
		acquireAmount, disposeAmount := holdings.CumulativeAmounts(entries, itemID, date)
		rows = append(rows, domain.ItemDailyHistory{
			ItemID:                  itemID,
			Date:                    date,
			CumulativeAcquireAmount: acquireAmount.Round(2),
			CumulativeDisposeAmount: disposeAmount.Round(2),
			CumulativeCostBasis:     acquireAmount.Sub(disposeAmount).Round(2),
			SealedQuantity:          h.SealedQuantity,
			CostBasisQuantity:       h.CostBasisQuantity,
			AverageCostPerUnit:      h.AverageCostPerUnit,
		})
	}
	return rows
}
