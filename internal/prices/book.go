package prices

import (
	"sort"
	"time"

	"binder/internal/util"

	"github.com/shopspring/decimal"
)

// Book is an in-memory view of the price snapshot history: a sparse
// (item, date) -> market price mapping plus the sorted list of dates that
// have any observation at all. Absence of a price means "no observation",
// never "price is zero".
type Book struct {
	dates     []time.Time
	snapshots map[time.Time]map[string]decimal.Decimal
}

func NewBook() *Book {
	return &Book{
		snapshots: map[time.Time]map[string]decimal.Decimal{},
	}
}

func (b *Book) AddSnapshot(date time.Time, snapshot map[string]decimal.Decimal) {
	day := util.Day(date)
	if _, ok := b.snapshots[day]; !ok {
		b.dates = append(b.dates, day)
		sort.Slice(b.dates, func(i, j int) bool {
			return b.dates[i].Before(b.dates[j])
		})
		b.snapshots[day] = map[string]decimal.Decimal{}
	}
	for itemID, price := range snapshot {
		b.snapshots[day][itemID] = price
	}
}

// Dates returns the observation dates in ascending order.
func (b *Book) Dates() []time.Time {
	out := make([]time.Time, len(b.dates))
	copy(out, b.dates)
	return out
}

// PriceOn resolves the market price of an item on a date. An exact
// observation wins; otherwise the most recent earlier observation is used.
// The second return is false when no observation exists on or before the
// date - a data gap, not an error.
func (b *Book) PriceOn(itemID string, date time.Time) (decimal.Decimal, bool) {
	day := util.Day(date)

	// index of the first date after day
	i := sort.Search(len(b.dates), func(i int) bool {
		return b.dates[i].After(day)
	})
	for i--; i >= 0; i-- {
		if price, ok := b.snapshots[b.dates[i]][itemID]; ok {
			return price, true
		}
	}

	return decimal.Zero, false
}
