package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	binder_errors "binder/internal"
	"binder/internal/domain"
)

// Service answers product lookups and keeps each product's earliest known
// date in sync with the price history. The earliest date bounds how far
// back a ledger event for that product can be dated.
type Service interface {
	GetProduct(tx *sql.Tx, itemID string) (*domain.Product, error)
	SearchProducts(tx *sql.Tx, query string, limit int64) ([]domain.Product, error)
	ImportProducts(tx *sql.Tx, products []domain.Product) (int, error)
	BackfillEarliestDates(tx *sql.Tx) (int, error)
}

type serviceHandler struct {
	ProductStore ProductStore
	PriceStore   PriceStore
	Logger       zerolog.Logger
}

func NewService(productStore ProductStore, priceStore PriceStore, logger zerolog.Logger) Service {
	return &serviceHandler{
		ProductStore: productStore,
		PriceStore:   priceStore,
		Logger:       logger,
	}
}

func (h *serviceHandler) GetProduct(tx *sql.Tx, itemID string) (*domain.Product, error) {
	return h.ProductStore.Get(tx, itemID)
}

func (h *serviceHandler) SearchProducts(tx *sql.Tx, query string, limit int64) ([]domain.Product, error) {
	return h.ProductStore.Search(tx, query, limit)
}

// BackfillEarliestDates walks the snapshot history oldest-first and stamps
// each product with the first date it was ever priced. Items priced in a
// snapshot but missing from the catalog are skipped. Returns the number of
// products updated.
func (h *serviceHandler) BackfillEarliestDates(tx *sql.Tx) (int, error) {
	dates, err := h.PriceStore.ListAvailableDates(tx)
	if err != nil {
		return 0, fmt.Errorf("failed to list snapshot dates: %w", err)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	firstSeen := map[string]int{}
	for i, date := range dates {
		snapshot, err := h.PriceStore.ReadSnapshot(tx, date)
		if err != nil {
			return 0, fmt.Errorf("failed to read snapshot for %s: %w", date.Format("2006-01-02"), err)
		}
		for itemID := range snapshot {
			if _, ok := firstSeen[itemID]; !ok {
				firstSeen[itemID] = i
			}
		}
	}

	itemIDs := make([]string, 0, len(firstSeen))
	for itemID := range firstSeen {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Strings(itemIDs)

	updated := 0
	for _, itemID := range itemIDs {
		earliest := dates[firstSeen[itemID]]
		err := h.ProductStore.SetEarliestDate(tx, itemID, earliest)
		if err != nil {
			var unknownErr binder_errors.ErrUnknownProduct
			if errors.As(err, &unknownErr) {
				h.Logger.Warn().Str("itemId", itemID).Msg("priced item missing from catalog")
				continue
			}
			return updated, err
		}
		updated++
	}

	h.Logger.Info().Int("updated", updated).Msg("backfilled earliest dates")

	return updated, nil
}
