package recompile

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"binder/internal/domain"
	"binder/internal/holdings"
	"binder/internal/prices"
	"binder/internal/util"
	"binder/internal/valuation"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service is the recompilation orchestrator. Called after any ledger
// mutation or after new price data lands, it rebuilds every derived
// projection from scratch inside a single transaction: stale-but-correct
// beats complete-but-wrong, so any fault aborts the pass and leaves the
// previously committed state untouched.
type Service struct {
	ledgerStore    LedgerStore
	priceStore     PriceStore
	holdingStore   HoldingStore
	valuationStore ValuationStore
	logger         zerolog.Logger

	// overridable for deterministic tests
	Now func() time.Time
}

func NewService(
	ledgerStore LedgerStore,
	priceStore PriceStore,
	holdingStore HoldingStore,
	valuationStore ValuationStore,
	logger zerolog.Logger,
) *Service {
	return &Service{
		ledgerStore:    ledgerStore,
		priceStore:     priceStore,
		holdingStore:   holdingStore,
		valuationStore: valuationStore,
		logger:         logger,
		Now:            time.Now,
	}
}

// RecompileAll runs a full rebuild in its own transaction and returns the
// resulting portfolio summary.
func (s *Service) RecompileAll(dbConn *sql.DB) (*domain.Summary, error) {
	tx, err := dbConn.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin recompilation tx: %w", err)
	}

	summary, err := s.RecompileAllTx(tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recompilation: %w", err)
	}
	return summary, nil
}

// RecompileAllTx runs a full rebuild inside the caller's transaction. The
// caller owns commit and rollback; nothing is visible to readers until it
// commits.
func (s *Service) RecompileAllTx(tx *sql.Tx) (*domain.Summary, error) {
	if err := s.valuationStore.AcquireRebuildLock(tx); err != nil {
		return nil, err
	}

	entries, err := s.ledgerStore.List(tx, false)
	if err != nil {
		return nil, err
	}

	book, err := s.loadPriceBook(tx)
	if err != nil {
		return nil, err
	}

	today := util.Day(s.Now())

	// step 1: current holdings
	held, err := holdings.Compute(entries, today)
	if err != nil {
		return nil, err
	}
	heldSlice := sortedHoldings(held)
	if err := s.holdingStore.Replace(tx, heldSlice); err != nil {
		return nil, err
	}

	// step 2: full daily series
	series, history, err := valuation.ComputeDailySeries(entries, book, today)
	if err != nil {
		return nil, err
	}
	if err := s.valuationStore.ReplaceSeries(tx, series, history); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("entries", len(entries)).
		Int("items", len(heldSlice)).
		Int("dates", len(series)).
		Msg("recompiled portfolio")

	// step 3: the summary comes from the last series row, not from the
	// holdings, so it always agrees with the chart
	var latest *domain.DailyValuation
	if len(series) > 0 {
		latest = &series[len(series)-1]
	}
	summary := buildSummary(heldSlice, latest)
	return &summary, nil
}

// ReadSummary assembles the current summary from previously committed
// derived state, without recompiling.
func (s *Service) ReadSummary(tx *sql.Tx) (*domain.Summary, error) {
	held, err := s.holdingStore.List(tx)
	if err != nil {
		return nil, err
	}
	latest, err := s.valuationStore.Latest(tx)
	if err != nil {
		return nil, err
	}
	summary := buildSummary(held, latest)
	return &summary, nil
}

func (s *Service) loadPriceBook(tx *sql.Tx) (*prices.Book, error) {
	book := prices.NewBook()
	dates, err := s.priceStore.ListAvailableDates(tx)
	if err != nil {
		return nil, err
	}
	for _, date := range dates {
		snapshot, err := s.priceStore.ReadSnapshot(tx, date)
		if err != nil {
			return nil, err
		}
		book.AddSnapshot(date, snapshot)
	}
	return book, nil
}

func sortedHoldings(held map[string]domain.ItemHolding) []domain.ItemHolding {
	out := make([]domain.ItemHolding, 0, len(held))
	for _, h := range held {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

func buildSummary(held []domain.ItemHolding, latest *domain.DailyValuation) domain.Summary {
	summary := domain.Summary{
		TotalCostBasis:     decimal.Zero,
		CurrentMarketValue: decimal.Zero,
		UnrealizedPnl:      decimal.Zero,
	}
	for _, h := range held {
		if h.SealedQuantity <= 0 {
			continue
		}
		summary.ItemCount++
		summary.TotalQuantity += h.SealedQuantity
	}
	if latest != nil {
		summary.TotalCostBasis = latest.TotalCostBasis
		summary.CurrentMarketValue = latest.TotalMarketValue
		summary.UnrealizedPnl = latest.UnrealizedPnl
	}
	return summary
}
