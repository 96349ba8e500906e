package updater

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"binder/internal/domain"
)

// Ingestor loads any new price snapshot files into the price store.
type Ingestor interface {
	IngestDir(tx *sql.Tx, dir string) (int, error)
}

// Recompiler rebuilds the derived tables inside the caller's transaction.
type Recompiler interface {
	RecompileAllTx(tx *sql.Tx) (*domain.Summary, error)
}

// Updater runs the daily refresh: ingest new price files, then recompile.
// Both happen in one transaction, so an aborted run leaves the previously
// committed state untouched.
type Updater struct {
	Db         *sql.DB
	Ingestor   Ingestor
	Recompiler Recompiler
	PriceDir   string
	Logger     zerolog.Logger
}

func New(dbConn *sql.DB, ingestor Ingestor, recompiler Recompiler, priceDir string, logger zerolog.Logger) *Updater {
	return &Updater{
		Db:         dbConn,
		Ingestor:   ingestor,
		Recompiler: recompiler,
		PriceDir:   priceDir,
		Logger:     logger,
	}
}

// RunOnce performs a single refresh pass.
func (u *Updater) RunOnce() error {
	tx, err := u.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ingested, err := u.Ingestor.IngestDir(tx, u.PriceDir)
	if err != nil {
		return fmt.Errorf("price ingestion failed: %w", err)
	}

	summary, err := u.Recompiler.RecompileAllTx(tx)
	if err != nil {
		return fmt.Errorf("recompilation failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit refresh: %w", err)
	}

	u.Logger.Info().
		Int("ingestedSnapshots", ingested).
		Int32("itemCount", summary.ItemCount).
		Str("marketValue", summary.CurrentMarketValue.String()).
		Msg("daily refresh complete")

	return nil
}

// Run blocks, performing a refresh every day at 09:00 local time until the
// context is cancelled. A failed pass is logged and retried at the next
// scheduled time.
func (u *Updater) Run(ctx context.Context) error {
	for {
		next := NextRunTime(time.Now())
		u.Logger.Info().Time("nextRun", next).Msg("sleeping until next refresh")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(next)):
		}

		if err := u.RunOnce(); err != nil {
			u.Logger.Error().Err(err).Msg("daily refresh failed")
		}
	}
}

// NextRunTime returns the next 09:00 local time strictly after now.
func NextRunTime(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
