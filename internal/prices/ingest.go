package prices

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"binder/internal/util"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const snapshotFilePrefix = "market_prices_"

// SnapshotWriter is the slice of the price store the ingestor needs.
type SnapshotWriter interface {
	ListAvailableDates(tx *sql.Tx) ([]time.Time, error)
	UpsertSnapshot(tx *sql.Tx, date time.Time, snapshot map[string]decimal.Decimal) error
}

type Ingestor struct {
	writer SnapshotWriter
	logger zerolog.Logger
}

func NewIngestor(writer SnapshotWriter, logger zerolog.Logger) Ingestor {
	return Ingestor{writer: writer, logger: logger}
}

// IngestDir loads every market_prices_YYYY-MM-DD.csv in dir whose date is
// not already in the store. Returns the number of new snapshot dates.
func (in Ingestor) IngestDir(tx *sql.Tx, dir string) (int, error) {
	existing, err := in.writer.ListAvailableDates(tx)
	if err != nil {
		return 0, fmt.Errorf("failed to list snapshot dates: %w", err)
	}
	seen := map[time.Time]struct{}{}
	for _, d := range existing {
		seen[util.Day(d)] = struct{}{}
	}

	files, err := filepath.Glob(filepath.Join(dir, snapshotFilePrefix+"*.csv"))
	if err != nil {
		return 0, err
	}

	ingested := 0
	for _, file := range files {
		date, ok := SnapshotFileDate(file)
		if !ok {
			continue
		}
		if _, dup := seen[date]; dup {
			continue
		}

		snapshot, err := ReadSnapshotFile(file)
		if err != nil {
			return ingested, fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := in.writer.UpsertSnapshot(tx, date, snapshot); err != nil {
			return ingested, fmt.Errorf("failed to store snapshot for %s: %w", util.DateStr(date), err)
		}

		in.logger.Info().
			Str("date", util.DateStr(date)).
			Int("items", len(snapshot)).
			Msg("ingested price snapshot")
		ingested++
	}

	return ingested, nil
}

// SnapshotFileDate extracts the date from a market_prices_YYYY-MM-DD.csv
// file name.
func SnapshotFileDate(path string) (time.Time, bool) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if !strings.HasPrefix(base, snapshotFilePrefix) {
		return time.Time{}, false
	}
	date, err := util.ParseDate(strings.TrimPrefix(base, snapshotFilePrefix))
	if err != nil {
		return time.Time{}, false
	}
	return util.Day(date), true
}

// ReadSnapshotFile parses one snapshot CSV (header: productId,marketPrice).
// Rows with a blank price are skipped - no observation for that item on
// that date. Upstream IDs are coerced to the canonical string form here.
func ReadSnapshotFile(path string) (map[string]decimal.Decimal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	idCol, priceCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "productId", "itemId":
			idCol = i
		case "marketPrice":
			priceCol = i
		}
	}
	if idCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("missing productId/marketPrice columns in header %v", header)
	}

	out := map[string]decimal.Decimal{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		itemID := strings.TrimSpace(record[idCol])
		rawPrice := strings.TrimSpace(record[priceCol])
		if itemID == "" || rawPrice == "" {
			continue
		}
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("bad price %q for item %s: %w", rawPrice, itemID, err)
		}
		out[itemID] = price
	}

	return out, nil
}
