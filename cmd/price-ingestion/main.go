package main

import (
	"flag"

	_ "github.com/lib/pq"

	"binder/internal/catalog"
	db "binder/internal/db/query"
	"binder/internal/logging"
	"binder/internal/prices"
	"binder/internal/repository"
	"binder/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	dir := flag.String("dir", "", "price snapshot directory (defaults to config)")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	config, err := util.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if *dir == "" {
		*dir = config.Prices.Dir
	}

	dbConn, err := db.New(config.Database.ConnStr)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	priceRepository := repository.NewPriceRepository()
	ingestor := prices.NewIngestor(priceRepository, logger)
	catalogService := catalog.NewService(
		repository.NewProductRepository(),
		priceRepository,
		logger,
	)

	tx, err := dbConn.Begin()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to begin transaction")
	}
	defer tx.Rollback()

	ingested, err := ingestor.IngestDir(tx, *dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("price ingestion failed")
	}

	// new snapshots can move a product's earliest known date
	updated, err := catalogService.BackfillEarliestDates(tx)
	if err != nil {
		logger.Fatal().Err(err).Msg("earliest date backfill failed")
	}

	if err := tx.Commit(); err != nil {
		logger.Fatal().Err(err).Msg("failed to commit ingestion")
	}

	logger.Info().
		Int("ingestedSnapshots", ingested).
		Int("productsUpdated", updated).
		Msg("price ingestion complete")
}
