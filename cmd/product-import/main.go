package main

import (
	"flag"

	_ "github.com/lib/pq"

	"binder/internal/catalog"
	db "binder/internal/db/query"
	"binder/internal/logging"
	"binder/internal/repository"
	"binder/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	file := flag.String("file", "", "product catalog csv")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	config, err := util.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if *file == "" {
		logger.Fatal().Msg("-file is required")
	}

	dbConn, err := db.New(config.Database.ConnStr)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	products, err := catalog.ReadProductsFile(*file)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read product file")
	}

	catalogService := catalog.NewService(
		repository.NewProductRepository(),
		repository.NewPriceRepository(),
		logger,
	)

	tx, err := dbConn.Begin()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to begin transaction")
	}
	defer tx.Rollback()

	imported, err := catalogService.ImportProducts(tx, products)
	if err != nil {
		logger.Fatal().Err(err).Msg("product import failed")
	}

	if err := tx.Commit(); err != nil {
		logger.Fatal().Err(err).Msg("failed to commit import")
	}

	logger.Info().
		Int("productsImported", imported).
		Str("file", *file).
		Msg("product import complete")
}
