package main

import (
	"flag"

	_ "github.com/lib/pq"

	"binder/api"
	"binder/internal/catalog"
	db "binder/internal/db/query"
	"binder/internal/logging"
	"binder/internal/prices"
	"binder/internal/recompile"
	"binder/internal/repository"
	"binder/internal/transactions"
	"binder/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	config, err := util.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	dbConn, err := db.New(config.Database.ConnStr)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	ledgerRepository := repository.NewLedgerRepository()
	priceRepository := repository.NewPriceRepository()
	productRepository := repository.NewProductRepository()
	holdingsRepository := repository.NewHoldingsRepository()
	valuationRepository := repository.NewValuationRepository()

	recompiler := recompile.NewService(
		ledgerRepository,
		priceRepository,
		holdingsRepository,
		valuationRepository,
		logger,
	)
	transactionsService := transactions.NewService(
		ledgerRepository,
		productRepository,
		recompiler,
		logger,
	)
	catalogService := catalog.NewService(
		productRepository,
		priceRepository,
		logger,
	)
	ingestor := prices.NewIngestor(priceRepository, logger)

	err = api.StartApi(config.Server.Port, api.Deps{
		Db:            dbConn,
		Transactions:  transactionsService,
		Catalog:       catalogService,
		Recompiler:    recompiler,
		Ingestor:      ingestor,
		HoldingsRepo:  holdingsRepository,
		ValuationRepo: valuationRepository,
		PriceDir:      config.Prices.Dir,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("api server exited")
	}
}
