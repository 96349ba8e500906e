package main

import (
	"context"
	"flag"

	_ "github.com/lib/pq"

	db "binder/internal/db/query"
	"binder/internal/logging"
	"binder/internal/prices"
	"binder/internal/recompile"
	"binder/internal/repository"
	"binder/internal/updater"
	"binder/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	once := flag.Bool("once", false, "run a single refresh and exit")
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

	priceRepository := repository.NewPriceRepository()
	recompiler := recompile.NewService(
		repository.NewLedgerRepository(),
		priceRepository,
		repository.NewHoldingsRepository(),
		repository.NewValuationRepository(),
		logger,
	)
	u := updater.New(
		dbConn,
		prices.NewIngestor(priceRepository, logger),
		recompiler,
		config.Prices.Dir,
		logger,
	)

	if *once {
		if err := u.RunOnce(); err != nil {
			logger.Fatal().Err(err).Msg("refresh failed")
		}
		return
	}

	if err := u.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("updater exited")
	}
}
