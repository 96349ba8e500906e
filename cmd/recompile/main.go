package main

import (
	"flag"

	_ "github.com/lib/pq"

	db "binder/internal/db/query"
	"binder/internal/logging"
	"binder/internal/recompile"
	"binder/internal/repository"
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

	recompiler := recompile.NewService(
		repository.NewLedgerRepository(),
		repository.NewPriceRepository(),
		repository.NewHoldingsRepository(),
		repository.NewValuationRepository(),
		logger,
	)

	summary, err := recompiler.RecompileAll(dbConn)
	if err != nil {
		logger.Fatal().Err(err).Msg("recompilation failed")
	}

	logger.Info().
		Int32("itemCount", summary.ItemCount).
		Int32("totalQuantity", summary.TotalQuantity).
		Str("costBasis", summary.TotalCostBasis.String()).
		Str("marketValue", summary.CurrentMarketValue.String()).
		Str("unrealizedPnl", summary.UnrealizedPnl.String()).
		Msg("recompilation complete")
}
