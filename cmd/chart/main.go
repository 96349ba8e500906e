package main

import (
	"flag"

	_ "github.com/lib/pq"

	"binder/internal/chart"
	db "binder/internal/db/query"
	"binder/internal/logging"
	"binder/internal/repository"
	"binder/internal/util"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	out := flag.String("out", "", "output PNG path (defaults to config)")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	config, err := util.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if *out == "" {
		*out = config.Chart.OutputPath
	}

	dbConn, err := db.New(config.Database.ConnStr)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	tx, err := dbConn.Begin()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to begin transaction")
	}
	defer tx.Rollback()

	series, err := repository.NewValuationRepository().ListSeries(tx, nil, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load valuation series")
	}

	if err := chart.WriteValuationChart(series, *out); err != nil {
		logger.Fatal().Err(err).Msg("failed to render chart")
	}

	logger.Info().Str("path", *out).Int("points", len(series)).Msg("chart written")
}
