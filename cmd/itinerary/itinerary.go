package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/api"
	"github.com/travigo/itinerary/pkg/indexer"
	"github.com/travigo/itinerary/pkg/sortworker"
	"github.com/travigo/itinerary/pkg/tripsorter"
	"github.com/urfave/cli/v2"
)

func main() {
	// Narration goes to stdout so logs stay on stderr
	if os.Getenv("TRAVIGO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = log.Output(os.Stderr)
	}

	if os.Getenv("TRAVIGO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "itinerary",
		Description: "Sorts unordered travel legs into a single narrated itinerary",

		Commands: []*cli.Command{
			tripsorter.RegisterCLI(),
			api.RegisterCLI(),
			sortworker.RegisterCLI(),
			indexer.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
