package api

import (
	"context"

	"github.com/travigo/itinerary/pkg/api/routes"
	"github.com/travigo/itinerary/pkg/api/stats"
	"github.com/travigo/itinerary/pkg/elastic_client"
	"github.com/travigo/itinerary/pkg/tripsorter"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the itinerary web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := tripsorter.ConnectBackends(); err != nil {
						return err
					}
					defer elastic_client.WaitUntilQueueEmpty()

					sorter, itineraryArchive, err := tripsorter.Setup("web-api")
					if err != nil {
						return err
					}

					statsContext, cancel := context.WithCancel(c.Context)
					defer cancel()
					go stats.UpdateRecordsStats(statsContext)

					var archiveLookup routes.ArchiveLookup
					if itineraryArchive != nil {
						archiveLookup = itineraryArchive
					}

					return SetupServer(c.String("listen"), sorter, archiveLookup)
				},
			},
		},
	}
}
