package sortworker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/consumer"
	"github.com/travigo/itinerary/pkg/elastic_client"
	"github.com/travigo/itinerary/pkg/legparser"
	"github.com/travigo/itinerary/pkg/redis_client"
	"github.com/travigo/itinerary/pkg/tripsorter"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "worker",
		Usage: "Sorts itineraries submitted through the redis queue",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the sort queue consumers",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "consumers",
						Value: 5,
						Usage: "number of batch consumers",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Value: 20,
						Usage: "maximum deliveries per batch",
					},
					&cli.StringFlag{
						Name:  "stats-listen",
						Value: ":3333",
						Usage: "listen target for the queue stats server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := tripsorter.ConnectBackends(); err != nil {
						return err
					}
					if redis_client.Client == nil {
						if err := redis_client.Connect(); err != nil {
							return err
						}
					}
					defer elastic_client.WaitUntilQueueEmpty()

					sorter, _, err := tripsorter.Setup("worker")
					if err != nil {
						return err
					}

					redisConsumer := consumer.RedisConsumer{
						QueueName:       QueueName,
						NumberConsumers: c.Int("consumers"),
						BatchSize:       c.Int("batch-size"),
						Timeout:         2 * time.Second,
						Consumer:        NewBatchConsumer(sorter),
						StatsListen:     c.String("stats-listen"),
					}
					if err := redisConsumer.Setup(); err != nil {
						return err
					}

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:      "submit",
				Usage:     "submit a file of travel legs to the sort queue",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "identifier",
						Usage: "identifier of the archived itinerary, generated when unset",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "format of the input file (json, yaml or csv), taken from the file extension when unset",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("exactly one FILE is required", 1)
					}
					filename := c.Args().First()

					var format legparser.Format
					var err error
					if c.String("format") == "" {
						format, err = legparser.FormatFromFilename(filename)
					} else {
						format, err = legparser.ParseFormat(c.String("format"))
					}
					if err != nil {
						return err
					}

					file, err := os.Open(filename)
					if err != nil {
						return err
					}
					defer file.Close()

					records, err := legparser.Decode(file, format)
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						return err
					}

					queue, err := redis_client.QueueConnection.OpenQueue(QueueName)
					if err != nil {
						return err
					}

					identifier, err := Submit(queue, c.String("identifier"), records)
					if err != nil {
						return err
					}

					log.Info().Str("identifier", identifier).Int("legs", len(records)).Msg("Submitted sort job")
					fmt.Fprintln(c.App.Writer, identifier)

					return nil
				},
			},
		},
	}
}
