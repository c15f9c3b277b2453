package tripsorter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/itinerary/pkg/elastic_client"
	"github.com/travigo/itinerary/pkg/legparser"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

type FileResult struct {
	Index    int
	Filename string
	Result   *Result
	Err      error
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort the travel legs in each file into an itinerary",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "format of the input files (json, yaml or csv), taken from the file extension when unset",
			},
			&cli.BoolFlag{
				Name:  "detailed",
				Usage: "also print the sorted legs",
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "archive each sorted itinerary to the configured backends",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one FILE is required", 1)
			}

			sorter := &Sorter{}
			if c.Bool("archive") {
				if err := ConnectBackends(); err != nil {
					return err
				}

				var err error
				if sorter, _, err = Setup("cli"); err != nil {
					return err
				}
				defer elastic_client.WaitUntilQueueEmpty()
			}

			results := SortFiles(c.Context, sorter, c.String("format"), c.Args().Slice())

			failed := false
			for _, fileResult := range results {
				if fileResult.Err != nil {
					log.Error().Err(fileResult.Err).Str("file", fileResult.Filename).Msg("Failed to sort itinerary")
					failed = true
					continue
				}

				if err := printResult(c.App.Writer, fileResult, c.Bool("detailed"), len(results) > 1); err != nil {
					return err
				}
			}

			if failed {
				return cli.Exit("one or more itineraries could not be sorted", 1)
			}

			return nil
		},
	}
}

// SortFiles sorts every file concurrently and returns the results in argument order
func SortFiles(ctx context.Context, sorter *Sorter, format string, filenames []string) []FileResult {
	p := pool.NewWithResults[FileResult]()
	p.WithMaxGoroutines(8)

	for index, filename := range filenames {
		p.Go(func() FileResult {
			result, err := sortFile(ctx, sorter, format, filename)

			return FileResult{Index: index, Filename: filename, Result: result, Err: err}
		})
	}

	results := p.Wait()
	slices.SortFunc(results, func(a, b FileResult) int {
		return a.Index - b.Index
	})

	return results
}

func sortFile(ctx context.Context, sorter *Sorter, format string, filename string) (*Result, error) {
	var legFormat legparser.Format
	var err error
	if format == "" {
		legFormat, err = legparser.FormatFromFilename(filename)
	} else {
		legFormat, err = legparser.ParseFormat(format)
	}
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := legparser.Decode(file, legFormat)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("file", filename).Msgf("Parsed legs %# v", pretty.Formatter(records))

	return sorter.Sort(ctx, "", records)
}

func printResult(writer io.Writer, fileResult FileResult, detailed bool, withHeader bool) error {
	if withHeader {
		fmt.Fprintf(writer, "# %s\n", fileResult.Filename)
	}

	for _, line := range fileResult.Result.Narration {
		fmt.Fprintln(writer, line)
	}

	if !detailed {
		return nil
	}

	tripsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, fileResult.Result.Trips)
	if err != nil {
		return err
	}

	tripsJSON, err := json.MarshalIndent(tripsReduced, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, string(tripsJSON))
	return err
}
