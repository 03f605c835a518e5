// Command litsea trains and runs the AdaBoost word segmenter: extract
// turns a whitespace-segmented corpus into a feature file, train fits an
// ensemble to a feature file, and segment applies a trained model to
// stdin.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/litsea/litsea/litseaerr"
)

func main() {
	app := &cli.App{
		Name:  "litsea",
		Usage: "compact AdaBoost word segmenter",
		Commands: []*cli.Command{
			extractCommand(),
			trainCommand(),
			segmentCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "litsea: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes malformed-input failures (bad corpus, bad
// model file, unrecognized warm-start schema) from operational ones
// (missing files, other I/O), so scripts driving litsea can tell "your
// data is wrong" apart from "something else went wrong" without
// scraping the message text.
func exitCode(err error) int {
	for _, kind := range []litseaerr.Kind{
		litseaerr.InvalidInput,
		litseaerr.EmptyCorpus,
		litseaerr.BadFormat,
		litseaerr.SchemaMismatch,
	} {
		if litseaerr.Is(err, kind) {
			return 2
		}
	}
	return 1
}
