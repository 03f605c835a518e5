package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/litsea/litsea/corpus"
)

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "turn a whitespace-segmented corpus into a feature file",
		ArgsUsage: "<corpus-file> <feature-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("extract requires <corpus-file> <feature-file>", 1)
			}
			return runExtract(c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func runExtract(corpusPath, featurePath string) error {
	in, err := os.Open(corpusPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(featurePath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := corpus.ExtractFeatures(in, out); err != nil {
		return err
	}
	return out.Close()
}
