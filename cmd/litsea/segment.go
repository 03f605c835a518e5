package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/litsea/litsea/model"
)

func segmentCommand() *cli.Command {
	return &cli.Command{
		Name:      "segment",
		Usage:     "segment stdin, one sentence per line, using a trained model",
		ArgsUsage: "<model-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("segment requires <model-file>", 1)
			}
			return runSegment(c.Args().Get(0))
		},
	}
}

func runSegment(modelPath string) error {
	ensemble, err := model.Load(modelPath)
	if err != nil {
		return err
	}
	seg := model.NewSegmenter(ensemble)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		segmented, err := seg.Segment(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, segmented)
	}
	return scanner.Err()
}
