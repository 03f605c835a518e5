package main

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/litsea/litsea/boost"
	"github.com/litsea/litsea/corpus"
	"github.com/litsea/litsea/model"
)

func trainCommand() *cli.Command {
	return &cli.Command{
		Name:      "train",
		Usage:     "fit an ensemble to a feature file",
		ArgsUsage: "<features_file> <model_file>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "t", Value: boost.DefaultMinGain, Usage: "min_gain: stop when no atom's edge exceeds this"},
			&cli.IntFlag{Name: "i", Value: boost.DefaultMaxIter, Usage: "max_iter: hard cap on boosting rounds"},
			&cli.StringFlag{Name: "m", Usage: "prior model to warm-start from"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("train requires <features_file> <model_file>", 1)
			}
			return runTrain(c.Args().Get(0), c.Args().Get(1), c.String("m"), c.Float64("t"), c.Int("i"))
		},
	}
}

func runTrain(featurePath, outPath, priorPath string, minGain float64, maxIter int) error {
	f, err := os.Open(featurePath)
	if err != nil {
		return err
	}
	defer f.Close()

	instances, err := corpus.ReadFeatures(f)
	if err != nil {
		return err
	}

	opts := boost.Options{MinGain: minGain, MaxIter: maxIter}
	if priorPath != "" {
		prior, err := model.Load(priorPath)
		if err != nil {
			return err
		}
		opts.Prior = prior
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(maxIter)
	bar.AppendCompleted()
	bar.PrependElapsed()
	// margin holds the latest accepted stump's edge; the bar renders it
	// from its own goroutine, so it is stored atomically.
	var margin atomic.Uint64
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("round %d, margin %.6f", b.Current(), math.Float64frombits(margin.Load()))
	})

	opts.OnIteration = func(round int, atom string, edge float64) {
		margin.Store(math.Float64bits(edge))
		bar.Set(round + 1)
	}

	ensemble, metrics, err := boost.Train(instances, opts)
	uiprogress.Stop()
	if err != nil {
		return err
	}

	if err := ensemble.Save(outPath); err != nil {
		return err
	}

	fmt.Printf("trained %d stumps, accuracy %.4f (tp=%d fp=%d fn=%d tn=%d)\n",
		len(ensemble.Stumps), metrics.Accuracy(),
		metrics.TruePositive, metrics.FalsePositive, metrics.FalseNegative, metrics.TrueNegative)
	return nil
}
