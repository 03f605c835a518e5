// Package boost implements the discrete (SAMME-style) AdaBoost loop over
// decision-stump weak learners that trains a Litsea segmentation ensemble.
//
// The training loop's shape — an inverted index built once, then a
// weighted-error scan per round — follows the reference adaboost.rs
// implementation this model schema is derived from; the package layout
// and doc-comment density follow the crf package's from-scratch
// statistical model trainer.
package boost

import (
	"math"
	"sort"

	"github.com/litsea/litsea/feature"
	"github.com/litsea/litsea/litseaerr"
	"github.com/litsea/litsea/model"
)

const (
	// DefaultMinGain is the default stopping threshold on stump edge.
	DefaultMinGain = 0.001
	// DefaultMaxIter is the default hard cap on boosting rounds.
	DefaultMaxIter = 10000

	// alphaClamp bounds the confidence assigned to a perfectly (or
	// perfectly badly) separating stump, avoiding infinite alphas.
	alphaClamp = 10.0
	// epsClamp keeps the weighted error away from the poles where
	// ln((1-e)/e) diverges.
	epsClamp = 1e-10
)

// Options configures a training run.
type Options struct {
	MinGain float64
	MaxIter int
	Prior   *model.Ensemble

	// OnIteration, if non-nil, is called after each accepted round with
	// the round index (0-based) and the accepted stump's edge, for
	// progress reporting.
	OnIteration func(round int, atom string, edge float64)
}

// Metrics summarizes an ensemble's performance against the instances it
// was scored against.
type Metrics struct {
	TotalInstances int
	TruePositive   int
	FalsePositive  int
	FalseNegative  int
	TrueNegative   int
}

// Accuracy is (TP+TN)/total.
func (m Metrics) Accuracy() float64 {
	if m.TotalInstances == 0 {
		return 0
	}
	return float64(m.TruePositive+m.TrueNegative) / float64(m.TotalInstances)
}

// Precision is TP/(TP+FP), 0 if no positive predictions were made.
func (m Metrics) Precision() float64 {
	denom := m.TruePositive + m.FalsePositive
	if denom == 0 {
		return 0
	}
	return float64(m.TruePositive) / float64(denom)
}

// Recall is TP/(TP+FN), 0 if there were no actual positives.
func (m Metrics) Recall() float64 {
	denom := m.TruePositive + m.FalseNegative
	if denom == 0 {
		return 0
	}
	return float64(m.TruePositive) / float64(denom)
}

// validFamilies are the family prefixes the feature engine can emit.
var validFamilies = map[string]bool{
	"UW1": true, "UW2": true, "UW3": true, "UW4": true, "UW5": true, "UW6": true,
	"BW1": true, "BW2": true, "BW3": true,
	"TW1": true, "TW2": true, "TW3": true, "TW4": true,
	"UC1": true, "UC2": true, "UC3": true, "UC4": true, "UC5": true, "UC6": true,
	"BC1": true, "BC2": true, "BC3": true,
	"TC1": true, "TC2": true, "TC3": true, "TC4": true,
}

func familyOf(atom string) string {
	for i := 0; i < len(atom); i++ {
		if atom[i] == ':' {
			return atom[:i]
		}
	}
	return atom
}

// checkSchema rejects a prior ensemble only when a stump names a family
// the feature engine has never emitted, i.e. a foreign or corrupted
// model — not merely a family the current corpus happens not to use.
func checkSchema(prior *model.Ensemble) error {
	for _, s := range prior.Stumps {
		if !validFamilies[familyOf(s.Atom)] {
			return litseaerr.New(litseaerr.SchemaMismatch, "warm-start atom "+s.Atom+" names an unrecognized feature family")
		}
	}
	return nil
}

// Train runs discrete AdaBoost over instances, optionally warm-started
// from opts.Prior, and returns the resulting ensemble plus the metrics of
// scoring that ensemble against instances.
func Train(instances []feature.Instance, opts Options) (*model.Ensemble, Metrics, error) {
	n := len(instances)
	if n == 0 {
		return nil, Metrics{}, litseaerr.New(litseaerr.EmptyCorpus, "training requires at least one instance")
	}

	minGain := opts.MinGain
	if minGain < 0 {
		minGain = DefaultMinGain
	}
	// MaxIter == 0 is a valid caller request for zero additional rounds
	// (the warm-start identity case); only a negative value falls back
	// to the default cap.
	maxIter := opts.MaxIter
	if maxIter < 0 {
		maxIter = DefaultMaxIter
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}

	ensemble := &model.Ensemble{}
	if opts.Prior != nil {
		if err := checkSchema(opts.Prior); err != nil {
			return nil, Metrics{}, err
		}
		ensemble.Stumps = append(ensemble.Stumps, opts.Prior.Stumps...)
		for _, s := range ensemble.Stumps {
			reweight(weights, instances, s)
			renormalize(weights)
		}
	}

	index := buildIndex(instances)
	atoms := make([]string, 0, len(index))
	for a := range index {
		atoms = append(atoms, a)
	}
	sort.Strings(atoms)

	for t := 0; t < maxIter; t++ {
		positiveTotal := 0.0
		for i, inst := range instances {
			if inst.Label > 0 {
				positiveTotal += weights[i]
			}
		}

		bestAtom := ""
		bestEdge := -1.0
		bestEps := 0.5

		for _, a := range atoms {
			wp, wn := 0.0, 0.0
			for _, i := range index[a] {
				if instances[i].Label > 0 {
					wp += weights[i]
				} else {
					wn += weights[i]
				}
			}
			eps := wn + (positiveTotal - wp)
			edge := math.Abs(0.5 - eps)
			if edge > bestEdge {
				bestEdge = edge
				bestEps = eps
				bestAtom = a
			}
		}

		if bestAtom == "" || bestEdge <= minGain {
			break
		}

		eps := math.Min(math.Max(bestEps, epsClamp), 1-epsClamp)
		alpha := 0.5 * math.Log((1-eps)/eps)
		if alpha > alphaClamp {
			alpha = alphaClamp
		} else if alpha < -alphaClamp {
			alpha = -alphaClamp
		}

		stump := model.Stump{Atom: bestAtom, Alpha: alpha}
		ensemble.Stumps = append(ensemble.Stumps, stump)

		reweight(weights, instances, stump)
		renormalize(weights)

		if opts.OnIteration != nil {
			opts.OnIteration(t, bestAtom, bestEdge)
		}
	}

	metrics := Score(ensemble, instances)
	return ensemble, metrics, nil
}

// buildIndex maps each atom to the sorted list of instance indices that
// contain it. Built once per run; unaffected by weight updates.
func buildIndex(instances []feature.Instance) map[string][]int {
	index := make(map[string][]int)
	for i, inst := range instances {
		for _, a := range inst.Atoms {
			index[a] = append(index[a], i)
		}
	}
	return index
}

// reweight applies the standard AdaBoost multiplicative update for a
// single stump, using the fixed hypothesis h(x) = +1 if the atom is
// present, -1 if absent.
func reweight(weights []float64, instances []feature.Instance, s model.Stump) {
	for i, inst := range instances {
		h := -1.0
		if containsAtom(inst.Atoms, s.Atom) {
			h = 1.0
		}
		weights[i] *= math.Exp(-s.Alpha * float64(inst.Label) * h)
	}
}

func containsAtom(atoms []string, atom string) bool {
	for _, a := range atoms {
		if a == atom {
			return true
		}
	}
	return false
}

func renormalize(weights []float64) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return
	}
	for i := range weights {
		weights[i] /= sum
	}
}

// Score evaluates an ensemble against instances using the same scoring
// rule the segmenter uses at inference time (sum of alphas for present
// atoms, threshold at zero), and reports the resulting confusion matrix.
func Score(ensemble *model.Ensemble, instances []feature.Instance) Metrics {
	m := Metrics{TotalInstances: len(instances)}
	for _, inst := range instances {
		predictedPositive := ensemble.Score(inst.Atoms) > 0
		actualPositive := inst.Label > 0
		switch {
		case predictedPositive && actualPositive:
			m.TruePositive++
		case predictedPositive && !actualPositive:
			m.FalsePositive++
		case !predictedPositive && actualPositive:
			m.FalseNegative++
		default:
			m.TrueNegative++
		}
	}
	return m
}
