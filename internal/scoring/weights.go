package scoring

import (
	"fmt"
	"math"
)

// WeightTolerance is the allowed deviation from 1.0 for a weight set's sum.
const WeightTolerance = 0.01

// CriteriaWeights distributes 100% of scoring importance across the four
// evaluation criteria. All weights must be non-negative and sum to 1.0
// (±WeightTolerance). Weights are configured per audition and are never
// renormalized silently.
type CriteriaWeights struct {
	Relevance float64 `json:"relevance" yaml:"relevance"`
	Sentiment float64 `json:"sentiment" yaml:"sentiment"`
	Skills    float64 `json:"skills" yaml:"skills"`
	Video     float64 `json:"video" yaml:"video"`
}

// DefaultWeights returns the platform default weight distribution.
func DefaultWeights() CriteriaWeights {
	return CriteriaWeights{
		Relevance: 0.4,
		Sentiment: 0.2,
		Skills:    0.2,
		Video:     0.2,
	}
}

// Sum returns the total of all weights.
func (w CriteriaWeights) Sum() float64 {
	return w.Relevance + w.Sentiment + w.Skills + w.Video
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w CriteriaWeights) Validate() error {
	if math.Abs(w.Sum()-1.0) > WeightTolerance {
		return fmt.Errorf("%w: criteria weights sum to %.4f, must sum to 1.0", ErrInvalidInput, w.Sum())
	}
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("%w: negative criteria weight: %f", ErrInvalidInput, v)
		}
	}
	return nil
}

// IsZero reports whether no weight has been set, i.e. the caller omitted
// weights entirely and the defaults should apply.
func (w CriteriaWeights) IsZero() bool {
	return w.Relevance == 0 && w.Sentiment == 0 && w.Skills == 0 && w.Video == 0
}

func (w CriteriaWeights) asList() []float64 {
	return []float64{w.Relevance, w.Sentiment, w.Skills, w.Video}
}

// Breakdown holds the per-criterion sub-scores of one evaluation. Each
// sub-score is bounded by its criterion's ceiling (weight × 100), and the
// overall score is exactly the sum of the four components.
type Breakdown struct {
	Relevance float64 `json:"relevance"`
	Sentiment float64 `json:"sentiment"`
	Skills    float64 `json:"skills"`
	Video     float64 `json:"video"`
}

// Total returns the sum of all sub-scores.
func (b Breakdown) Total() float64 {
	return b.Relevance + b.Sentiment + b.Skills + b.Video
}
