package scoring

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrInvalidInput marks structurally invalid evaluation input: missing
// submission text or a weight set that fails validation. Degraded signals
// (no video, unanalyzable text) are values, not errors.
var ErrInvalidInput = errors.New("scoring: invalid input")

// feedbackThreshold is the fraction of a criterion's ceiling below which the
// engine emits an explanatory remark for that criterion.
const feedbackThreshold = 0.6

// Input bundles everything needed to evaluate one submission. The reference
// text is the audition's title and description. Weights are validated again
// here even though audition creation validates them.
type Input struct {
	Text      string
	VideoURL  string
	Reference string
	Weights   CriteriaWeights
}

// Result is the complete evaluation of one submission. Score is in [0, 100]
// and equals Breakdown.Total() exactly. Criteria carries the raw unweighted
// signals for the explain surface.
type Result struct {
	Score     float64           `json:"score"`
	Breakdown Breakdown         `json:"breakdown"`
	Feedback  []string          `json:"feedback"`
	Criteria  []CriterionResult `json:"criteria"`
}

// Engine evaluates talent submissions against an audition's criteria
// weights. It holds no mutable state and is safe for concurrent use; all
// sub-scorers are deterministic, so identical input yields identical output.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Evaluate scores one submission. The four sub-scorers each produce a raw
// signal in [0, 1]; weighting maps each onto its ceiling (weight × 100) and
// the overall score is the exact sum of the weighted sub-scores.
func (e *Engine) Evaluate(in Input) (Result, error) {
	if in.Text == "" {
		return Result{}, fmt.Errorf("%w: submission text required", ErrInvalidInput)
	}
	if err := in.Weights.Validate(); err != nil {
		return Result{}, err
	}

	criteria := []CriterionResult{
		relevanceCriterion(in.Text, in.Reference),
		sentimentCriterion(in.Text),
		skillsCriterion(in.Text),
		videoCriterion(in.VideoURL),
	}
	weights := in.Weights.asList()

	breakdown := Breakdown{
		Relevance: subScore(criteria[0], weights[0]),
		Sentiment: subScore(criteria[1], weights[1]),
		Skills:    subScore(criteria[2], weights[2]),
		Video:     subScore(criteria[3], weights[3]),
	}

	result := Result{
		Score:     breakdown.Total(),
		Breakdown: breakdown,
		Feedback:  feedback(criteria),
		Criteria:  criteria,
	}

	e.logger.Debug("submission evaluated",
		"score", result.Score,
		"relevance", breakdown.Relevance,
		"sentiment", breakdown.Sentiment,
		"skills", breakdown.Skills,
		"video", breakdown.Video,
	)
	return result, nil
}

// subScore maps a raw [0, 1] signal onto its weighted ceiling, rounded to one
// decimal and clamped so rounding can never push it past the ceiling.
func subScore(c CriterionResult, weight float64) float64 {
	ceiling := weight * 100
	v := math.Round(c.Score*ceiling*10) / 10
	return math.Min(v, ceiling)
}

// feedback emits at least one remark for every criterion that scored below
// feedbackThreshold of its ceiling.
func feedback(criteria []CriterionResult) []string {
	var out []string
	for _, c := range criteria {
		if c.Score < feedbackThreshold {
			out = append(out, c.Name+": "+c.Reason)
		}
	}
	if len(out) == 0 {
		out = append(out, "strong submission across all criteria")
	}
	return out
}
