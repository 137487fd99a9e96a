package recommend

import (
	"context"
	"sort"

	"github.com/limelight-casting/limelight/internal/store"
)

// Policy orders the recommendation candidate set for a viewer. It is the
// seam where ranking strategy evolves: new policies plug in here without
// touching the scoring engine or the geo ranker.
type Policy interface {
	Rank(ctx context.Context, viewer Viewer, candidates []*store.Audition) ([]*store.Audition, error)
}

// PassthroughPolicy returns the candidate set unchanged. This is the default
// behavior: every audition is a candidate, in corpus order.
type PassthroughPolicy struct{}

func (PassthroughPolicy) Rank(_ context.Context, _ Viewer, candidates []*store.Audition) ([]*store.Audition, error) {
	return candidates, nil
}

// AffinityPolicy biases the ranking toward auditions whose criteria weights
// line up with the criteria the viewer has historically scored strongest on.
// A viewer with no scored submissions gets the passthrough order.
type AffinityPolicy struct {
	store store.Store
}

func NewAffinityPolicy(s store.Store) *AffinityPolicy {
	return &AffinityPolicy{store: s}
}

func (p *AffinityPolicy) Rank(ctx context.Context, viewer Viewer, candidates []*store.Audition) ([]*store.Audition, error) {
	history, err := p.store.ListSubmissionsForUser(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	strengths, ok := viewerStrengths(history)
	if !ok {
		return candidates, nil
	}

	ranked := make([]*store.Audition, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return affinity(strengths, ranked[i]) > affinity(strengths, ranked[j])
	})
	return ranked, nil
}

// viewerStrengths averages the per-criterion share of each scored
// submission's total, yielding a unit vector of where the viewer's points
// historically came from.
func viewerStrengths(history []*store.Submission) ([4]float64, bool) {
	var sums [4]float64
	var n int
	for _, sub := range history {
		if sub.Breakdown == nil || sub.AIScore == nil {
			continue
		}
		total := sub.Breakdown.Total()
		if total <= 0 {
			continue
		}
		sums[0] += sub.Breakdown.Relevance / total
		sums[1] += sub.Breakdown.Sentiment / total
		sums[2] += sub.Breakdown.Skills / total
		sums[3] += sub.Breakdown.Video / total
		n++
	}
	if n == 0 {
		return sums, false
	}
	for i := range sums {
		sums[i] /= float64(n)
	}
	return sums, true
}

// affinity is the dot product of the viewer's strength vector and the
// audition's criteria weights: auditions that reward what the viewer is
// good at score higher.
func affinity(strengths [4]float64, a *store.Audition) float64 {
	w := a.CriteriaWeights
	return strengths[0]*w.Relevance +
		strengths[1]*w.Sentiment +
		strengths[2]*w.Skills +
		strengths[3]*w.Video
}
