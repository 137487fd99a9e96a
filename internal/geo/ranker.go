package geo

import (
	"sort"

	"github.com/limelight-casting/limelight/internal/store"
)

// DefaultRadiusKm is the nearby-view radius applied when the ranker is built
// from a zero config value.
const DefaultRadiusKm = 100.0

// Ranked pairs an audition with its computed distance from the reference
// point. DistanceKm is transient presentation data, not persisted state.
type Ranked struct {
	*store.Audition
	DistanceKm float64 `json:"distance"`
}

// Ranker orders and filters auditions by proximity to a reference point.
// It is a pure computation over its inputs: no retained state, safe for
// concurrent use.
type Ranker struct {
	radiusKm float64
}

// NewRanker creates a Ranker with the given nearby radius in kilometers.
// A non-positive radius falls back to DefaultRadiusKm.
func NewRanker(radiusKm float64) *Ranker {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return &Ranker{radiusKm: radiusKm}
}

// RadiusKm returns the configured nearby radius.
func (r *Ranker) RadiusKm() float64 {
	return r.radiusKm
}

// Nearby returns the auditions within the radius of ref, sorted ascending by
// distance with ties keeping their original relative order. Auditions
// without coordinates are dropped, and a nil reference point yields an empty
// result rather than an error.
func (r *Ranker) Nearby(ref *store.Coordinates, auditions []*store.Audition) []Ranked {
	if ref == nil {
		return nil
	}

	ranked := make([]Ranked, 0, len(auditions))
	for _, a := range auditions {
		d := DistanceBetween(ref, a.Location.Coordinates)
		if d > r.radiusKm {
			continue
		}
		ranked = append(ranked, Ranked{Audition: a, DistanceKm: d})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}
