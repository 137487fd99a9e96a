package recommend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limelight-casting/limelight/internal/geo"
	"github.com/limelight-casting/limelight/internal/store"
)

// ErrOrganizerViewer is returned when an organizer requests recommendations.
// Recommendations are a talent-only surface; this is a rejection, not an
// empty result.
var ErrOrganizerViewer = errors.New("recommend: only talent accounts receive recommendations")

// Viewer is the identity a view is assembled for.
type Viewer struct {
	ID   uuid.UUID
	Role store.Role
}

// Views carries the three audience-facing audition lists. Recommended is nil
// for organizer viewers, who only see All and Nearby.
type Views struct {
	All         []*store.Audition `json:"all"`
	Nearby      []geo.Ranked      `json:"nearby"`
	Recommended []*store.Audition `json:"recommended,omitempty"`
}

// Service assembles the presentation lists from the raw audition corpus.
type Service struct {
	store  store.Store
	ranker *geo.Ranker
	policy Policy
	logger *slog.Logger
}

// NewService creates a Service. A nil policy defaults to passthrough.
func NewService(s store.Store, ranker *geo.Ranker, policy Policy, logger *slog.Logger) *Service {
	if policy == nil {
		policy = PassthroughPolicy{}
	}
	return &Service{store: s, ranker: ranker, policy: policy, logger: logger}
}

// All returns the full audition corpus, independent of identity.
func (s *Service) All(ctx context.Context) ([]*store.Audition, error) {
	return s.store.ListAuditions(ctx)
}

// Nearby applies the geo ranker to the corpus with the viewer's resolved
// reference point. A nil reference yields an empty list.
func (s *Service) Nearby(ctx context.Context, ref *store.Coordinates) ([]geo.Ranked, error) {
	all, err := s.store.ListAuditions(ctx)
	if err != nil {
		return nil, err
	}
	return s.ranker.Nearby(ref, all), nil
}

// Recommended returns the ranked candidate set for a talent viewer.
// Organizer viewers are rejected with ErrOrganizerViewer.
func (s *Service) Recommended(ctx context.Context, viewer Viewer) ([]*store.Audition, error) {
	if viewer.Role != store.RoleUser {
		return nil, ErrOrganizerViewer
	}
	candidates, err := s.store.ListAuditions(ctx)
	if err != nil {
		return nil, err
	}
	ranked, err := s.policy.Rank(ctx, viewer, candidates)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("recommendations assembled", "viewer", viewer.ID, "candidates", len(ranked))
	return ranked, nil
}

// ViewsFor assembles all three lists in one pass over the corpus.
func (s *Service) ViewsFor(ctx context.Context, viewer Viewer, ref *store.Coordinates) (*Views, error) {
	all, err := s.store.ListAuditions(ctx)
	if err != nil {
		return nil, err
	}

	v := &Views{
		All:    all,
		Nearby: s.ranker.Nearby(ref, all),
	}
	if viewer.Role == store.RoleUser {
		recommended, err := s.policy.Rank(ctx, viewer, all)
		if err != nil {
			return nil, err
		}
		v.Recommended = recommended
	}
	return v, nil
}
