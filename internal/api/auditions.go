package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limelight-casting/limelight/internal/geocode"
	"github.com/limelight-casting/limelight/internal/notify"
	"github.com/limelight-casting/limelight/internal/scoring"
	"github.com/limelight-casting/limelight/internal/store"
)

type AuditionsHandler struct {
	store          store.Store
	geocoder       geocode.Client
	notifier       *notify.Notifier
	defaultWeights scoring.CriteriaWeights
	logger         *slog.Logger
}

func NewAuditionsHandler(s store.Store, g geocode.Client, n *notify.Notifier, defaults scoring.CriteriaWeights, logger *slog.Logger) *AuditionsHandler {
	return &AuditionsHandler{
		store:          s,
		geocoder:       g,
		notifier:       n,
		defaultWeights: defaults,
		logger:         logger,
	}
}

type CreateAuditionRequest struct {
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	Date            string                   `json:"date"`
	Location        string                   `json:"location"`
	CriteriaWeights *scoring.CriteriaWeights `json:"criteriaWeights,omitempty"`
}

func (h *AuditionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}
	if viewer.Role != store.RoleOrganizer {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "only organizers can post auditions"})
		return
	}

	var req CreateAuditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Title == "" || req.Description == "" || req.Date == "" || req.Location == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title, description, date and location required"})
		return
	}

	weights := h.defaultWeights
	if req.CriteriaWeights != nil && !req.CriteriaWeights.IsZero() {
		if err := req.CriteriaWeights.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		weights = *req.CriteriaWeights
	}

	// Coordinates stay absent when geocoding fails; such auditions never
	// appear in the nearby view. The fallback point is only for resolving a
	// viewer's reference location.
	location := store.Location{Name: req.Location}
	if h.geocoder != nil {
		point, err := h.geocoder.Forward(r.Context(), req.Location)
		if err != nil {
			h.logger.Warn("geocoding failed, storing audition without coordinates", "location", req.Location, "error", err)
		} else {
			coords := point.Coordinates
			location.Coordinates = &coords
		}
	}

	audition := &store.Audition{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        location,
		CreatedBy:       viewer.ID,
		CriteriaWeights: weights,
	}

	if err := h.store.CreateAudition(r.Context(), audition); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.notifier != nil {
		h.notifier.AuditionPosted(r.Context(), audition)
	}

	writeJSON(w, http.StatusCreated, audition)
}

// auditionView is an audition with its submissions attached, matching what
// the audition detail page renders.
type auditionView struct {
	*store.Audition
	Submissions []*store.Submission `json:"submissions"`
}

func (h *AuditionsHandler) List(w http.ResponseWriter, r *http.Request) {
	auditions, err := h.store.ListAuditions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	views := make([]auditionView, 0, len(auditions))
	for _, a := range auditions {
		subs, err := h.store.ListSubmissionsForAudition(r.Context(), a.ID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if subs == nil {
			subs = []*store.Submission{}
		}
		views = append(views, auditionView{Audition: a, Submissions: subs})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *AuditionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid audition id"})
		return
	}

	audition, err := h.store.GetAudition(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if audition == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "audition not found"})
		return
	}

	subs, err := h.store.ListSubmissionsForAudition(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []*store.Submission{}
	}
	writeJSON(w, http.StatusOK, auditionView{Audition: audition, Submissions: subs})
}

func (h *AuditionsHandler) Like(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid audition id"})
		return
	}

	audition, err := h.store.GetAudition(r.Context(), id)
	if err != nil || audition == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "audition not found"})
		return
	}

	liked := audition.ToggleLike(viewer.ID)
	if err := h.store.UpdateAudition(r.Context(), audition); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.notifier != nil {
		h.notifier.AuditionLiked(audition, viewer.ID, liked)
	}

	writeJSON(w, http.StatusOK, audition)
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *AuditionsHandler) Comment(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid audition id"})
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "comment text required"})
		return
	}

	audition, err := h.store.GetAudition(r.Context(), id)
	if err != nil || audition == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "audition not found"})
		return
	}

	audition.AddComment(viewer.ID, req.Text)
	if err := h.store.UpdateAudition(r.Context(), audition); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.notifier != nil {
		h.notifier.AuditionCommented(audition, viewer.ID, req.Text)
	}

	writeJSON(w, http.StatusOK, audition)
}
