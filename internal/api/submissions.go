package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limelight-casting/limelight/internal/notify"
	"github.com/limelight-casting/limelight/internal/scoring"
	"github.com/limelight-casting/limelight/internal/store"
)

type SubmissionsHandler struct {
	store    store.Store
	engine   *scoring.Engine
	notifier *notify.Notifier
	logger   *slog.Logger
}

func NewSubmissionsHandler(s store.Store, engine *scoring.Engine, n *notify.Notifier, logger *slog.Logger) *SubmissionsHandler {
	return &SubmissionsHandler{store: s, engine: engine, notifier: n, logger: logger}
}

type SubmitRequest struct {
	Text     string `json:"text"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Submit creates a submission and scores it synchronously. A scoring failure
// is not a submission failure: the submission is kept unscored and the error
// is logged.
func (h *SubmissionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	viewer, err := viewerFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid identity headers"})
		return
	}
	auditionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid audition id"})
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "submission text required"})
		return
	}

	audition, err := h.store.GetAudition(r.Context(), auditionID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if audition == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "audition not found"})
		return
	}

	sub := &store.Submission{
		AuditionID: auditionID,
		UserID:     viewer.ID,
		Text:       req.Text,
		VideoURL:   req.VideoURL,
	}
	if err := h.store.CreateSubmission(r.Context(), sub); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	start := time.Now()
	result, err := h.engine.Evaluate(scoring.Input{
		Text:      sub.Text,
		VideoURL:  sub.VideoURL,
		Reference: audition.Title + " " + audition.Description,
		Weights:   audition.CriteriaWeights,
	})
	evaluationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		evaluationFailures.Inc()
		h.logger.Warn("evaluation failed, submission kept unscored", "submission", sub.ID, "error", err)
	} else {
		err := h.store.SetSubmissionScore(r.Context(), sub.ID, result.Score, result.Feedback, result.Breakdown)
		switch {
		case errors.Is(err, store.ErrAlreadyScored):
			// already written, keep the persisted values
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		default:
			sub.AIScore = &result.Score
			sub.Feedback = result.Feedback
			breakdown := result.Breakdown
			sub.Breakdown = &breakdown
		}
	}

	if h.notifier != nil {
		h.notifier.SubmissionReceived(r.Context(), audition, sub)
	}

	writeJSON(w, http.StatusCreated, sub)
}

func (h *SubmissionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid submission id"})
		return
	}

	sub, err := h.store.GetSubmission(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sub == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "submission not found"})
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// explainResponse breaks a persisted score down to its per-criterion parts.
type explainResponse struct {
	SubmissionID uuid.UUID          `json:"submissionId"`
	Scored       bool               `json:"scored"`
	Score        *float64           `json:"aiScore,omitempty"`
	Breakdown    *scoring.Breakdown `json:"breakdown,omitempty"`
	Feedback     []string           `json:"feedback,omitempty"`
}

func (h *SubmissionsHandler) Explain(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid submission id"})
		return
	}

	sub, err := h.store.GetSubmission(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sub == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "submission not found"})
		return
	}

	writeJSON(w, http.StatusOK, explainResponse{
		SubmissionID: sub.ID,
		Scored:       sub.AIScore != nil,
		Score:        sub.AIScore,
		Breakdown:    sub.Breakdown,
		Feedback:     sub.Feedback,
	})
}
