package notify

import (
	"github.com/limelight-casting/limelight/internal/scoring"
)

type AuditionCreatedEvent struct {
	AuditionID string `json:"audition_id"`
	Title      string `json:"title"`
	Organizer  string `json:"organizer"`
	Location   string `json:"location,omitempty"`
}

type AuditionLikedEvent struct {
	AuditionID string `json:"audition_id"`
	UserID     string `json:"user_id"`
	Liked      bool   `json:"liked"`
}

type AuditionCommentedEvent struct {
	AuditionID string `json:"audition_id"`
	UserID     string `json:"user_id"`
	Text       string `json:"text"`
}

type SubmissionReceivedEvent struct {
	SubmissionID string `json:"submission_id"`
	AuditionID   string `json:"audition_id"`
	UserID       string `json:"user_id"`
}

type SubmissionScoredEvent struct {
	SubmissionID string            `json:"submission_id"`
	AuditionID   string            `json:"audition_id"`
	Score        float64           `json:"score"`
	Breakdown    scoring.Breakdown `json:"breakdown"`
}

type UserNotifiedEvent struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
