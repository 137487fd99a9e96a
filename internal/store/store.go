package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limelight-casting/limelight/internal/scoring"
)

// Role is the resolved role of a requesting identity. Authentication itself
// is owned by an upstream service; handlers only ever see a resolved role.
type Role string

const (
	RoleUser      Role = "user" // talent
	RoleOrganizer Role = "organizer"
)

// Coordinates is an explicit present/absent optional: a nil *Coordinates
// means the location was never geocoded. Zero latitude and longitude are
// valid coordinates (equator, prime meridian), never a missing-value marker.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Comment struct {
	UserID uuid.UUID `json:"user"`
	Text   string    `json:"text"`
}

type Audition struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Location    Location  `json:"location"`
	CreatedBy   uuid.UUID `json:"createdBy"`

	Likes    []uuid.UUID `json:"likes"`
	Comments []Comment   `json:"comments"`

	// SubmissionCount always equals the number of Submission records
	// referencing this audition; it is bumped in the same transaction that
	// inserts the submission.
	SubmissionCount int `json:"submissionCount"`

	CriteriaWeights scoring.CriteriaWeights `json:"criteriaWeights"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToggleLike adds the user to the likes set, or removes them if already
// present. Returns true when the audition is liked after the call.
func (a *Audition) ToggleLike(userID uuid.UUID) bool {
	for i, id := range a.Likes {
		if id == userID {
			a.Likes = append(a.Likes[:i], a.Likes[i+1:]...)
			return false
		}
	}
	a.Likes = append(a.Likes, userID)
	return true
}

// AddComment appends a comment, preserving insertion order.
func (a *Audition) AddComment(userID uuid.UUID, text string) {
	a.Comments = append(a.Comments, Comment{UserID: userID, Text: text})
}

type Submission struct {
	ID         uuid.UUID `json:"id"`
	AuditionID uuid.UUID `json:"audition"`
	UserID     uuid.UUID `json:"user"`
	Text       string    `json:"text"`
	VideoURL   string    `json:"videoUrl,omitempty"`

	// Evaluation output, written once after scoring. A nil AIScore means
	// "not yet evaluated"; the engine never re-scores on later reads.
	AIScore   *float64           `json:"aiScore,omitempty"`
	Feedback  []string           `json:"feedback,omitempty"`
	Breakdown *scoring.Breakdown `json:"breakdown,omitempty"`

	SubmittedAt time.Time `json:"submittedAt"`
}

type NotificationType string

const (
	NotificationNewAudition      NotificationType = "new_audition"
	NotificationSubmissionUpdate NotificationType = "submission_update"
	NotificationGeneral          NotificationType = "general"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

type Stats struct {
	TotalAuditions     int     `json:"total_auditions"`
	TotalSubmissions   int     `json:"total_submissions"`
	ScoredSubmissions  int     `json:"scored_submissions"`
	AvgSubmissionScore float64 `json:"avg_submission_score"`
}

type Store interface {
	CreateAudition(ctx context.Context, a *Audition) error
	GetAudition(ctx context.Context, id uuid.UUID) (*Audition, error)
	ListAuditions(ctx context.Context) ([]*Audition, error)
	UpdateAudition(ctx context.Context, a *Audition) error

	// CreateSubmission inserts the submission and increments the audition's
	// submission counter in one transaction.
	CreateSubmission(ctx context.Context, s *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	ListSubmissionsForAudition(ctx context.Context, auditionID uuid.UUID) ([]*Submission, error)
	ListSubmissionsForUser(ctx context.Context, userID uuid.UUID) ([]*Submission, error)

	// SetSubmissionScore persists an evaluation result. Write-once: it only
	// succeeds while the submission is still unscored.
	SetSubmissionScore(ctx context.Context, id uuid.UUID, score float64, feedback []string, breakdown scoring.Breakdown) error

	CreateNotification(ctx context.Context, n *Notification) error
	CreateNotifications(ctx context.Context, ns []*Notification) error
	ListNotificationsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error)

	// ListUserIDs reads identities from the user directory owned by the auth
	// service. Used for new-audition notification fan-out.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)

	GetStats(ctx context.Context) (*Stats, error)

	Close() error
}
