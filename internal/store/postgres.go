package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limelight-casting/limelight/internal/scoring"
)

// ErrAlreadyScored is returned by SetSubmissionScore when the submission has
// already been evaluated. Score fields are write-once.
var ErrAlreadyScored = errors.New("store: submission already scored")

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const auditionColumns = `id, title, description, date_text,
	location_name, latitude, longitude,
	created_by, likes, comments, submission_count, criteria_weights,
	created_at, updated_at`

func (s *PostgresStore) CreateAudition(ctx context.Context, a *Audition) error {
	commentsJSON, _ := json.Marshal(a.Comments)
	weightsJSON, _ := json.Marshal(a.CriteriaWeights)

	var lat, lon *float64
	if a.Location.Coordinates != nil {
		lat = &a.Location.Coordinates.Latitude
		lon = &a.Location.Coordinates.Longitude
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO auditions (title, description, date_text,
			location_name, latitude, longitude,
			created_by, likes, comments, submission_count, criteria_weights)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10)
		RETURNING id, created_at, updated_at`,
		a.Title, a.Description, a.Date,
		a.Location.Name, lat, lon,
		a.CreatedBy, a.Likes, commentsJSON, weightsJSON,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func scanAudition(row pgx.Row) (*Audition, error) {
	a := &Audition{}
	var lat, lon sql.NullFloat64
	var commentsJSON, weightsJSON []byte
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Date,
		&a.Location.Name, &lat, &lon,
		&a.CreatedBy, &a.Likes, &commentsJSON, &a.SubmissionCount, &weightsJSON,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if lat.Valid && lon.Valid {
		a.Location.Coordinates = &Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}
	}
	if len(commentsJSON) > 0 {
		_ = json.Unmarshal(commentsJSON, &a.Comments)
	}
	if len(weightsJSON) > 0 {
		_ = json.Unmarshal(weightsJSON, &a.CriteriaWeights)
	}
	return a, nil
}

func (s *PostgresStore) GetAudition(ctx context.Context, id uuid.UUID) (*Audition, error) {
	return scanAudition(s.pool.QueryRow(ctx, `
		SELECT `+auditionColumns+` FROM auditions WHERE id = $1`, id))
}

func (s *PostgresStore) ListAuditions(ctx context.Context) ([]*Audition, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+auditionColumns+` FROM auditions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Audition
	for rows.Next() {
		a, err := scanAudition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateAudition(ctx context.Context, a *Audition) error {
	commentsJSON, _ := json.Marshal(a.Comments)
	_, err := s.pool.Exec(ctx, `
		UPDATE auditions
		SET likes = $2, comments = $3, updated_at = now()
		WHERE id = $1`,
		a.ID, a.Likes, commentsJSON,
	)
	return err
}

const submissionColumns = `id, audition_id, user_id, text, video_url,
	ai_score, feedback, breakdown, submitted_at`

func (s *PostgresStore) CreateSubmission(ctx context.Context, sub *Submission) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO submissions (audition_id, user_id, text, video_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, submitted_at`,
		sub.AuditionID, sub.UserID, sub.Text, sub.VideoURL,
	).Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE auditions
		SET submission_count = submission_count + 1, updated_at = now()
		WHERE id = $1`, sub.AuditionID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanSubmission(row pgx.Row) (*Submission, error) {
	sub := &Submission{}
	var score sql.NullFloat64
	var videoURL sql.NullString
	var feedbackJSON, breakdownJSON []byte
	err := row.Scan(
		&sub.ID, &sub.AuditionID, &sub.UserID, &sub.Text, &videoURL,
		&score, &feedbackJSON, &breakdownJSON, &sub.SubmittedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if videoURL.Valid {
		sub.VideoURL = videoURL.String
	}
	if score.Valid {
		sub.AIScore = &score.Float64
	}
	if len(feedbackJSON) > 0 {
		_ = json.Unmarshal(feedbackJSON, &sub.Feedback)
	}
	if len(breakdownJSON) > 0 {
		b := &scoring.Breakdown{}
		if json.Unmarshal(breakdownJSON, b) == nil {
			sub.Breakdown = b
		}
	}
	return sub, nil
}

func (s *PostgresStore) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return scanSubmission(s.pool.QueryRow(ctx, `
		SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
}

func (s *PostgresStore) listSubmissions(ctx context.Context, query string, arg interface{}) ([]*Submission, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListSubmissionsForAudition(ctx context.Context, auditionID uuid.UUID) ([]*Submission, error) {
	return s.listSubmissions(ctx, `
		SELECT `+submissionColumns+` FROM submissions
		WHERE audition_id = $1 ORDER BY submitted_at ASC`, auditionID)
}

func (s *PostgresStore) ListSubmissionsForUser(ctx context.Context, userID uuid.UUID) ([]*Submission, error) {
	return s.listSubmissions(ctx, `
		SELECT `+submissionColumns+` FROM submissions
		WHERE user_id = $1 ORDER BY submitted_at DESC`, userID)
}

func (s *PostgresStore) SetSubmissionScore(ctx context.Context, id uuid.UUID, score float64, feedback []string, breakdown scoring.Breakdown) error {
	feedbackJSON, _ := json.Marshal(feedback)
	breakdownJSON, _ := json.Marshal(breakdown)

	tag, err := s.pool.Exec(ctx, `
		UPDATE submissions
		SET ai_score = $2, feedback = $3, breakdown = $4
		WHERE id = $1 AND ai_score IS NULL`,
		id, score, feedbackJSON, breakdownJSON,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyScored
	}
	return nil
}

func (s *PostgresStore) CreateNotification(ctx context.Context, n *Notification) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, message, type, read)
		VALUES ($1, $2, $3, false)
		RETURNING id, created_at`,
		n.UserID, n.Message, n.Type,
	).Scan(&n.ID, &n.CreatedAt)
}

func (s *PostgresStore) CreateNotifications(ctx context.Context, ns []*Notification) error {
	if len(ns) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, n := range ns {
		batch.Queue(`
			INSERT INTO notifications (user_id, message, type, read)
			VALUES ($1, $2, $3, false)`,
			n.UserID, n.Message, n.Type)
	}
	return s.pool.SendBatch(ctx, batch).Close()
}

func (s *PostgresStore) ListNotificationsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, message, type, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM auditions),
			(SELECT count(*) FROM submissions),
			(SELECT count(*) FROM submissions WHERE ai_score IS NOT NULL),
			COALESCE((SELECT avg(ai_score) FROM submissions WHERE ai_score IS NOT NULL), 0)
	`).Scan(&stats.TotalAuditions, &stats.TotalSubmissions, &stats.ScoredSubmissions, &stats.AvgSubmissionScore)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
