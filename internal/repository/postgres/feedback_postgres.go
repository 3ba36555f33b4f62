package postgres

import (
	"context"
	"database/sql"

	"citycast/internal/model"
	"citycast/internal/repository"
)

const feedbackColumns = `feedback_id, user_name, user_email, rating, review, tour_id, tour_city,
	tour_duration, tour_stop_count, submitted_at, status`

// FeedbackPostgres is a PostgreSQL implementation of repository.FeedbackRepository.
type FeedbackPostgres struct {
	db *sql.DB
}

// NewFeedbackPostgres creates a new FeedbackPostgres repository.
func NewFeedbackPostgres(db *sql.DB) *FeedbackPostgres {
	return &FeedbackPostgres{db: db}
}

var _ repository.FeedbackRepository = (*FeedbackPostgres)(nil)

// Create inserts a feedback row and returns the stored record.
func (r *FeedbackPostgres) Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	const q = `
		INSERT INTO feedback (` + feedbackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + feedbackColumns
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.UserName,
		f.UserEmail,
		f.Rating,
		f.Review,
		f.TourID,
		f.TourCity,
		f.TourDuration,
		f.TourStopCount,
		f.SubmittedAt,
		f.Status,
	)
	return scanFeedback(row)
}

// ListApproved returns approved feedback, newest first.
func (r *FeedbackPostgres) ListApproved(ctx context.Context, limit int) ([]model.Feedback, error) {
	const q = `SELECT ` + feedbackColumns + `
		FROM feedback
		WHERE status = $1
		ORDER BY submitted_at DESC, feedback_id DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, model.FeedbackStatusApproved, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Feedback, 0, limit)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanFeedback(row rowScanner) (*model.Feedback, error) {
	var f model.Feedback
	if err := row.Scan(
		&f.ID,
		&f.UserName,
		&f.UserEmail,
		&f.Rating,
		&f.Review,
		&f.TourID,
		&f.TourCity,
		&f.TourDuration,
		&f.TourStopCount,
		&f.SubmittedAt,
		&f.Status,
	); err != nil {
		return nil, err
	}
	return &f, nil
}
