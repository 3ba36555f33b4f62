package repository

import (
	"context"

	"citycast/internal/model"
)

// FeedbackRepository defines persistence for tour feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error)

	// ListApproved returns at most limit approved entries, newest first.
	ListApproved(ctx context.Context, limit int) ([]model.Feedback, error)
}
