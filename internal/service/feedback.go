package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"citycast/internal/model"
	"citycast/internal/repository"
)

const (
	DefaultTestimonialLimit = 10
	MaxTestimonialLimit     = 50

	// MinStoredRating is the lowest rating kept as a testimonial candidate.
	MinStoredRating = 3
)

// FeedbackInput is a rating submitted after a tour.
type FeedbackInput struct {
	UserName      string
	UserEmail     *string
	Rating        int
	Review        string
	TourID        string
	TourCity      string
	TourDuration  string
	TourStopCount *int
	SubmittedAt   *time.Time
}

// FeedbackReceipt acknowledges a submission. FeedbackID is empty when the
// feedback was not stored.
type FeedbackReceipt struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FeedbackID string `json:"feedbackId,omitempty"`
}

// FeedbackService stores tour feedback and serves testimonials.
type FeedbackService interface {
	Submit(ctx context.Context, in FeedbackInput) (*FeedbackReceipt, error)

	// Testimonials returns approved feedback, newest first. A zero limit
	// means the default; other values are clamped to 1..MaxTestimonialLimit.
	Testimonials(ctx context.Context, limit int) ([]model.Testimonial, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
	now  func() time.Time
}

// NewFeedbackService constructs a new FeedbackService.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo, now: time.Now}
}

func (s *feedbackService) Submit(ctx context.Context, in FeedbackInput) (*FeedbackReceipt, error) {
	name := strings.TrimSpace(in.UserName)
	if utf8.RuneCountInString(name) < 2 {
		return nil, invalid("userName is required (min 2 characters)")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalid("rating is required (1-5)")
	}

	if in.Rating < MinStoredRating {
		return &FeedbackReceipt{Success: true, Message: "Feedback received"}, nil
	}

	submitted := s.now().UTC()
	if in.SubmittedAt != nil && !in.SubmittedAt.IsZero() {
		submitted = in.SubmittedAt.UTC()
	}

	f, err := s.repo.Create(ctx, &model.Feedback{
		ID:            uuid.New().String(),
		UserName:      name,
		UserEmail:     in.UserEmail,
		Rating:        in.Rating,
		Review:        strings.TrimSpace(in.Review),
		TourID:        in.TourID,
		TourCity:      in.TourCity,
		TourDuration:  in.TourDuration,
		TourStopCount: in.TourStopCount,
		SubmittedAt:   submitted,
		Status:        model.FeedbackStatusApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	return &FeedbackReceipt{Success: true, Message: "Feedback submitted successfully", FeedbackID: f.ID}, nil
}

func (s *feedbackService) Testimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	items, err := s.repo.ListApproved(ctx, ClampTestimonialLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	out := make([]model.Testimonial, 0, len(items))
	for _, f := range items {
		out = append(out, f.Testimonial())
	}
	return out, nil
}

// ClampTestimonialLimit applies the default and the bounds of a
// testimonial page size.
func ClampTestimonialLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultTestimonialLimit
	case limit < 1:
		return 1
	case limit > MaxTestimonialLimit:
		return MaxTestimonialLimit
	}
	return limit
}
