package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"citycast/internal/model"
	repoMocks "citycast/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	clientTime := time.Date(2026, 5, 31, 18, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	tests := []struct {
		name       string
		in         FeedbackInput
		setupMocks func(mRepo *repoMocks.MockFeedbackRepository)
		want       *FeedbackReceipt
		wantErrMsg string
	}{
		{
			name: "stored",
			in:   FeedbackInput{UserName: "  Anna ", Rating: 5, Review: " Prachtig! ", TourCity: "Utrecht", SubmittedAt: &clientTime},
			setupMocks: func(mRepo *repoMocks.MockFeedbackRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(f *model.Feedback) bool {
					_, idErr := uuid.Parse(f.ID)
					return idErr == nil && f.UserName == "Anna" && f.Review == "Prachtig!" &&
						f.Status == model.FeedbackStatusApproved &&
						f.SubmittedAt.Equal(clientTime) && f.SubmittedAt.Location() == time.UTC
				})).Return(&model.Feedback{ID: "fb-1"}, nil)
			},
			want: &FeedbackReceipt{Success: true, Message: "Feedback submitted successfully", FeedbackID: "fb-1"},
		},
		{
			name: "submitted time defaults to now",
			in:   FeedbackInput{UserName: "Bo", Rating: 3},
			setupMocks: func(mRepo *repoMocks.MockFeedbackRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(f *model.Feedback) bool {
					_, idErr := uuid.Parse(f.ID)
					return idErr == nil && f.SubmittedAt.Equal(now)
				})).Return(&model.Feedback{ID: "fb-2"}, nil)
			},
			want: &FeedbackReceipt{Success: true, Message: "Feedback submitted successfully", FeedbackID: "fb-2"},
		},
		{
			name:       "low rating is acknowledged but not stored",
			in:         FeedbackInput{UserName: "Bo", Rating: 2},
			setupMocks: func(mRepo *repoMocks.MockFeedbackRepository) {},
			want:       &FeedbackReceipt{Success: true, Message: "Feedback received"},
		},
		{
			name:       "short name",
			in:         FeedbackInput{UserName: " A ", Rating: 5},
			setupMocks: func(mRepo *repoMocks.MockFeedbackRepository) {},
			wantErrMsg: "userName is required (min 2 characters)",
		},
		{
			name:       "rating out of range",
			in:         FeedbackInput{UserName: "Anna", Rating: 6},
			setupMocks: func(mRepo *repoMocks.MockFeedbackRepository) {},
			wantErrMsg: "rating is required (1-5)",
		},
		{
			name: "store failure",
			in:   FeedbackInput{UserName: "Anna", Rating: 4},
			setupMocks: func(mRepo *repoMocks.MockFeedbackRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantErrMsg: "save feedback: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockFeedbackRepository)
			tt.setupMocks(mRepo)

			svc := &feedbackService{repo: mRepo, now: func() time.Time { return now }}
			got, err := svc.Submit(ctx, tt.in)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestFeedbackService_Testimonials(t *testing.T) {
	ctx := context.Background()
	stops := 8
	mRepo := new(repoMocks.MockFeedbackRepository)
	mRepo.On("ListApproved", ctx, 10).Return([]model.Feedback{
		{ID: "fb-1", UserName: "Anna", Rating: 5, TourCity: "Utrecht", TourStopCount: &stops, Status: "approved"},
	}, nil)
	mRepo.On("ListApproved", ctx, 50).Return(nil, errors.New("db down"))

	svc := NewFeedbackService(mRepo)

	got, err := svc.Testimonials(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fb-1", got[0].FeedbackID)
	assert.Equal(t, &stops, got[0].TourStopCount)

	_, err = svc.Testimonials(ctx, 500)
	assert.EqualError(t, err, "list feedback: db down")
	mRepo.AssertExpectations(t)
}

func TestClampTestimonialLimit(t *testing.T) {
	assert.Equal(t, 10, ClampTestimonialLimit(0))
	assert.Equal(t, 1, ClampTestimonialLimit(-5))
	assert.Equal(t, 25, ClampTestimonialLimit(25))
	assert.Equal(t, 50, ClampTestimonialLimit(51))
}
