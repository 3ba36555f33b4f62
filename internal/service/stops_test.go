package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"citycast/internal/model"
	"citycast/internal/repository"
	repoMocks "citycast/internal/repository/mocks"
	"citycast/internal/upstream"
	upMocks "citycast/internal/upstream/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStopService_Generate(t *testing.T) {
	ctx := context.Background()
	query := upstream.TextSearch{
		Query:        "top 10 historisch bezienswaardigheden in Utrecht",
		LanguageCode: "nl",
		MaxResults:   10,
	}
	places := []upstream.Place{
		{ID: "p1", Name: "Domtoren", Lat: 52.0907, Lng: 5.1214},
		{ID: "p2", Name: "Centraal Museum", Lat: 52.0838, Lng: 5.1255},
	}

	tests := []struct {
		name       string
		city       string
		tourType   string
		setupMocks func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces)
		want       []model.StopSummary
		wantErr    error
		wantErrMsg string
	}{
		{
			name:     "new and existing stops",
			city:     " Utrecht ",
			tourType: "historisch",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {
				mPlaces.On("SearchText", ctx, query).Return(places, nil)
				mRepo.On("FindByNameAndCity", ctx, "Domtoren", "Utrecht").
					Return(&model.Stop{ID: "s-1", Name: "Domtoren", Description: "Domtoren", Lat: 52.0907, Lng: 5.1214}, nil)
				mRepo.On("FindByNameAndCity", ctx, "Centraal Museum", "Utrecht").Return(nil, repository.ErrNotFound)
				mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.Stop) bool {
					_, idErr := uuid.Parse(s.ID)
					return idErr == nil && !s.CreatedAt.IsZero() && s.LastUpdated.Equal(s.CreatedAt) &&
						s.Name == "Centraal Museum" && s.Description == "Centraal Museum" &&
						s.City == "Utrecht" && s.TourType == "historisch" && s.Lat == 52.0838
				})).Return(&model.Stop{ID: "s-2", Name: "Centraal Museum", Description: "Centraal Museum", Lat: 52.0838, Lng: 5.1255}, nil)
			},
			want: []model.StopSummary{
				{ID: "s-1", Name: "Domtoren", Description: "Domtoren", Lat: 52.0907, Lng: 5.1214},
				{ID: "s-2", Name: "Centraal Museum", Description: "Centraal Museum", Lat: 52.0838, Lng: 5.1255},
			},
		},
		{
			name:     "lost insert race resolves to the stored stop",
			city:     "Utrecht",
			tourType: "historisch",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {
				mPlaces.On("SearchText", ctx, query).Return(places[:1], nil)
				mRepo.On("FindByNameAndCity", ctx, "Domtoren", "Utrecht").Return(nil, repository.ErrNotFound).Once()
				mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
				mRepo.On("FindByNameAndCity", ctx, "Domtoren", "Utrecht").
					Return(&model.Stop{ID: "s-1", Name: "Domtoren", Description: "Domtoren"}, nil).Once()
			},
			want: []model.StopSummary{{ID: "s-1", Name: "Domtoren", Description: "Domtoren"}},
		},
		{
			name:       "validation error - missing tour type",
			city:       "Utrecht",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:     "no places",
			city:     "Utrecht",
			tourType: "historisch",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {
				mPlaces.On("SearchText", ctx, query).Return([]upstream.Place{}, nil)
			},
			wantErr: ErrNoResults,
		},
		{
			name:     "places not configured",
			city:     "Utrecht",
			tourType: "historisch",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {
				mPlaces.On("SearchText", ctx, query).Return(nil, upstream.ErrNotConfigured)
			},
			wantErr: ErrNotConfigured,
		},
		{
			name:     "places failure",
			city:     "Utrecht",
			tourType: "historisch",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {
				mPlaces.On("SearchText", ctx, query).Return(nil, &upstream.StatusError{Provider: "google_places", StatusCode: 500})
			},
			wantErr: ErrUpstream,
		},
		{
			name:     "store failure",
			city:     "Utrecht",
			tourType: "historisch",
			setupMocks: func(mRepo *repoMocks.MockStopRepository, mPlaces *upMocks.MockPlaces) {
				mPlaces.On("SearchText", ctx, query).Return(places, nil)
				mRepo.On("FindByNameAndCity", ctx, "Domtoren", "Utrecht").Return(nil, errors.New("db down"))
			},
			wantErrMsg: `save stop "Domtoren": db down`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockStopRepository)
			mPlaces := new(upMocks.MockPlaces)
			tt.setupMocks(mRepo, mPlaces)

			svc := NewStopService(mRepo, mPlaces, "nl", 10)
			got, err := svc.Generate(ctx, tt.city, tt.tourType)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
			mPlaces.AssertExpectations(t)
		})
	}
}

func TestStopService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockStopRepository)
	mRepo.On("ListByCity", ctx, "Utrecht", "").Return([]model.Stop{{ID: "s-1"}}, nil)

	svc := NewStopService(mRepo, new(upMocks.MockPlaces), "", 0)
	got, err := svc.List(ctx, "Utrecht", "  ")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(ctx, "", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "city is required", ve.Message)
	mRepo.AssertExpectations(t)
}

func TestStopService_GenerateAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 5, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	mPlaces := new(upMocks.MockPlaces)
	mPlaces.On("SearchText", ctx, mock.Anything).Return([]upstream.Place{
		{Name: "Domtoren", Lat: 52.0907, Lng: 5.1214},
		{Name: "Rietveld Schröderhuis", Lat: 52.0853, Lng: 5.1475},
	}, nil)

	mRepo := new(repoMocks.MockStopRepository)
	mRepo.On("FindByNameAndCity", ctx, mock.Anything, "Utrecht").Return(nil, repository.ErrNotFound)

	var created []*model.Stop
	mRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*model.Stop))
	}).Return(&model.Stop{ID: "stored"}, nil)

	svc := NewStopService(mRepo, mPlaces, "nl", 10)
	svc.(*stopService).now = func() time.Time { return fixed }

	_, err := svc.Generate(ctx, "Utrecht", "historisch")
	require.NoError(t, err)
	require.Len(t, created, 2)

	for i, s := range created {
		_, err := uuid.Parse(s.ID)
		assert.NoError(t, err, "stop %d id", i)
		assert.Equal(t, fixed.UTC(), s.CreatedAt)
		assert.Equal(t, fixed.UTC(), s.LastUpdated)
	}
	assert.NotEqual(t, created[0].ID, created[1].ID)
}
