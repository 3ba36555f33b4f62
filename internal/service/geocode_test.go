package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"citycast/internal/upstream"
	upMocks "citycast/internal/upstream/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeService_Geocode(t *testing.T) {
	ctx := context.Background()
	body := json.RawMessage(`{"status":"OK","results":[]}`)

	tests := []struct {
		name       string
		in         GeocodeInput
		setupMocks func(m *upMocks.MockMaps)
		wantErr    error
	}{
		{
			name: "address with defaults",
			in:   GeocodeInput{Address: " Oudegracht 1, Utrecht "},
			setupMocks: func(m *upMocks.MockMaps) {
				m.On("Geocode", ctx, upstream.GeocodeQuery{Address: "Oudegracht 1, Utrecht", Language: "nl", Region: "nl"}).Return(body, nil)
			},
		},
		{
			name: "reverse lookup in english for belgium",
			in:   GeocodeInput{LatLng: "51.05,3.72", Language: "en-GB", Region: "BE"},
			setupMocks: func(m *upMocks.MockMaps) {
				m.On("Geocode", ctx, upstream.GeocodeQuery{LatLng: "51.05,3.72", Language: "en-GB", Region: "be"}).Return(body, nil)
			},
		},
		{
			name:       "nothing to look up",
			in:         GeocodeInput{Address: "  "},
			setupMocks: func(m *upMocks.MockMaps) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "bad language tag",
			in:         GeocodeInput{Address: "x", Language: "not a tag!"},
			setupMocks: func(m *upMocks.MockMaps) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "key missing",
			in:   GeocodeInput{Address: "x"},
			setupMocks: func(m *upMocks.MockMaps) {
				m.On("Geocode", ctx, upstream.GeocodeQuery{Address: "x", Language: "nl", Region: "nl"}).Return(nil, upstream.ErrNotConfigured)
			},
			wantErr: ErrNotConfigured,
		},
		{
			name: "request failed",
			in:   GeocodeInput{Address: "x"},
			setupMocks: func(m *upMocks.MockMaps) {
				m.On("Geocode", ctx, upstream.GeocodeQuery{Address: "x", Language: "nl", Region: "nl"}).Return(nil, errors.New("timeout"))
			},
			wantErr: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(upMocks.MockMaps)
			tt.setupMocks(m)

			got, err := NewGeocodeService(m, "nl", "nl").Geocode(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, string(body), string(got))
			}
			m.AssertExpectations(t)
		})
	}
}

func TestLanguageFromHeader(t *testing.T) {
	assert.Equal(t, "de", LanguageFromHeader("de-DE,de;q=0.9,en;q=0.5"))
	assert.Equal(t, "en", LanguageFromHeader("en-US"))
	assert.Equal(t, "", LanguageFromHeader(""))
}
