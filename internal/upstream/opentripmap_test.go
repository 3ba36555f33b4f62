package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTripMapClient_Radius(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/radius", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "200", q.Get("radius"))
		assert.Equal(t, "52.0907", q.Get("lat"))
		assert.Equal(t, "5.1214", q.Get("lon"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "interesting_places,historic,architecture,cultural,museums,religion,natural", q.Get("kinds"))
		assert.Equal(t, "otm-key", q.Get("apikey"))
		w.Write([]byte(`[{"xid":"N1","name":"Domtoren","dist":12.5,"rate":7},{"xid":"W2","name":"","dist":80}]`))
	}))
	defer srv.Close()

	c := NewOpenTripMapClient(Config{BaseURL: srv.URL, APIKey: "otm-key"})
	pois, err := c.Radius(context.Background(), 52.0907, 5.1214)
	require.NoError(t, err)
	require.Len(t, pois, 2)
	assert.Equal(t, POI{XID: "N1", Name: "Domtoren", Dist: 12.5, Rate: 7}, pois[0])
}

func TestOpenTripMapClient_Detail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/xid/N1", r.URL.Path)
		assert.Equal(t, "otm-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{
			"xid":"N1","name":"Domtoren","kinds":"historic,architecture, towers",
			"rate":"3h","wikidata":"Q1","wikipedia":"https://nl.wikipedia.org/wiki/Domtoren",
			"image":"https://commons.wikimedia.org/dom.jpg",
			"preview":{"source":"https://upload.wikimedia.org/dom_400.jpg","width":300,"height":400},
			"wikipedia_extracts":{"title":"nl:Domtoren","text":"De Domtoren is de klokkentoren.","html":"<p>De Domtoren</p>"}
		}`))
	}))
	defer srv.Close()

	c := NewOpenTripMapClient(Config{BaseURL: srv.URL, APIKey: "otm-key"})
	d, err := c.Detail(context.Background(), "N1")
	require.NoError(t, err)

	assert.Equal(t, "Domtoren", d.Name)
	assert.Equal(t, 3, d.RateValue())
	require.NotNil(t, d.Preview)
	assert.Equal(t, 400, d.Preview.Height)
	require.NotNil(t, d.WikipediaExtracts)
	assert.Equal(t, "nl:Domtoren", d.WikipediaExtracts.Title)
}

func TestOpenTripMapClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Unknown object"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := context.Background()

	_, err := NewOpenTripMapClient(Config{BaseURL: srv.URL, APIKey: "k"}).Detail(ctx, "missing")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "opentripmap", se.Provider)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)

	_, err = NewOpenTripMapClient(Config{BaseURL: srv.URL}).Radius(ctx, 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`7`, 7},
		{`"3"`, 3},
		{`"2h"`, 2},
		{`"h"`, 0},
	}
	for _, tt := range tests {
		var r rate
		require.NoError(t, json.Unmarshal([]byte(tt.in), &r), tt.in)
		assert.Equal(t, tt.want, int(r), tt.in)
	}

	var r rate
	assert.Error(t, json.Unmarshal([]byte(`{}`), &r))

	var d PlaceDetail
	require.NoError(t, json.Unmarshal([]byte(`{"xid":"N1"}`), &d))
	assert.Zero(t, d.RateValue())
}
