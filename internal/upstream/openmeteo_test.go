package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMeteoClient_Forecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "52.37", q.Get("latitude"))
		assert.Equal(t, "4.89", q.Get("longitude"))
		assert.Equal(t, "temperature_2m,apparent_temperature,weathercode,windspeed_10m,precipitation", q.Get("current"))
		assert.Equal(t, "weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum", q.Get("daily"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, "6", q.Get("forecast_days"))
		assert.False(t, q.Has("apikey"))
		w.Write([]byte(`{
			"timezone":"Europe/Amsterdam",
			"current":{"temperature_2m":14.6,"apparent_temperature":12.2,"weathercode":3,"windspeed_10m":18.4,"precipitation":0.2},
			"daily":{
				"time":["2026-06-01","2026-06-02"],
				"weathercode":[3,61],
				"temperature_2m_max":[16.1,15.4],
				"temperature_2m_min":[9.8,10.3],
				"precipitation_sum":[0.2,4.26]
			}
		}`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(Config{BaseURL: srv.URL})
	f, err := c.Forecast(context.Background(), 52.37, 4.89, 6)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Amsterdam", f.Timezone)
	assert.Equal(t, 14.6, f.Current.Temperature)
	assert.Equal(t, 3, f.Current.WeatherCode)
	assert.Equal(t, []string{"2026-06-01", "2026-06-02"}, f.Daily.Time)
	assert.Equal(t, []int{3, 61}, f.Daily.WeatherCode)
	assert.Equal(t, 4.26, f.Daily.PrecipitationSum[1])
}

func TestOpenMeteoClient_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":`))
	}))
	defer srv.Close()

	_, err := NewOpenMeteoClient(Config{BaseURL: srv.URL}).Forecast(context.Background(), 1, 1, 6)
	assert.ErrorContains(t, err, "open_meteo: decode response")
}
