package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const DefaultOpenMeteoURL = "https://api.open-meteo.com"

// Forecast is the Open-Meteo response for current conditions and a daily
// outlook. Daily slices are index-aligned with Time.
type Forecast struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weathercode"`
		WindSpeed           float64 `json:"windspeed_10m"`
		Precipitation       float64 `json:"precipitation"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weathercode"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

// OpenMeteoClient talks to the keyless Open-Meteo forecast API.
type OpenMeteoClient struct {
	c client
}

// NewOpenMeteoClient builds an Open-Meteo client. APIKey is ignored.
func NewOpenMeteoClient(cfg Config) *OpenMeteoClient {
	return &OpenMeteoClient{c: newClient("open_meteo", cfg, DefaultOpenMeteoURL)}
}

// Forecast returns current conditions and days forecast days including
// today, in the timezone of the coordinate.
func (o *OpenMeteoClient) Forecast(ctx context.Context, lat, lng float64, days int) (*Forecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("current", "temperature_2m,apparent_temperature,weathercode,windspeed_10m,precipitation")
	params.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum")
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	req, err := o.c.newRequest(ctx, http.MethodGet, "/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	body, err := o.c.do(req)
	if err != nil {
		return nil, err
	}
	var f Forecast
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("open_meteo: decode response: %w", err)
	}
	return &f, nil
}
