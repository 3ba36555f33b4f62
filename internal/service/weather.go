package service

import (
	"context"
	"math"
	"time"

	"citycast/internal/model"
	"citycast/internal/navigation"
)

// ForecastDays is today plus the five days shown in the forecast strip.
const ForecastDays = 6

type wmoCode struct {
	label string
	icon  string
}

var wmoCodes = map[int]wmoCode{
	0:  {"Helder", "☀️"},
	1:  {"Overwegend helder", "🌤️"},
	2:  {"Gedeeltelijk bewolkt", "⛅"},
	3:  {"Bewolkt", "☁️"},
	45: {"Mist", "🌫️"},
	48: {"IJsmist", "🌫️"},
	51: {"Lichte motregen", "🌦️"},
	53: {"Motregen", "🌦️"},
	55: {"Zware motregen", "🌧️"},
	61: {"Lichte regen", "🌧️"},
	63: {"Regen", "🌧️"},
	65: {"Zware regen", "🌧️"},
	71: {"Lichte sneeuw", "🌨️"},
	73: {"Sneeuw", "❄️"},
	75: {"Zware sneeuw", "❄️"},
	77: {"Sneeuwkorrels", "🌨️"},
	80: {"Lichte regenbuien", "🌦️"},
	81: {"Regenbuien", "🌧️"},
	82: {"Zware regenbuien", "⛈️"},
	85: {"Sneeuwbuien", "🌨️"},
	86: {"Zware sneeuwbuien", "❄️"},
	95: {"Onweer", "⛈️"},
	96: {"Onweer met hagel", "⛈️"},
	99: {"Zwaar onweer met hagel", "⛈️"},
}

var unknownWMO = wmoCode{"Onbekend", "🌡️"}

var dayNames = [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"}

// DescribeWeatherCode returns the Dutch label and icon of a WMO weather code.
func DescribeWeatherCode(code int) (label, icon string) {
	w, ok := wmoCodes[code]
	if !ok {
		w = unknownWMO
	}
	return w.label, w.icon
}

// WeatherService reports the weather at a tour location.
type WeatherService interface {
	Forecast(ctx context.Context, lat, lng float64) (*model.Weather, error)
}

type weatherService struct {
	forecaster Forecaster
}

// NewWeatherService constructs a new WeatherService.
func NewWeatherService(forecaster Forecaster) WeatherService {
	return &weatherService{forecaster: forecaster}
}

func (s *weatherService) Forecast(ctx context.Context, lat, lng float64) (*model.Weather, error) {
	if !(navigation.LatLng{Lat: lat, Lng: lng}).Valid() {
		return nil, invalid("lat and lng must be valid numbers")
	}

	f, err := s.forecaster.Forecast(ctx, lat, lng, ForecastDays)
	if err != nil {
		return nil, upstreamError("forecast", err)
	}

	label, icon := DescribeWeatherCode(f.Current.WeatherCode)
	w := &model.Weather{
		Current: model.CurrentWeather{
			Temp:          roundInt(f.Current.Temperature),
			FeelsLike:     roundInt(f.Current.ApparentTemperature),
			Wind:          roundInt(f.Current.WindSpeed),
			Precipitation: f.Current.Precipitation,
			Label:         label,
			Icon:          icon,
		},
		Forecast: []model.DayForecast{},
	}

	d := f.Daily
	// index 0 is today, already covered by the current conditions
	for i := 1; i < len(d.Time); i++ {
		if i >= len(d.WeatherCode) || i >= len(d.TemperatureMax) || i >= len(d.TemperatureMin) || i >= len(d.PrecipitationSum) {
			break
		}
		day, err := time.Parse(time.DateOnly, d.Time[i])
		if err != nil {
			continue
		}
		label, icon := DescribeWeatherCode(d.WeatherCode[i])
		w.Forecast = append(w.Forecast, model.DayForecast{
			Date:          d.Time[i],
			Day:           dayNames[day.Weekday()],
			TempMax:       roundInt(d.TemperatureMax[i]),
			TempMin:       roundInt(d.TemperatureMin[i]),
			Precipitation: math.Round(d.PrecipitationSum[i]*10) / 10,
			Label:         label,
			Icon:          icon,
		})
	}
	return w, nil
}

// roundInt rounds halves toward positive infinity, so -0.5 becomes 0.
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
