package model

// CurrentWeather is the present conditions at a tour location.
type CurrentWeather struct {
	Temp          int     `json:"temp"`
	FeelsLike     int     `json:"feelsLike"`
	Wind          int     `json:"wind"`
	Precipitation float64 `json:"precipitation"`
	Label         string  `json:"label"`
	Icon          string  `json:"icon"`
}

// DayForecast is one day of the short forecast strip.
type DayForecast struct {
	Date          string  `json:"date"`
	Day           string  `json:"day"`
	TempMax       int     `json:"tempMax"`
	TempMin       int     `json:"tempMin"`
	Precipitation float64 `json:"precipitation"`
	Label         string  `json:"label"`
	Icon          string  `json:"icon"`
}

// Weather bundles current conditions and the days after today.
type Weather struct {
	Current  CurrentWeather `json:"current"`
	Forecast []DayForecast  `json:"forecast"`
}
