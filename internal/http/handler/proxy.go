package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"citycast/internal/service"
)

type createPaymentRequest struct {
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	TourID      string      `json:"tourId"`
	TourCity    string      `json:"tourCity"`
	RedirectURL string      `json:"redirectUrl"`
}

// CreatePayment godoc
// @Summary Start a donation checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param body body createPaymentRequest true "donation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /payments [post]
func CreatePayment(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createPaymentRequest
		if err := decodeJSON(c, &req); err != nil {
			return invalidJSON(c)
		}

		p, err := svc.Create(c.UserContext(), service.PaymentInput{
			Amount:      req.Amount.String(),
			Currency:    req.Currency,
			TourID:      req.TourID,
			TourCity:    req.TourCity,
			RedirectURL: req.RedirectURL,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"checkoutUrl": p.CheckoutURL})
	}
}

type geocodeRequest struct {
	Address  string `json:"address"`
	LatLng   string `json:"latlng"`
	Language string `json:"language"`
	Region   string `json:"region"`
}

// Geocode godoc
// @Summary Geocode an address or coordinate
// @Description Proxies the Google Geocoding API and returns its response unchanged. Without a language the Accept-Language header is used.
// @Tags maps
// @Accept json
// @Produce json
// @Param body body geocodeRequest true "lookup"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /geocode [post]
func Geocode(svc service.GeocodeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req geocodeRequest
		if err := decodeJSON(c, &req); err != nil {
			return invalidJSON(c)
		}
		if req.Address == "" && req.LatLng == "" {
			req.Address = c.Query("address")
			req.LatLng = c.Query("latlng")
		}
		if req.Language == "" {
			req.Language = service.LanguageFromHeader(c.Get(fiber.HeaderAcceptLanguage))
		}

		data, err := svc.Geocode(c.UserContext(), service.GeocodeInput(req))
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return writeError(c, fiber.StatusInternalServerError, "NOT_CONFIGURED", "Geocoding service not configured")
		case errors.Is(err, service.ErrUpstream):
			return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Geocoding request failed")
		case err != nil:
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(data)
	}
}

// GetWeather godoc
// @Summary Current weather and five day forecast
// @Tags weather
// @Produce json
// @Param lat query number true "latitude"
// @Param lng query number true "longitude"
// @Success 200 {object} model.Weather
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /weather [get]
func GetWeather(svc service.WeatherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "lat and lng query parameters are required")
		}

		w, err := svc.Forecast(c.UserContext(), lat, lng)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(w)
	}
}
