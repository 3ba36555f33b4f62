package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"citycast/internal/service"
)

type generateStopsRequest struct {
	StopCity string `json:"stopCity"`
	TourType string `json:"tourType"`
}

// GenerateStops godoc
// @Summary Generate the stops of a city tour
// @Description Searches points of interest for the city and tour type and stores them. stopCity and tourType may also be sent as query parameters.
// @Tags stops
// @Accept json
// @Produce json
// @Param body body generateStopsRequest false "city and tour type"
// @Success 200 {array} model.StopSummary
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /cityStops [post]
func GenerateStops(svc service.StopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateStopsRequest
		if err := decodeJSON(c, &req); err != nil {
			return invalidJSON(c)
		}
		if req.StopCity == "" {
			req.StopCity = c.Query("stopCity")
		}
		if req.TourType == "" {
			req.TourType = c.Query("tourType")
		}

		stops, err := svc.Generate(c.UserContext(), req.StopCity, req.TourType)
		if err != nil {
			if errors.Is(err, service.ErrNoResults) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Geen resultaten gevonden voor "+req.StopCity)
			}
			return writeServiceError(c, err)
		}
		return c.JSON(stops)
	}
}

// ListStops godoc
// @Summary List the stored stops of a city
// @Tags stops
// @Produce json
// @Param stopCity query string true "city"
// @Param tourType query string false "tour type"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorPayload
// @Router /cityStops [get]
func ListStops(svc service.StopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stops, err := svc.List(c.UserContext(), c.Query("stopCity"), c.Query("tourType"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"stops": stops, "count": len(stops)})
	}
}

// EnrichStop godoc
// @Summary Enrich a stop with OpenTripMap details
// @Description Returns the enrichment stored on the stop when stopId and stopCity are given, otherwise looks it up near lat/lng.
// @Tags stops
// @Produce json
// @Param lat query number true "latitude"
// @Param lng query number true "longitude"
// @Param stopId query string false "stop id"
// @Param stopCity query string false "stop city"
// @Param stopName query string false "stop name used to pick the best match"
// @Success 200 {object} service.EnrichmentResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /stopEnrichment [get]
func EnrichStop(svc service.EnrichmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		latStr, lngStr := c.Query("lat"), c.Query("lng")
		if latStr == "" || lngStr == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "lat and lng query parameters are required")
		}
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "lat and lng must be valid numbers")
		}

		res, err := svc.Enrich(c.UserContext(), service.EnrichmentQuery{
			Lat:      lat,
			Lng:      lng,
			StopID:   c.Query("stopId"),
			StopCity: c.Query("stopCity"),
			StopName: c.Query("stopName"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
