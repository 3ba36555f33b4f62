package handler

import (
	"github.com/gofiber/fiber/v2"

	"citycast/internal/navigation"
	"citycast/internal/service"
)

type routeRequest struct {
	Origin      navigation.LatLng   `json:"origin"`
	Destination navigation.LatLng   `json:"destination"`
	Waypoints   []navigation.LatLng `json:"waypoints"`
	Mode        string              `json:"mode"`
	Language    string              `json:"language"`
}

// PlanRoute godoc
// @Summary Route between tour stops
// @Description Plans a route through the waypoints and returns it as turn-by-turn steps with the decoded path.
// @Tags navigation
// @Accept json
// @Produce json
// @Param body body routeRequest true "route request"
// @Success 200 {object} navigation.Route
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /directions [post]
func PlanRoute(svc service.NavigationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req routeRequest
		if err := decodeJSON(c, &req); err != nil {
			return invalidJSON(c)
		}
		if req.Language == "" {
			req.Language = service.LanguageFromHeader(c.Get(fiber.HeaderAcceptLanguage))
		}

		route, err := svc.Route(c.UserContext(), service.RouteInput(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(route)
	}
}

type progressRequest struct {
	Route            navigation.Route   `json:"route"`
	CurrentStepIndex int                `json:"currentStepIndex"`
	Location         *navigation.Sample `json:"location"`
	ThresholdMeters  float64            `json:"thresholdMeters"`
	Stop             *navigation.LatLng `json:"stop"`
}

// TrackProgress godoc
// @Summary Evaluate one location update
// @Description Returns the current step, distance to the next maneuver, the off-route flag and, when a stop is given, the arrival state.
// @Tags navigation
// @Accept json
// @Produce json
// @Param body body progressRequest true "route and location"
// @Success 200 {object} service.ProgressResult
// @Failure 400 {object} errorPayload
// @Router /navigation/progress [post]
func TrackProgress(svc service.NavigationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req progressRequest
		if err := decodeJSON(c, &req); err != nil {
			return invalidJSON(c)
		}
		return c.JSON(svc.Progress(c.UserContext(), service.ProgressInput(req)))
	}
}
