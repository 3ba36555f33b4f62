package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"citycast/internal/http/middleware"
	"citycast/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_INPUT", "NOT_FOUND", "UPSTREAM_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates a service error into the error envelope.
// Server side failures are logged with the request logger.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", ve.Message)
	case errors.Is(err, service.ErrNoEnrichment):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "No enrichment data found for this location")
	case errors.Is(err, service.ErrNoResults):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no results found")
	case errors.Is(err, service.ErrNoRoute):
		return writeError(c, fiber.StatusNotFound, "NO_ROUTE", "no route found")
	}

	log := zerolog.Ctx(c.UserContext())
	switch {
	case errors.Is(err, service.ErrNotConfigured):
		log.Error().Err(err).Msg("service_not_configured")
		return writeError(c, fiber.StatusInternalServerError, "NOT_CONFIGURED", "service not configured")
	case errors.Is(err, service.ErrUpstream):
		log.Error().Err(err).Msg("upstream_failed")
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "upstream request failed")
	default:
		log.Error().Err(err).Msg("request_failed")
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// decodeJSON unmarshals the request body into v. An empty body leaves v
// untouched.
func decodeJSON(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func invalidJSON(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many requests")
		default:
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("unhandled_error")
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
