package handler

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"citycast/internal/service"
)

type submitFeedbackRequest struct {
	UserName      string     `json:"userName"`
	UserEmail     *string    `json:"userEmail"`
	Rating        *float64   `json:"rating"`
	Review        string     `json:"review"`
	TourID        string     `json:"tourId"`
	TourCity      string     `json:"tourCity"`
	TourDuration  string     `json:"tourDuration"`
	TourStopCount *int       `json:"tourStopCount"`
	SubmittedAt   *time.Time `json:"submittedAt"`
}

// SubmitFeedback godoc
// @Summary Rate a finished tour
// @Description The rating must be a whole number from 1 to 5; fractional ratings such as 3.5 are rejected with 400. Ratings below 3 are acknowledged but not kept.
// @Tags feedback
// @Accept json
// @Produce json
// @Param body body submitFeedbackRequest true "feedback"
// @Success 200 {object} service.FeedbackReceipt
// @Failure 400 {object} errorPayload
// @Router /feedback [post]
func SubmitFeedback(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req submitFeedbackRequest
		if err := decodeJSON(c, &req); err != nil {
			return invalidJSON(c)
		}

		// fractional or missing ratings fail validation as 0
		rating := 0
		if req.Rating != nil && *req.Rating == math.Trunc(*req.Rating) {
			rating = int(*req.Rating)
		}

		receipt, err := svc.Submit(c.UserContext(), service.FeedbackInput{
			UserName:      req.UserName,
			UserEmail:     req.UserEmail,
			Rating:        rating,
			Review:        req.Review,
			TourID:        req.TourID,
			TourCity:      req.TourCity,
			TourDuration:  req.TourDuration,
			TourStopCount: req.TourStopCount,
			SubmittedAt:   req.SubmittedAt,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(receipt)
	}
}

// ListTestimonials godoc
// @Summary Approved feedback for the landing page
// @Tags feedback
// @Produce json
// @Param limit query int false "page size (default 10, max 50)"
// @Success 200 {object} map[string]interface{}
// @Router /feedback [get]
func ListTestimonials(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit"))
		if err != nil {
			limit = 0
		}

		items, err := svc.Testimonials(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"testimonials": items, "count": len(items)})
	}
}
