package model

import "time"

// FeedbackStatusApproved marks feedback that is shown as a testimonial.
const FeedbackStatusApproved = "approved"

// Feedback is a tour rating left by a user after finishing a tour.
type Feedback struct {
	ID            string    `json:"feedbackId"`
	UserName      string    `json:"userName"`
	UserEmail     *string   `json:"userEmail,omitempty"`
	Rating        int       `json:"rating"`
	Review        string    `json:"review"`
	TourID        string    `json:"tourId"`
	TourCity      string    `json:"tourCity"`
	TourDuration  string    `json:"tourDuration"`
	TourStopCount *int      `json:"tourStopCount,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
	Status        string    `json:"status"`
}

// Testimonial is the public projection of approved feedback.
type Testimonial struct {
	FeedbackID    string    `json:"feedbackId"`
	UserName      string    `json:"userName"`
	Rating        int       `json:"rating"`
	Review        string    `json:"review"`
	TourCity      string    `json:"tourCity"`
	TourDuration  string    `json:"tourDuration"`
	TourStopCount *int      `json:"tourStopCount"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Testimonial projects stored feedback for the landing page.
func (f Feedback) Testimonial() Testimonial {
	return Testimonial{
		FeedbackID:    f.ID,
		UserName:      f.UserName,
		Rating:        f.Rating,
		Review:        f.Review,
		TourCity:      f.TourCity,
		TourDuration:  f.TourDuration,
		TourStopCount: f.TourStopCount,
		SubmittedAt:   f.SubmittedAt,
	}
}
