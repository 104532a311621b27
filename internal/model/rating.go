package model

import "time"

// Rating is one user's 1-5 score for an attraction. At most one row per
// (user, attraction); a resubmission overwrites the previous value.
type Rating struct {
	UserID       string    `json:"userId"`
	AttractionID string    `json:"attractionId"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RatingRequest is the API request body for submitting a rating.
type RatingRequest struct {
	Rating int `json:"rating"`
}

// RatingResponse is the API response after submitting a rating. It carries
// the recomputed aggregates so the client can refresh its view in place.
type RatingResponse struct {
	Success     bool    `json:"success"`
	Rating      int     `json:"rating"`
	RatingAvg   float64 `json:"ratingAvg"`
	RatingCount int     `json:"ratingCount"`
}

// UserRatingResponse is the API response for a user's own rating lookup.
// Rating is nil when the user has not rated the attraction yet.
type UserRatingResponse struct {
	Rating *int `json:"rating"`
}
