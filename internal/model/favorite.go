package model

// FavoriteRequest is the API request body for setting favorite membership.
type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// FavoriteResponse is the API response after a favorite mutation.
type FavoriteResponse struct {
	Success  bool   `json:"success"`
	Favorite bool   `json:"favorite"`
	ID       string `json:"attractionId"`
}

// FavoriteSetResponse is the API response for the caller's favorite set.
type FavoriteSetResponse struct {
	AttractionIDs []string `json:"attractionIds"`
}
