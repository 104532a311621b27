package model

import "time"

// Comment is a visitor review on an attraction. Author display fields are
// denormalized at post time so a feed render needs no extra lookups.
// CreatedAt stays nil until the server has assigned it.
type Comment struct {
	ID           string     `json:"id"`
	AttractionID string     `json:"attractionId"`
	UserID       string     `json:"userId"`
	UserName     string     `json:"userName"`
	UserPhotoURL *string    `json:"userPhotoUrl"`
	Content      string     `json:"content"`
	CreatedAt    *time.Time `json:"createdAt"`
}

// PostCommentRequest is the API request body for posting a comment.
type PostCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the API request body for editing a comment.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentListResponse is the API response for a comment snapshot.
type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}
