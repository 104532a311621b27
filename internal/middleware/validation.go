package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxCountryIDLen    = 64   // countries.id VARCHAR(64)
	MaxAttractionIDLen = 64   // attractions.id VARCHAR(64)
	MaxCommentLen      = 2000 // comments.content limit
	MaxQueryLen        = 100  // search query cap
)

var (
	// slugRe matches catalogue document IDs: lowercase slugs with dashes.
	slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	// uuidRe matches comment document IDs.
	uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateCountryID checks that a country ID is a well-formed slug.
func ValidateCountryID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "countryId is required"
	}
	if len(id) > MaxCountryIDLen {
		return "", "countryId must be at most 64 characters"
	}
	if !slugRe.MatchString(id) {
		return "", "countryId contains invalid characters"
	}
	return id, ""
}

// ValidateAttractionID checks that an attraction ID is a well-formed slug.
func ValidateAttractionID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "attractionId is required"
	}
	if len(id) > MaxAttractionIDLen {
		return "", "attractionId must be at most 64 characters"
	}
	if !slugRe.MatchString(id) {
		return "", "attractionId contains invalid characters"
	}
	return id, ""
}

// ValidateCommentID checks that a comment ID is a lowercase UUID.
func ValidateCommentID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "commentId is required"
	}
	if !uuidRe.MatchString(id) {
		return "", "commentId must be a UUID"
	}
	return id, ""
}

// ValidateCommentContent trims content and enforces presence and length.
func ValidateCommentContent(content string) (string, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "content is required"
	}
	if len(content) > MaxCommentLen {
		return "", "content must be at most 2000 characters"
	}
	return content, ""
}

// ValidateSearchQuery trims and truncates the search query. An empty query is
// valid input — the search policy answers it with an empty result set.
func ValidateSearchQuery(q string) string {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLen {
		q = q[:MaxQueryLen]
	}
	return q
}
