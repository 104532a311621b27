package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/auth"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

const userLocalsKey = "currentUser"

// NewAuth resolves the bearer token into the request's current user. A
// missing or invalid token leaves the request anonymous; RequireUser decides
// whether that is acceptable per route.
func NewAuth(verifier *auth.Verifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Next()
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Next()
		}

		user, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			// Expired or forged tokens are treated as signed-out, not as a
			// request error; protected routes still refuse below.
			return c.Next()
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// RequireUser rejects requests with no signed-in identity before any storage
// is touched.
func RequireUser() fiber.Handler {
	return func(c fiber.Ctx) error {
		if _, ok := UserFromCtx(c); !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED",
				"You must be signed in to do this")
		}
		return c.Next()
	}
}

// UserFromCtx returns the authenticated user of the request, if any.
func UserFromCtx(c fiber.Ctx) (model.User, bool) {
	user, ok := c.Locals(userLocalsKey).(model.User)
	return user, ok
}
