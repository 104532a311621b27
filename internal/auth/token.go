// Package auth verifies bearer tokens issued by the external identity
// provider. Pesona never issues credentials or handles sign-in itself; it
// only reads the identity out of a token it can validate.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity fields Pesona reads from a token.
type Claims struct {
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens from the identity provider.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates a token and returns the user it names.
func (v *Verifier) Verify(tokenString string) (model.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return model.User{}, ErrInvalidToken
	}

	name := claims.DisplayName
	if name == "" {
		name = "Anonymous"
	}

	return model.User{
		ID:          claims.Subject,
		DisplayName: name,
		PhotoURL:    claims.PhotoURL,
	}, nil
}

// Sign mints a token for the given user. Production tokens come from the
// identity provider; this is for tests and local development.
func (v *Verifier) Sign(user model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
