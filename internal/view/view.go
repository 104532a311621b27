// Package view holds the client-side view state for the browsing UI:
// optimistic favorite toggling, optimistic rating, the time-windowed comment
// edit session, the search filter, and the live comment feed. Everything that
// talks to the outside world is injected, so the package never touches the
// network or a global store handle itself.
package view

import (
	"context"
	"errors"
	"time"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

var (
	// ErrNotSignedIn is returned before any remote call when a mutation is
	// attempted without a signed-in identity.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrToggleInFlight is returned when a toggle is requested for a key
	// whose previous toggle has not resolved yet.
	ErrToggleInFlight = errors.New("toggle already in flight for this item")

	// ErrInvalidRating is returned for rating values outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// FavoriteStore is the remote membership-set collaborator.
type FavoriteStore interface {
	FetchSet(ctx context.Context, ownerID string) ([]string, error)
	MutateSet(ctx context.Context, ownerID, itemID string, present bool) error
}

// RatingStore is the remote rating collaborator. Fetch reports (0, false, nil)
// when the owner has not rated the attraction.
type RatingStore interface {
	FetchRating(ctx context.Context, ownerID, attractionID string) (int, bool, error)
	SubmitRating(ctx context.Context, ownerID, attractionID string, rating int) error
}

// CommentUpdater is the remote collaborator for comment edits. The remote
// side re-validates authorship and the edit window on its own clock; a local
// gate pass does not guarantee acceptance.
type CommentUpdater interface {
	UpdateComment(ctx context.Context, commentID, content string) error
}

// FeedSource delivers full comment snapshots for one attraction, newest
// first. The returned release func stops delivery; it must be safe to call
// more than once.
type FeedSource interface {
	Listen(attractionID string, fn func([]model.Comment)) (release func(), err error)
}

// Identity exposes the current signed-in user, if any.
type Identity interface {
	CurrentUser() (model.User, bool)
}

// Clock supplies "now" so the edit gate can be evaluated in tests at fixed
// instants. The zero value of code paths should use time.Now via RealClock.
type Clock func() time.Time

// RealClock is the wall clock.
func RealClock() time.Time { return time.Now() }
