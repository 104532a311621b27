package view

import (
	"context"
	"sync"
)

// RatingControl manages one attraction's "your rating" value optimistically:
// the displayed value changes the moment the user picks a star, and rolls
// back to the previous value if the remote write is refused.
type RatingControl struct {
	store        RatingStore
	identity     Identity
	attractionID string

	mu      sync.Mutex
	current int // 0 means not rated
}

func NewRatingControl(store RatingStore, identity Identity, attractionID string) *RatingControl {
	return &RatingControl{store: store, identity: identity, attractionID: attractionID}
}

// Load fetches the signed-in user's existing rating, if any. Without a
// signed-in user the control stays at zero and no remote call is made.
func (r *RatingControl) Load(ctx context.Context) error {
	user, ok := r.identity.CurrentUser()
	if !ok {
		return nil
	}

	value, found, err := r.store.FetchRating(ctx, user.ID, r.attractionID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if found {
		r.current = value
	}
	return nil
}

// Current returns the locally displayed rating, 0 when unrated.
func (r *RatingControl) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Submit applies value locally, then writes it remotely. A refused write
// restores the previous value. Values outside [1,5] and unauthenticated
// submissions fail before any remote call.
func (r *RatingControl) Submit(ctx context.Context, value int) error {
	if value < 1 || value > 5 {
		return ErrInvalidRating
	}
	user, ok := r.identity.CurrentUser()
	if !ok {
		return ErrNotSignedIn
	}

	r.mu.Lock()
	previous := r.current
	r.current = value
	r.mu.Unlock()

	err := r.store.SubmitRating(ctx, user.ID, r.attractionID, value)

	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		r.current = previous
		return err
	}
	return nil
}
