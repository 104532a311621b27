package view

import (
	"context"
	"sync"
)

// FavoriteToggle makes a remote-backed membership set feel instantaneous to
// flip. The local set is updated before the remote write is issued; a failed
// write reverts it. A toggle for a key whose previous write is unresolved is
// rejected rather than raced: whichever write is in flight keeps its
// optimistic state until it settles.
type FavoriteToggle struct {
	store    FavoriteStore
	identity Identity

	mu       sync.Mutex
	members  map[string]struct{}
	inFlight map[string]struct{}
	loaded   bool
}

func NewFavoriteToggle(store FavoriteStore, identity Identity) *FavoriteToggle {
	return &FavoriteToggle{
		store:    store,
		identity: identity,
		members:  make(map[string]struct{}),
		inFlight: make(map[string]struct{}),
	}
}

// Load replaces the local set with a full fetch from the store. Pages call
// this once on mount; the cached copy is never shared across pages.
func (t *FavoriteToggle) Load(ctx context.Context) error {
	user, ok := t.identity.CurrentUser()
	if !ok {
		return ErrNotSignedIn
	}

	ids, err := t.store.FetchSet(ctx, user.ID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.members = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		t.members[id] = struct{}{}
	}
	t.loaded = true
	return nil
}

// IsFavorite reports current local membership.
func (t *FavoriteToggle) IsFavorite(itemID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.members[itemID]
	return ok
}

// Members returns a copy of the local set.
func (t *FavoriteToggle) Members() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.members))
	for id := range t.members {
		out = append(out, id)
	}
	return out
}

// Toggle flips membership for itemID: the local set is mutated first, then
// exactly one remote write is attempted. On failure the local set is reverted
// and the error returned for the caller to surface; there is no retry.
//
// The returned bool is the membership state the local set holds when Toggle
// returns. If ctx is done by the time the write settles, the late result is
// discarded: no revert is applied into a view that no longer exists.
func (t *FavoriteToggle) Toggle(ctx context.Context, itemID string) (bool, error) {
	user, ok := t.identity.CurrentUser()
	if !ok {
		return t.IsFavorite(itemID), ErrNotSignedIn
	}

	t.mu.Lock()
	if _, busy := t.inFlight[itemID]; busy {
		_, member := t.members[itemID]
		t.mu.Unlock()
		return member, ErrToggleInFlight
	}

	_, wasMember := t.members[itemID]
	target := !wasMember
	t.apply(itemID, target)
	t.inFlight[itemID] = struct{}{}
	t.mu.Unlock()

	err := t.store.MutateSet(ctx, user.ID, itemID, target)

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, itemID)

	if ctx.Err() != nil {
		// View torn down while the write was in flight; leave the set as
		// predicted and report the cancellation.
		return target, ctx.Err()
	}

	if err != nil {
		t.apply(itemID, wasMember)
		return wasMember, err
	}

	return target, nil
}

// apply sets membership without locking; callers hold t.mu.
func (t *FavoriteToggle) apply(itemID string, member bool) {
	if member {
		t.members[itemID] = struct{}{}
	} else {
		delete(t.members, itemID)
	}
}
