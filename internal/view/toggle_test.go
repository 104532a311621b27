package view

import (
	"context"
	"errors"
	"testing"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

type fakeIdentity struct {
	user     model.User
	signedIn bool
}

func (f *fakeIdentity) CurrentUser() (model.User, bool) {
	return f.user, f.signedIn
}

func signedIn(id string) *fakeIdentity {
	return &fakeIdentity{user: model.User{ID: id, DisplayName: "Tester"}, signedIn: true}
}

type fakeFavoriteStore struct {
	set      map[string]bool
	fetchErr error
	nextErr  error
	mutates  int

	// blockCh, when set, is received from inside MutateSet before it
	// returns, letting a test hold a write in flight.
	blockCh chan struct{}
}

func newFakeFavoriteStore(ids ...string) *fakeFavoriteStore {
	s := &fakeFavoriteStore{set: make(map[string]bool)}
	for _, id := range ids {
		s.set[id] = true
	}
	return s
}

func (s *fakeFavoriteStore) FetchSet(_ context.Context, _ string) ([]string, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	out := make([]string, 0, len(s.set))
	for id := range s.set {
		out = append(out, id)
	}
	return out, nil
}

func (s *fakeFavoriteStore) MutateSet(_ context.Context, _, itemID string, present bool) error {
	if s.blockCh != nil {
		<-s.blockCh
	}
	s.mutates++
	if s.nextErr != nil {
		err := s.nextErr
		s.nextErr = nil
		return err
	}
	if present {
		s.set[itemID] = true
	} else {
		delete(s.set, itemID)
	}
	return nil
}

func TestFavoriteToggle_AddThenRemove(t *testing.T) {
	store := newFakeFavoriteStore()
	toggle := NewFavoriteToggle(store, signedIn("user-1"))
	ctx := context.Background()

	member, err := toggle.Toggle(ctx, "borobudur")
	if err != nil {
		t.Fatalf("Toggle add: %v", err)
	}
	if !member || !toggle.IsFavorite("borobudur") {
		t.Error("item should be a member after adding toggle")
	}

	member, err = toggle.Toggle(ctx, "borobudur")
	if err != nil {
		t.Fatalf("Toggle remove: %v", err)
	}
	if member || toggle.IsFavorite("borobudur") {
		t.Error("item should not be a member after removing toggle")
	}
	if store.mutates != 2 {
		t.Errorf("mutates = %d, want 2", store.mutates)
	}
}

func TestFavoriteToggle_RevertsOnRejectedWrite(t *testing.T) {
	store := newFakeFavoriteStore()
	store.nextErr = errors.New("permission denied")
	toggle := NewFavoriteToggle(store, signedIn("user-1"))

	member, err := toggle.Toggle(context.Background(), "komodo")
	if err == nil {
		t.Fatal("expected error from rejected write")
	}
	if member || toggle.IsFavorite("komodo") {
		t.Error("membership should be reverted after a rejected add")
	}

	// Second attempt with a healthy store converges.
	member, err = toggle.Toggle(context.Background(), "komodo")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !member {
		t.Error("second toggle should land in the member state")
	}
}

func TestFavoriteToggle_RevertsRemoveOnRejectedWrite(t *testing.T) {
	store := newFakeFavoriteStore("raja-ampat")
	toggle := NewFavoriteToggle(store, signedIn("user-1"))
	if err := toggle.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	store.nextErr = errors.New("unavailable")
	member, err := toggle.Toggle(context.Background(), "raja-ampat")
	if err == nil {
		t.Fatal("expected error from rejected write")
	}
	if !member || !toggle.IsFavorite("raja-ampat") {
		t.Error("membership should be restored after a rejected remove")
	}
}

func TestFavoriteToggle_RejectsWhileInFlight(t *testing.T) {
	store := newFakeFavoriteStore()
	store.blockCh = make(chan struct{})
	toggle := NewFavoriteToggle(store, signedIn("user-1"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := toggle.Toggle(context.Background(), "bromo"); err != nil {
			t.Errorf("first toggle: %v", err)
		}
	}()

	// Optimistic state is visible before the write resolves.
	waitUntil(t, func() bool { return toggle.IsFavorite("bromo") })

	member, err := toggle.Toggle(context.Background(), "bromo")
	if !errors.Is(err, ErrToggleInFlight) {
		t.Fatalf("second toggle err = %v, want ErrToggleInFlight", err)
	}
	if !member {
		t.Error("rejected toggle should report the current optimistic state")
	}

	close(store.blockCh)
	<-done

	if !toggle.IsFavorite("bromo") {
		t.Error("first toggle should have settled as a member")
	}
	if store.mutates != 1 {
		t.Errorf("mutates = %d, want 1 (rejected toggle must not write)", store.mutates)
	}

	// After settling, a new toggle is accepted again.
	if _, err := toggle.Toggle(context.Background(), "bromo"); err != nil {
		t.Fatalf("toggle after settle: %v", err)
	}
}

func TestFavoriteToggle_ContextDoneDiscardsResult(t *testing.T) {
	store := newFakeFavoriteStore()
	store.blockCh = make(chan struct{})
	store.nextErr = errors.New("too late to matter")
	toggle := NewFavoriteToggle(store, signedIn("user-1"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := toggle.Toggle(ctx, "prambanan")
		done <- err
	}()

	waitUntil(t, func() bool { return toggle.IsFavorite("prambanan") })
	cancel()
	close(store.blockCh)

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	// The late failure must not be applied into the torn-down view.
	if !toggle.IsFavorite("prambanan") {
		t.Error("late result should be discarded, not reverted")
	}
}

func TestFavoriteToggle_RequiresSignIn(t *testing.T) {
	store := newFakeFavoriteStore()
	toggle := NewFavoriteToggle(store, &fakeIdentity{})

	if _, err := toggle.Toggle(context.Background(), "x"); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("Toggle err = %v, want ErrNotSignedIn", err)
	}
	if err := toggle.Load(context.Background()); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("Load err = %v, want ErrNotSignedIn", err)
	}
	if store.mutates != 0 {
		t.Error("no remote call should be made when signed out")
	}
}

func TestFavoriteToggle_LoadReplacesLocalSet(t *testing.T) {
	store := newFakeFavoriteStore("a", "b")
	toggle := NewFavoriteToggle(store, signedIn("user-1"))

	if err := toggle.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(toggle.Members()); got != 2 {
		t.Fatalf("Members() = %d items, want 2", got)
	}

	// A reload after the server set changed replaces, not merges.
	delete(store.set, "a")
	if err := toggle.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if toggle.IsFavorite("a") {
		t.Error("reload should drop items no longer in the server set")
	}
	if !toggle.IsFavorite("b") {
		t.Error("reload should keep items still in the server set")
	}
}
