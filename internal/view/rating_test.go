package view

import (
	"context"
	"errors"
	"testing"
)

type fakeRatingStore struct {
	ratings map[string]int
	nextErr error
	writes  int
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{ratings: make(map[string]int)}
}

func (s *fakeRatingStore) FetchRating(_ context.Context, ownerID, attractionID string) (int, bool, error) {
	if s.nextErr != nil {
		err := s.nextErr
		s.nextErr = nil
		return 0, false, err
	}
	v, ok := s.ratings[ownerID+"/"+attractionID]
	return v, ok, nil
}

func (s *fakeRatingStore) SubmitRating(_ context.Context, ownerID, attractionID string, rating int) error {
	s.writes++
	if s.nextErr != nil {
		err := s.nextErr
		s.nextErr = nil
		return err
	}
	s.ratings[ownerID+"/"+attractionID] = rating
	return nil
}

func TestRatingControl_SubmitAndReplace(t *testing.T) {
	store := newFakeRatingStore()
	ctl := NewRatingControl(store, signedIn("u1"), "borobudur")
	ctx := context.Background()

	if err := ctl.Submit(ctx, 4); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ctl.Current() != 4 {
		t.Errorf("Current = %d, want 4", ctl.Current())
	}

	// Re-rating replaces, it does not add a second vote.
	if err := ctl.Submit(ctx, 2); err != nil {
		t.Fatalf("re-Submit: %v", err)
	}
	if ctl.Current() != 2 {
		t.Errorf("Current = %d, want 2", ctl.Current())
	}
	if store.ratings["u1/borobudur"] != 2 {
		t.Errorf("stored rating = %d, want 2", store.ratings["u1/borobudur"])
	}
}

func TestRatingControl_RollsBackOnRejectedWrite(t *testing.T) {
	store := newFakeRatingStore()
	ctl := NewRatingControl(store, signedIn("u1"), "borobudur")
	ctx := context.Background()

	if err := ctl.Submit(ctx, 5); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	store.nextErr = errors.New("unavailable")
	if err := ctl.Submit(ctx, 1); err == nil {
		t.Fatal("expected error from rejected write")
	}
	if ctl.Current() != 5 {
		t.Errorf("Current = %d after rollback, want 5", ctl.Current())
	}
}

func TestRatingControl_ValidatesRange(t *testing.T) {
	store := newFakeRatingStore()
	ctl := NewRatingControl(store, signedIn("u1"), "borobudur")

	for _, v := range []int{0, -1, 6, 100} {
		if err := ctl.Submit(context.Background(), v); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Submit(%d) err = %v, want ErrInvalidRating", v, err)
		}
	}
	if store.writes != 0 {
		t.Error("invalid values must not reach the store")
	}
}

func TestRatingControl_RequiresSignIn(t *testing.T) {
	store := newFakeRatingStore()
	ctl := NewRatingControl(store, &fakeIdentity{}, "borobudur")

	if err := ctl.Submit(context.Background(), 3); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("Submit err = %v, want ErrNotSignedIn", err)
	}
	if store.writes != 0 {
		t.Error("no remote call should be made when signed out")
	}

	// Load without identity is a quiet no-op.
	if err := ctl.Load(context.Background()); err != nil {
		t.Errorf("Load signed out: %v", err)
	}
	if ctl.Current() != 0 {
		t.Error("signed-out control should stay unrated")
	}
}

func TestRatingControl_LoadExistingRating(t *testing.T) {
	store := newFakeRatingStore()
	store.ratings["u1/borobudur"] = 3
	ctl := NewRatingControl(store, signedIn("u1"), "borobudur")

	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ctl.Current() != 3 {
		t.Errorf("Current = %d, want 3", ctl.Current())
	}
}

func TestRatingControl_LoadWithoutExistingRating(t *testing.T) {
	ctl := NewRatingControl(newFakeRatingStore(), signedIn("u1"), "borobudur")
	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ctl.Current() != 0 {
		t.Errorf("Current = %d, want 0 when never rated", ctl.Current())
	}
}
