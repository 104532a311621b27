package service

import (
	"context"
	"testing"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

func TestCommentHub_ListenAndRelease(t *testing.T) {
	hub := NewCommentHub(nil, nil)

	releaseA, err := hub.Listen("borobudur", func([]model.Comment) {})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	releaseB, err := hub.Listen("borobudur", func([]model.Comment) {})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	if got := hub.Subscribers("borobudur"); got != 2 {
		t.Fatalf("Subscribers = %d, want 2", got)
	}

	releaseA()
	if got := hub.Subscribers("borobudur"); got != 1 {
		t.Errorf("Subscribers = %d after one release, want 1", got)
	}

	// Releasing twice must not remove someone else's subscription.
	releaseA()
	if got := hub.Subscribers("borobudur"); got != 1 {
		t.Errorf("Subscribers = %d after repeated release, want 1", got)
	}

	releaseB()
	if got := hub.Subscribers("borobudur"); got != 0 {
		t.Errorf("Subscribers = %d after all released, want 0", got)
	}
}

func TestCommentHub_SubscriptionsAreScopedToAttraction(t *testing.T) {
	hub := NewCommentHub(nil, nil)

	release, err := hub.Listen("borobudur", func([]model.Comment) {})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer release()

	if got := hub.Subscribers("kuta"); got != 0 {
		t.Errorf("Subscribers(kuta) = %d, want 0", got)
	}
}

func TestCommentHub_NotifyWithoutSubscribers(t *testing.T) {
	// Without Redis and without subscribers, Notify must be a no-op that
	// never touches the repository.
	hub := NewCommentHub(nil, nil)
	hub.Notify(context.Background(), "borobudur")
}
