package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

func commentAt(author string, created time.Time, content string) model.Comment {
	return model.Comment{
		ID:        "c-1",
		UserID:    author,
		Content:   content,
		CreatedAt: &created,
	}
}

func TestCanEdit(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c := commentAt("author-1", base, "great place")

	tests := []struct {
		name   string
		viewer string
		now    time.Time
		want   bool
	}{
		{"author inside window", "author-1", base.Add(9*time.Minute + 59*time.Second), true},
		{"author at exact boundary", "author-1", base.Add(10 * time.Minute), false},
		{"author past window", "author-1", base.Add(10*time.Minute + 1*time.Second), false},
		{"author immediately", "author-1", base, true},
		{"other viewer inside window", "author-2", base.Add(time.Minute), false},
		{"anonymous viewer", "", base.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(c, tt.viewer, tt.now); got != tt.want {
				t.Errorf("CanEdit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEdit_NilCreatedAt(t *testing.T) {
	c := model.Comment{ID: "c-1", UserID: "author-1", Content: "pending"}
	if CanEdit(c, "author-1", time.Now()) {
		t.Error("a comment without a server timestamp must not be editable")
	}
}

type fakeCommentUpdater struct {
	updates []string
	nextErr error
}

func (u *fakeCommentUpdater) UpdateComment(_ context.Context, _, content string) error {
	if u.nextErr != nil {
		err := u.nextErr
		u.nextErr = nil
		return err
	}
	u.updates = append(u.updates, content)
	return nil
}

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}

func TestEditSession_SaveUpdatesContent(t *testing.T) {
	base := time.Now()
	store := &fakeCommentUpdater{}
	s := NewEditSession(store, fixedClock(base.Add(time.Minute)), commentAt("u1", base, "old text"), "u1")

	if !s.Begin() {
		t.Fatal("Begin should succeed inside the window")
	}
	if s.Draft() != "old text" {
		t.Errorf("draft = %q, want original content", s.Draft())
	}

	s.SetDraft("  new text  ")
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.State() != StateView {
		t.Error("session should return to view after save")
	}
	if s.Content() != "new text" {
		t.Errorf("content = %q, want trimmed draft", s.Content())
	}
	if len(store.updates) != 1 || store.updates[0] != "new text" {
		t.Errorf("store updates = %v, want one trimmed write", store.updates)
	}
}

func TestEditSession_BeginRefusedOutsideWindow(t *testing.T) {
	base := time.Now()
	s := NewEditSession(&fakeCommentUpdater{}, fixedClock(base.Add(11*time.Minute)), commentAt("u1", base, "x"), "u1")
	if s.Begin() {
		t.Error("Begin should refuse once the window has closed")
	}
	if s.State() != StateView {
		t.Error("refused Begin must leave session in view")
	}
}

func TestEditSession_BeginRefusedForNonAuthor(t *testing.T) {
	base := time.Now()
	s := NewEditSession(&fakeCommentUpdater{}, fixedClock(base), commentAt("u1", base, "x"), "u2")
	if s.Begin() {
		t.Error("Begin should refuse for a viewer who is not the author")
	}
}

func TestEditSession_NoOpSaveSkipsRemote(t *testing.T) {
	base := time.Now()

	tests := []struct {
		name  string
		draft string
	}{
		{"empty draft", "   "},
		{"unchanged draft", "same text"},
		{"unchanged modulo whitespace", "  same text "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCommentUpdater{}
			s := NewEditSession(store, fixedClock(base), commentAt("u1", base, "same text"), "u1")
			if !s.Begin() {
				t.Fatal("Begin should succeed")
			}
			s.SetDraft(tt.draft)
			if err := s.Save(context.Background()); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if len(store.updates) != 0 {
				t.Error("no-op save must not reach the store")
			}
			if s.State() != StateView {
				t.Error("no-op save should still leave edit mode")
			}
			if s.Content() != "same text" {
				t.Errorf("content = %q, want unchanged", s.Content())
			}
		})
	}
}

func TestEditSession_RefusedSaveKeepsDraft(t *testing.T) {
	base := time.Now()
	store := &fakeCommentUpdater{nextErr: errors.New("edit window closed")}
	s := NewEditSession(store, fixedClock(base), commentAt("u1", base, "original"), "u1")

	if !s.Begin() {
		t.Fatal("Begin should succeed")
	}
	s.SetDraft("revised")
	err := s.Save(context.Background())
	if err == nil {
		t.Fatal("expected error from refused save")
	}

	if s.State() != StateEditing {
		t.Error("refused save should stay in editing")
	}
	if s.Draft() != "revised" {
		t.Errorf("draft = %q, want typed text preserved", s.Draft())
	}
	if !errors.Is(s.Err(), err) {
		t.Error("session should retain the save error")
	}
	if s.Content() != "original" {
		t.Error("content must not change on a refused save")
	}

	// The user can retry the same draft once the store accepts it.
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("retry Save: %v", err)
	}
	if s.Content() != "revised" {
		t.Errorf("content = %q after retry, want %q", s.Content(), "revised")
	}
}

func TestEditSession_CancelDiscardsDraft(t *testing.T) {
	base := time.Now()
	store := &fakeCommentUpdater{}
	s := NewEditSession(store, fixedClock(base), commentAt("u1", base, "keep me"), "u1")

	if !s.Begin() {
		t.Fatal("Begin should succeed")
	}
	s.SetDraft("throwaway")
	s.Cancel()

	if s.State() != StateView {
		t.Error("Cancel should return to view")
	}
	if s.Draft() != "" {
		t.Error("Cancel should clear the draft")
	}
	if s.Content() != "keep me" {
		t.Error("Cancel must not change content")
	}
	if len(store.updates) != 0 {
		t.Error("Cancel must not reach the store")
	}
}

func TestEditSession_WindowClosesMidEdit(t *testing.T) {
	base := time.Now()
	now := base
	clock := func() time.Time { return now }
	store := &fakeCommentUpdater{}
	s := NewEditSession(store, clock, commentAt("u1", base, "x"), "u1")

	if !s.Begin() {
		t.Fatal("Begin should succeed at creation time")
	}

	// The gate closing while a draft is open does not eject the draft; the
	// store is the authority on whether the save lands.
	now = base.Add(15 * time.Minute)
	if s.CanEdit() {
		t.Error("gate should report closed")
	}
	if s.State() != StateEditing {
		t.Error("open draft should survive the gate closing")
	}

	store.nextErr = errors.New("refused by store")
	s.SetDraft("too late")
	if err := s.Save(context.Background()); err == nil {
		t.Fatal("save past the window should surface the store refusal")
	}
	if s.Draft() != "too late" {
		t.Error("refused late save should keep the draft")
	}
}
