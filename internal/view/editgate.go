package view

import (
	"context"
	"strings"
	"time"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

// EditWindow is how long after creation a comment's author may still edit it.
const EditWindow = 10 * time.Minute

// CanEdit reports whether viewer may edit the comment at instant now. It is a
// pure derived value: callers re-evaluate it on every read instead of caching
// it, because once the window closes it never reopens. A comment whose server
// timestamp has not arrived yet is never editable.
func CanEdit(c model.Comment, viewerID string, now time.Time) bool {
	if viewerID == "" || viewerID != c.UserID {
		return false
	}
	if c.CreatedAt == nil {
		return false
	}
	return now.Before(c.CreatedAt.Add(EditWindow))
}

// SessionState is the edit-session phase of a single comment.
type SessionState int

const (
	StateView SessionState = iota
	StateEditing
	StateSaving
)

// EditSession is the transient draft state that exists while one comment is
// being edited. It belongs to exactly one comment and is discarded on cancel
// or successful save. The local gate check is a convenience; the store
// re-validates authorship and the window on its own clock and may still
// refuse the save.
type EditSession struct {
	store   CommentUpdater
	clock   Clock
	comment model.Comment
	viewer  string

	state   SessionState
	draft   string
	saveErr error
}

func NewEditSession(store CommentUpdater, clock Clock, comment model.Comment, viewerID string) *EditSession {
	if clock == nil {
		clock = RealClock
	}
	return &EditSession{
		store:   store,
		clock:   clock,
		comment: comment,
		viewer:  viewerID,
		state:   StateView,
	}
}

// CanEdit evaluates the gate for this session's comment and viewer at the
// session clock's current instant.
func (s *EditSession) CanEdit() bool {
	return CanEdit(s.comment, s.viewer, s.clock())
}

// Begin enters edit mode, copying the current content into the draft buffer.
// It refuses when the gate is closed at the moment of the request.
func (s *EditSession) Begin() bool {
	if s.state != StateView || !s.CanEdit() {
		return false
	}
	s.state = StateEditing
	s.draft = s.comment.Content
	s.saveErr = nil
	return true
}

// SetDraft replaces the draft buffer while editing.
func (s *EditSession) SetDraft(text string) {
	if s.state == StateEditing {
		s.draft = text
	}
}

// Save persists the draft. A draft that trims to nothing, or trims equal to
// the original content, skips the remote call and simply leaves edit mode.
// A refused save keeps the session in editing with the draft and the error
// retained so nothing the user typed is lost.
func (s *EditSession) Save(ctx context.Context) error {
	if s.state != StateEditing {
		return nil
	}

	trimmed := strings.TrimSpace(s.draft)
	if trimmed == "" || trimmed == strings.TrimSpace(s.comment.Content) {
		s.state = StateView
		s.draft = ""
		s.saveErr = nil
		return nil
	}

	s.state = StateSaving
	err := s.store.UpdateComment(ctx, s.comment.ID, trimmed)
	if err != nil {
		s.state = StateEditing
		s.saveErr = err
		return err
	}

	s.comment.Content = trimmed
	s.state = StateView
	s.draft = ""
	s.saveErr = nil
	return nil
}

// Cancel discards the draft and returns to view mode without a remote call.
func (s *EditSession) Cancel() {
	if s.state == StateSaving {
		return
	}
	s.state = StateView
	s.draft = ""
	s.saveErr = nil
}

func (s *EditSession) State() SessionState { return s.state }
func (s *EditSession) Draft() string       { return s.draft }
func (s *EditSession) Err() error          { return s.saveErr }

// Content returns the comment content the session currently holds, which
// reflects the last successful save.
func (s *EditSession) Content() string { return s.comment.Content }
