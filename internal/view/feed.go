package view

import (
	"sync"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

// CommentFeed mirrors the live comment list of one attraction. Every delivery
// from the source fully replaces the local list — there is no incremental
// merge, so a slow consumer simply sees the latest snapshot whenever one
// arrives. Close releases the subscription; it is what a page calls on
// teardown and is safe to call repeatedly.
type CommentFeed struct {
	mu       sync.Mutex
	comments []model.Comment
	closed   bool
	release  func()
}

// SubscribeFeed attaches a feed to the given source. The source delivers
// snapshots in server-assigned order (newest first).
func SubscribeFeed(src FeedSource, attractionID string) (*CommentFeed, error) {
	f := &CommentFeed{comments: []model.Comment{}}

	release, err := src.Listen(attractionID, f.replace)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.release = release
	if f.closed {
		// Closed between Listen returning and the handle arriving.
		f.mu.Unlock()
		release()
		return f, nil
	}
	f.mu.Unlock()
	return f, nil
}

func (f *CommentFeed) replace(snapshot []model.Comment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if snapshot == nil {
		snapshot = []model.Comment{}
	}
	f.comments = snapshot
}

// Comments returns the latest snapshot.
func (f *CommentFeed) Comments() []model.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Comment, len(f.comments))
	copy(out, f.comments)
	return out
}

// Close stops delivery. Snapshots arriving after Close are dropped.
func (f *CommentFeed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	release := f.release
	f.mu.Unlock()

	if release != nil {
		release()
	}
}
