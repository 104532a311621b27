package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
)

// commentsChannel is the Redis Pub/Sub channel carrying attraction IDs whose
// comment list changed.
const commentsChannel = "comments:changed"

// CommentHub fans full comment snapshots out to subscribers. A write anywhere
// (this process or another replica, via Redis Pub/Sub) triggers one re-read
// of the attraction's comment list, which then replaces every subscriber's
// copy wholesale — no incremental merge. Without Redis the hub degrades to
// in-process dispatch, so a single node keeps its live feed.
type CommentHub struct {
	rdb  *redis.Client
	repo *repository.CommentRepo

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func([]model.Comment)
}

func NewCommentHub(rdb *redis.Client, repo *repository.CommentRepo) *CommentHub {
	return &CommentHub{
		rdb:  rdb,
		repo: repo,
		subs: make(map[string]map[int]func([]model.Comment)),
	}
}

// Start consumes change notifications from Redis until ctx is cancelled.
// Without a Redis client it returns immediately; Notify dispatches locally.
func (h *CommentHub) Start(ctx context.Context) {
	if h.rdb == nil {
		log.Println("comment-hub: redis unavailable, running in-process only")
		return
	}

	for {
		if err := h.listenLoop(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("comment-hub: stopping (context cancelled)")
				return
			}
			log.Printf("comment-hub: subscribe error, reconnecting in 5s: %v", err)
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				log.Println("comment-hub: stopping (context cancelled)")
				return
			}
		}
	}
}

func (h *CommentHub) listenLoop(ctx context.Context) error {
	sub := h.rdb.Subscribe(ctx, commentsChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	log.Printf("comment-hub: subscribed to %s", commentsChannel)

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return ctx.Err()
			}
			if msg.Payload != "" {
				h.dispatch(ctx, msg.Payload)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Notify announces that attractionID's comment list changed. With Redis the
// announcement reaches every replica; without it, only this process.
func (h *CommentHub) Notify(ctx context.Context, attractionID string) {
	if h.rdb != nil {
		if err := h.rdb.Publish(ctx, commentsChannel, attractionID).Err(); err != nil {
			log.Printf("comment-hub: publish error: %v", err)
			// Fall back to local dispatch so this node's feeds still move.
			h.dispatch(ctx, attractionID)
		}
		return
	}
	h.dispatch(ctx, attractionID)
}

// dispatch re-reads the snapshot and hands it to every subscriber of the
// attraction. A failed read delivers an empty list rather than nothing, so
// consumers stay on a stable (if stale-free) view.
func (h *CommentHub) dispatch(ctx context.Context, attractionID string) {
	h.mu.Lock()
	targets := make([]func([]model.Comment), 0, len(h.subs[attractionID]))
	for _, fn := range h.subs[attractionID] {
		targets = append(targets, fn)
	}
	h.mu.Unlock()

	if len(targets) == 0 {
		return
	}

	snapshot, err := h.repo.ListByAttraction(ctx, attractionID)
	if err != nil {
		log.Printf("comment-hub: snapshot error for %s: %v", attractionID, err)
		snapshot = []model.Comment{}
	}

	for _, fn := range targets {
		fn(snapshot)
	}
}

// Listen registers fn for snapshots of one attraction and returns a release
// handle. Safe to release more than once.
func (h *CommentHub) Listen(attractionID string, fn func([]model.Comment)) (func(), error) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[attractionID] == nil {
		h.subs[attractionID] = make(map[int]func([]model.Comment))
	}
	h.subs[attractionID][id] = fn
	h.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[attractionID], id)
			if len(h.subs[attractionID]) == 0 {
				delete(h.subs, attractionID)
			}
		})
	}
	return release, nil
}

// Subscribers reports the subscriber count for one attraction (for tests and
// the readiness probe).
func (h *CommentHub) Subscribers(attractionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[attractionID])
}
