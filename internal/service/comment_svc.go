package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
)

// ErrEmptyContent rejects comments that trim to nothing before any write.
var ErrEmptyContent = errors.New("comment content is empty")

type CommentService struct {
	repo *repository.CommentRepo
	hub  *CommentHub
}

func NewCommentService(repo *repository.CommentRepo, hub *CommentHub) *CommentService {
	return &CommentService{repo: repo, hub: hub}
}

// Post stores a new comment and wakes the attraction's feed. The returned
// comment carries the server-assigned timestamp; creation is never applied
// optimistically client-side precisely because that timestamp is unknown
// until now.
func (s *CommentService) Post(ctx context.Context, attractionID string, author model.User, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	c, err := s.repo.Insert(ctx, attractionID, author, content)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify(ctx, attractionID)
	}
	return c, nil
}

// List returns the current snapshot, newest first.
func (s *CommentService) List(ctx context.Context, attractionID string) (*model.CommentListResponse, error) {
	comments, err := s.repo.ListByAttraction(ctx, attractionID)
	if err != nil {
		return nil, err
	}
	return &model.CommentListResponse{Comments: comments, Total: len(comments)}, nil
}

// Update edits a comment's content. Ownership and the edit window are
// enforced by the repository against the database clock; the caller's own
// gate check carries no authority here.
func (s *CommentService) Update(ctx context.Context, commentID, userID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}

	attractionID, err := s.repo.Update(ctx, commentID, userID, content)
	if err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Notify(ctx, attractionID)
	}
	return nil
}
