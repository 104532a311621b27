package service

import (
	"context"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
)

// FavoriteService owns the authoritative favorite membership sets. The
// optimistic prediction lives client-side; this side just applies the
// mutation and reports success or failure.
type FavoriteService struct {
	repo *repository.FavoriteRepo
}

func NewFavoriteService(repo *repository.FavoriteRepo) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// FetchSet returns the user's favorite attraction IDs.
func (s *FavoriteService) FetchSet(ctx context.Context, userID string) (*model.FavoriteSetResponse, error) {
	ids, err := s.repo.FetchSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.FavoriteSetResponse{AttractionIDs: ids}, nil
}

// Mutate sets or clears membership of one attraction in the user's set.
// Exactly one write per call; idempotent in both directions.
func (s *FavoriteService) Mutate(ctx context.Context, userID, attractionID string, present bool) (*model.FavoriteResponse, error) {
	if err := s.repo.MutateSet(ctx, userID, attractionID, present); err != nil {
		return nil, err
	}
	return &model.FavoriteResponse{
		Success:  true,
		Favorite: present,
		ID:       attractionID,
	}, nil
}
