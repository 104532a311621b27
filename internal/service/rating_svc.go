package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
)

type RatingService struct {
	repo  *repository.RatingRepo
	cache *CacheService
}

func NewRatingService(repo *repository.RatingRepo, cache *CacheService) *RatingService {
	return &RatingService{repo: repo, cache: cache}
}

// Submit upserts the user's rating and returns the recomputed aggregates.
func (s *RatingService) Submit(ctx context.Context, userID, countryID, attractionID string, rating int) (*model.RatingResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating out of range: %d", rating)
	}

	avg, count, err := s.repo.Upsert(ctx, userID, attractionID, rating)
	if err != nil {
		return nil, err
	}

	// Drop the cached attraction document so the next read sees the new
	// aggregates.
	if s.cache != nil {
		if err := s.cache.InvalidateAttraction(ctx, countryID, attractionID); err != nil {
			log.Printf("cache: invalidate attraction error: %v", err)
		}
	}

	return &model.RatingResponse{
		Success:     true,
		Rating:      rating,
		RatingAvg:   avg,
		RatingCount: count,
	}, nil
}

// FetchUserRating returns the caller's own rating, nil when unrated.
func (s *RatingService) FetchUserRating(ctx context.Context, userID, attractionID string) (*model.UserRatingResponse, error) {
	rating, found, err := s.repo.FindByUser(ctx, userID, attractionID)
	if err != nil {
		return nil, err
	}
	resp := &model.UserRatingResponse{}
	if found {
		resp.Rating = &rating
	}
	return resp, nil
}
