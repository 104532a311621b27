package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/repository"
	"github.com/aditya-nugraha/Pesona/pesona-go/internal/view"
)

// CatalogService serves the read side of the catalogue: countries,
// attractions, top-rated lookups and search.
type CatalogService struct {
	countries   *repository.CountryRepo
	attractions *repository.AttractionRepo
	cache       *CacheService
}

func NewCatalogService(countries *repository.CountryRepo, attractions *repository.AttractionRepo, cache *CacheService) *CatalogService {
	return &CatalogService{countries: countries, attractions: attractions, cache: cache}
}

// ListCountries returns all countries, cache-aside.
func (s *CatalogService) ListCountries(ctx context.Context) ([]model.Country, error) {
	if s.cache != nil {
		if data, err := s.cache.GetCountries(ctx); err == nil && data != nil {
			var countries []model.Country
			if err := json.Unmarshal(data, &countries); err == nil {
				return countries, nil
			}
		}
	}

	countries, err := s.countries.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	if countries == nil {
		countries = []model.Country{}
	}

	if s.cache != nil {
		if err := s.cache.SetCountries(ctx, countries); err != nil {
			log.Printf("cache: set countries error: %v", err)
		}
	}
	return countries, nil
}

// ListAttractions returns all attractions of one country.
func (s *CatalogService) ListAttractions(ctx context.Context, countryID string) ([]model.Attraction, error) {
	attractions, err := s.attractions.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if attractions == nil {
		attractions = []model.Attraction{}
	}
	return attractions, nil
}

// GetAttraction returns one attraction, cache-aside.
func (s *CatalogService) GetAttraction(ctx context.Context, countryID, attractionID string) (*model.Attraction, error) {
	if s.cache != nil {
		if data, err := s.cache.GetAttraction(ctx, countryID, attractionID); err == nil && data != nil {
			var a model.Attraction
			if err := json.Unmarshal(data, &a); err == nil {
				return &a, nil
			}
		}
	}

	a, err := s.attractions.FindByID(ctx, countryID, attractionID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAttraction(ctx, countryID, attractionID, a); err != nil {
			log.Printf("cache: set attraction error: %v", err)
		}
	}
	return a, nil
}

// TopRated returns the best-rated attractions across every country
// (collection-group style lookup).
func (s *CatalogService) TopRated(ctx context.Context, limit int) ([]model.Attraction, error) {
	attractions, err := s.attractions.TopRated(ctx, limit)
	if err != nil {
		return nil, err
	}
	if attractions == nil {
		attractions = []model.Attraction{}
	}
	return attractions, nil
}

// Search fetches the full candidate list and applies the substring filter in
// memory, using the same filter the client-side view layer uses, so server
// search and client search can never disagree on policy. An empty query
// returns an empty list.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.Attraction, error) {
	all, err := s.attractions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return view.FilterAttractions(query, all), nil
}
