package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

type AttractionRepo struct {
	pool *pgxpool.Pool
}

func NewAttractionRepo(pool *pgxpool.Pool) *AttractionRepo {
	return &AttractionRepo{pool: pool}
}

const attractionColumns = `
	id, country_id, name, description, main_image_url,
	city, address, lat, lng, type,
	rating_avg, rating_count, entrance_fee, activities`

func scanAttraction(row pgx.Row) (model.Attraction, error) {
	var a model.Attraction
	err := row.Scan(
		&a.ID, &a.CountryID, &a.Name, &a.Description, &a.MainImageURL,
		&a.Location.City, &a.Location.Address, &a.Location.Lat, &a.Location.Lng, &a.Type,
		&a.RatingAvg, &a.RatingCount, &a.EntranceFee, &a.Activities,
	)
	return a, err
}

func (r *AttractionRepo) collect(ctx context.Context, query string, args ...any) ([]model.Attraction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attractions []model.Attraction
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, err
		}
		attractions = append(attractions, a)
	}
	return attractions, rows.Err()
}

// ListByCountry returns all attractions of one country.
func (r *AttractionRepo) ListByCountry(ctx context.Context, countryID string) ([]model.Attraction, error) {
	query := `
		SELECT ` + attractionColumns + `
		FROM attractions
		WHERE country_id = $1
		ORDER BY name ASC`
	return r.collect(ctx, query, countryID)
}

// FindByID returns a single attraction addressed by country and attraction ID.
func (r *AttractionRepo) FindByID(ctx context.Context, countryID, attractionID string) (*model.Attraction, error) {
	query := `
		SELECT ` + attractionColumns + `
		FROM attractions
		WHERE country_id = $1 AND id = $2`

	a, err := scanAttraction(r.pool.QueryRow(ctx, query, countryID, attractionID))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// TopRated returns the highest-rated attractions across all countries.
func (r *AttractionRepo) TopRated(ctx context.Context, limit int) ([]model.Attraction, error) {
	query := `
		SELECT ` + attractionColumns + `
		FROM attractions
		ORDER BY rating_avg DESC, rating_count DESC
		LIMIT $1`
	return r.collect(ctx, query, limit)
}

// ListAll returns every attraction across all countries. Search filters this
// full candidate list in memory; acceptable only at this catalogue's scale.
func (r *AttractionRepo) ListAll(ctx context.Context) ([]model.Attraction, error) {
	query := `
		SELECT ` + attractionColumns + `
		FROM attractions
		ORDER BY country_id ASC, name ASC`
	return r.collect(ctx, query)
}
