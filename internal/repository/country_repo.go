package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

type CountryRepo struct {
	pool *pgxpool.Pool
}

func NewCountryRepo(pool *pgxpool.Pool) *CountryRepo {
	return &CountryRepo{pool: pool}
}

// ListCountries returns all destination countries ordered by name.
func (r *CountryRepo) ListCountries(ctx context.Context) ([]model.Country, error) {
	query := `
		SELECT id, name, image_url, attraction_count
		FROM countries
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []model.Country
	for rows.Next() {
		var c model.Country
		err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.AttractionCount)
		if err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// GetStats returns aggregate statistics from all tables.
func (r *CountryRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM countries) AS total_countries,
			(SELECT COUNT(*) FROM attractions) AS total_attractions,
			(SELECT COUNT(*) FROM comments) AS total_comments,
			(SELECT COUNT(*) FROM ratings) AS total_ratings,
			(SELECT COUNT(DISTINCT user_id) FROM favorites) AS users_with_favorites`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalCountries, &stats.TotalAttractions, &stats.TotalComments,
		&stats.TotalRatings, &stats.UsersWithFavorites,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
