package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepo struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepo(pool *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{pool: pool}
}

// FetchSet returns the attraction IDs the user has favorited. A user with no
// favorites row yet simply gets an empty set.
func (r *FavoriteRepo) FetchSet(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT attraction_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MutateSet sets membership of attractionID in the user's favorite set.
// Adding is idempotent (duplicate adds are swallowed by the unique pair),
// and so is removal of an absent member.
func (r *FavoriteRepo) MutateSet(ctx context.Context, userID, attractionID string, present bool) error {
	if present {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO favorites (user_id, attraction_id) VALUES ($1, $2)
			ON CONFLICT (user_id, attraction_id) DO NOTHING`,
			userID, attractionID)
		return err
	}

	_, err := r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND attraction_id = $2`,
		userID, attractionID)
	return err
}

// IsFavorite reports whether the user has favorited the attraction.
func (r *FavoriteRepo) IsFavorite(ctx context.Context, userID, attractionID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = $1 AND attraction_id = $2
		)`, userID, attractionID).Scan(&exists)
	return exists, err
}
