package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingRepo struct {
	pool *pgxpool.Pool
}

func NewRatingRepo(pool *pgxpool.Pool) *RatingRepo {
	return &RatingRepo{pool: pool}
}

// Upsert writes the user's rating for an attraction and recomputes the
// attraction's aggregates in the same transaction. A resubmission overwrites
// the previous value (one rating per user per attraction, keyed by the pair).
// Returns the new aggregate average and count.
func (r *RatingRepo) Upsert(ctx context.Context, userID, attractionID string, rating int) (avg float64, count int, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback(ctx)

	// Ensure the attraction exists before touching ratings
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attractions WHERE id = $1)`, attractionID).Scan(&exists)
	if err != nil {
		return 0, 0, err
	}
	if !exists {
		return 0, 0, pgx.ErrNoRows
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ratings (user_id, attraction_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, attraction_id) DO UPDATE
		SET rating = EXCLUDED.rating, updated_at = NOW()`,
		userID, attractionID, rating)
	if err != nil {
		return 0, 0, err
	}

	// Recompute aggregates from the rating rows so the stored average can
	// never drift from its source of truth.
	err = tx.QueryRow(ctx, `
		UPDATE attractions SET
			rating_avg = agg.avg,
			rating_count = agg.count
		FROM (
			SELECT COALESCE(AVG(rating), 0)::float8 AS avg, COUNT(*) AS count
			FROM ratings WHERE attraction_id = $1
		) AS agg
		WHERE attractions.id = $1
		RETURNING agg.avg, agg.count`,
		attractionID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, err
	}

	err = tx.Commit(ctx)
	return avg, count, err
}

// FindByUser returns the user's rating for an attraction. found is false when
// the user has not rated it.
func (r *RatingRepo) FindByUser(ctx context.Context, userID, attractionID string) (rating int, found bool, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT rating FROM ratings WHERE user_id = $1 AND attraction_id = $2`,
		userID, attractionID).Scan(&rating)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rating, true, nil
}
