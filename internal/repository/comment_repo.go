package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

var (
	// ErrNotOwner is returned when a comment edit is attempted by anyone but
	// its author.
	ErrNotOwner = errors.New("comment does not belong to this user")

	// ErrEditWindowClosed is returned when the edit window has elapsed. The
	// database clock decides — a client that believed the window was still
	// open gets this back and must surface it.
	ErrEditWindowClosed = errors.New("comment edit window has closed")
)

type CommentRepo struct {
	pool   *pgxpool.Pool
	window time.Duration
}

func NewCommentRepo(pool *pgxpool.Pool, window time.Duration) *CommentRepo {
	return &CommentRepo{pool: pool, window: window}
}

// Insert stores a new comment with a server-assigned timestamp and returns
// the stored row, so the caller learns the authoritative created_at.
func (r *CommentRepo) Insert(ctx context.Context, attractionID string, author model.User, content string) (*model.Comment, error) {
	c := model.Comment{
		ID:           uuid.NewString(),
		AttractionID: attractionID,
		UserID:       author.ID,
		UserName:     author.DisplayName,
		UserPhotoURL: author.PhotoURL,
		Content:      content,
	}

	var createdAt time.Time
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (id, attraction_id, user_id, user_name, user_photo_url, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		c.ID, c.AttractionID, c.UserID, c.UserName, c.UserPhotoURL, c.Content).Scan(&createdAt)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = &createdAt
	return &c, nil
}

// ListByAttraction returns the full comment snapshot, newest first.
func (r *CommentRepo) ListByAttraction(ctx context.Context, attractionID string) ([]model.Comment, error) {
	query := `
		SELECT id, attraction_id, user_id, user_name, user_photo_url, content, created_at
		FROM comments
		WHERE attraction_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, attractionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		var createdAt time.Time
		err := rows.Scan(&c.ID, &c.AttractionID, &c.UserID, &c.UserName,
			&c.UserPhotoURL, &c.Content, &createdAt)
		if err != nil {
			return nil, err
		}
		c.CreatedAt = &createdAt
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Update rewrites a comment's content. Authorship and the edit window are
// re-validated here against NOW() regardless of what the client concluded;
// created_at is left untouched so the window always measures from the
// original post time. Returns the comment's attraction ID for feed fan-out.
func (r *CommentRepo) Update(ctx context.Context, commentID, userID, content string) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var ownerID, attractionID string
	err = tx.QueryRow(ctx, `
		SELECT user_id, attraction_id FROM comments WHERE id = $1`,
		commentID).Scan(&ownerID, &attractionID)
	if err != nil {
		return "", err // pgx.ErrNoRows when the comment does not exist
	}
	if ownerID != userID {
		return "", ErrNotOwner
	}

	tag, err := tx.Exec(ctx, `
		UPDATE comments SET content = $1
		WHERE id = $2
		  AND user_id = $3
		  AND created_at > NOW() - make_interval(secs => $4)`,
		content, commentID, userID, r.window.Seconds())
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", ErrEditWindowClosed
	}

	return attractionID, tx.Commit(ctx)
}

// FindByID returns one comment.
func (r *CommentRepo) FindByID(ctx context.Context, commentID string) (*model.Comment, error) {
	var c model.Comment
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT id, attraction_id, user_id, user_name, user_photo_url, content, created_at
		FROM comments
		WHERE id = $1`, commentID).Scan(
		&c.ID, &c.AttractionID, &c.UserID, &c.UserName,
		&c.UserPhotoURL, &c.Content, &createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = &createdAt
	return &c, nil
}
