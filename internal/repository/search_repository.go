package repository

import (
	"context"
	"database/sql"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

type SearchRepository struct {
	db *sql.DB
}

func NewSearchRepository(db *sql.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// SearchMedia matches titles and descriptions case-insensitively and
// orders by a query-time relevance tier: exact title match beats title
// substring beats description substring, ties broken by rating. The zero
// tier is unreachable given the WHERE clause but keeps the CASE total.
func (r *SearchRepository) SearchMedia(ctx context.Context, query string, opts ListOptions) ([]models.SearchResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT MediaID, Title, ReleaseYear, Description, Rating, Poster, MediaType,
		       CASE
		           WHEN Title ILIKE $1 THEN 3
		           WHEN Title ILIKE $2 THEN 2
		           WHEN Description ILIKE $2 THEN 1
		           ELSE 0
		       END AS relevance
		FROM Media
		WHERE Title ILIKE $2 OR Description ILIKE $2
		ORDER BY relevance DESC, Rating DESC NULLS LAST
		LIMIT $3 OFFSET $4`,
		query, "%"+query+"%", opts.Limit, opts.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.SearchResult{}
	for rows.Next() {
		var m models.SearchResult
		if err := rows.Scan(&m.MediaID, &m.Title, &m.ReleaseYear, &m.Description,
			&m.Rating, &m.Poster, &m.MediaType, &m.Relevance); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// CountMedia evaluates the same match predicate as SearchMedia.
func (r *SearchRepository) CountMedia(ctx context.Context, query string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM Media WHERE Title ILIKE $1 OR Description ILIKE $1`,
		"%"+query+"%",
	).Scan(&total)
	return total, err
}
