package repository

import (
	"context"
	"database/sql"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// GetByID returns the base detail row for a movie, without relations.
func (r *MovieRepository) GetByID(ctx context.Context, mediaID int) (*models.MovieDetails, error) {
	m := &models.MovieDetails{}
	err := r.db.QueryRowContext(ctx, `
		SELECT m.MediaID, m.Title, m.ReleaseYear, m.Description, m.Rating,
		       m.Poster, m.LanguageName,
		       mv.Duration, mv.Budget, mv.Revenue, mv.TrailerLink
		FROM Media m
		JOIN Movie mv ON m.MediaID = mv.MediaID
		WHERE m.MediaID = $1 AND m.MediaType = 'Movie'`, mediaID,
	).Scan(&m.MediaID, &m.Title, &m.ReleaseYear, &m.Description, &m.Rating,
		&m.Poster, &m.LanguageName,
		&m.Duration, &m.Budget, &m.Revenue, &m.TrailerLink)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
