package repository

import (
	"context"
	"database/sql"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

type TVRepository struct {
	db *sql.DB
}

func NewTVRepository(db *sql.DB) *TVRepository {
	return &TVRepository{db: db}
}

// GetByID returns the base detail row for a series, without relations.
func (r *TVRepository) GetByID(ctx context.Context, mediaID int) (*models.TVShowDetails, error) {
	t := &models.TVShowDetails{}
	err := r.db.QueryRowContext(ctx, `
		SELECT m.MediaID, m.Title, m.ReleaseYear, m.Description, m.Rating,
		       m.Poster, m.LanguageName,
		       tv.IsOngoing, tv.NumberOfSeasons
		FROM Media m
		JOIN TVSeries tv ON m.MediaID = tv.MediaID
		WHERE m.MediaID = $1 AND m.MediaType = 'TVSeries'`, mediaID,
	).Scan(&t.MediaID, &t.Title, &t.ReleaseYear, &t.Description, &t.Rating,
		&t.Poster, &t.LanguageName,
		&t.IsOngoing, &t.NumberOfSeasons)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SeasonsByShow returns a show's seasons in season-number order.
func (r *TVRepository) SeasonsByShow(ctx context.Context, mediaID int) ([]models.Season, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT SeasonNo, SeasonTitle, ReleaseDate, Description, AvgRating,
		       TrailerLink, EpisodeCount
		FROM Season
		WHERE MediaID = $1
		ORDER BY SeasonNo`, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seasons := []models.Season{}
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.SeasonNo, &s.SeasonTitle, &s.ReleaseDate,
			&s.Description, &s.AvgRating, &s.TrailerLink, &s.EpisodeCount); err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}

// EpisodesByShow returns every episode of a show in one flat query,
// ordered by season then episode number. Grouping episodes under their
// seasons happens in memory afterwards, so the whole show costs two
// queries instead of one per season.
func (r *TVRepository) EpisodesByShow(ctx context.Context, mediaID int) ([]models.Episode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT SeasonNo, EpisodeNo, EpisodeTitle, Duration, AvgRating
		FROM Episode
		WHERE MediaID = $1
		ORDER BY SeasonNo, EpisodeNo`, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	episodes := []models.Episode{}
	for rows.Next() {
		var e models.Episode
		if err := rows.Scan(&e.SeasonNo, &e.EpisodeNo, &e.EpisodeTitle,
			&e.Duration, &e.AvgRating); err != nil {
			return nil, err
		}
		episodes = append(episodes, e)
	}
	return episodes, rows.Err()
}
