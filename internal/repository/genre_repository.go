package repository

import (
	"context"
	"database/sql"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

type GenreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// ListWithCounts returns every genre with its title count, restricted to
// one media type when mediaType is non-empty. Genres with no titles still
// appear, with a zero count.
func (r *GenreRepository) ListWithCounts(ctx context.Context, mediaType models.MediaType) ([]models.GenreCount, error) {
	var rows *sql.Rows
	var err error
	if mediaType != "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT g.GenreID, g.GenreName, COUNT(m.MediaID) AS title_count
			FROM Genre g
			LEFT JOIN Media_Genre mg ON mg.GenreID = g.GenreID
			LEFT JOIN Media m ON m.MediaID = mg.MediaID AND m.MediaType = $1
			GROUP BY g.GenreID, g.GenreName
			ORDER BY g.GenreName`, string(mediaType))
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT g.GenreID, g.GenreName, COUNT(mg.MediaID) AS title_count
			FROM Genre g
			LEFT JOIN Media_Genre mg ON mg.GenreID = g.GenreID
			GROUP BY g.GenreID, g.GenreName
			ORDER BY g.GenreName`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []models.GenreCount{}
	for rows.Next() {
		var g models.GenreCount
		if err := rows.Scan(&g.GenreID, &g.GenreName, &g.TitleCount); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}
