package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("not found")

const mediaColumns = `m.MediaID, m.Title, m.ReleaseYear, m.Description, m.Rating, m.Poster, m.LanguageName, m.MediaType`

// castLimit bounds the cast list on detail responses.
const castLimit = 20

// MediaRepository issues the queries shared by movie and TV listings
// plus the relation queries detail endpoints aggregate over.
type MediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// List returns one page of media rows of the given type under the filter.
func (r *MediaRepository) List(ctx context.Context, mediaType models.MediaType, f *MediaFilter, opts ListOptions) ([]models.MediaItem, error) {
	joinSQL, whereSQL, orderSQL, filterArgs, grouped := buildFilterClauses(f, 2)

	query := `SELECT ` + mediaColumns + ` FROM Media m` + joinSQL +
		` WHERE m.MediaType = $1` + whereSQL
	if grouped {
		// MediaID is the primary key, so grouping on it alone is enough to
		// collapse the genre-join fan-out.
		query += ` GROUP BY m.MediaID`
	}
	query += orderSQL

	pLimit := len(filterArgs) + 2
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, pLimit, pLimit+1)

	args := []interface{}{string(mediaType)}
	args = append(args, filterArgs...)
	args = append(args, opts.Limit, opts.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MediaItem{}
	for rows.Next() {
		var m models.MediaItem
		if err := rows.Scan(&m.MediaID, &m.Title, &m.ReleaseYear, &m.Description,
			&m.Rating, &m.Poster, &m.LanguageName, &m.MediaType); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Count evaluates the same filter set as List without limit/offset, so
// pagination totals always agree with the fetched pages.
func (r *MediaRepository) Count(ctx context.Context, mediaType models.MediaType, f *MediaFilter) (int, error) {
	joinSQL, whereSQL, _, filterArgs, grouped := buildFilterClauses(f, 2)

	sel := `COUNT(*)`
	if grouped {
		sel = `COUNT(DISTINCT m.MediaID)`
	}
	query := `SELECT ` + sel + ` FROM Media m` + joinSQL + ` WHERE m.MediaType = $1` + whereSQL

	args := []interface{}{string(mediaType)}
	args = append(args, filterArgs...)

	var total int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *MediaRepository) GenresFor(ctx context.Context, mediaID int) ([]models.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.GenreID, g.GenreName
		FROM Genre g
		JOIN Media_Genre mg ON g.GenreID = mg.GenreID
		WHERE mg.MediaID = $1`, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.GenreID, &g.GenreName); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *MediaRepository) CastFor(ctx context.Context, mediaID int) ([]models.CastMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.PersonID, p.FullName, p.Picture, c.CharacterName
		FROM Person p
		JOIN Crew c ON p.PersonID = c.PersonID
		WHERE c.MediaID = $1 AND c.CrewRole = 'Actor'
		LIMIT $2`, mediaID, castLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cast := []models.CastMember{}
	for rows.Next() {
		var c models.CastMember
		if err := rows.Scan(&c.PersonID, &c.FullName, &c.Picture, &c.CharacterName); err != nil {
			return nil, err
		}
		cast = append(cast, c)
	}
	return cast, rows.Err()
}

func (r *MediaRepository) CrewFor(ctx context.Context, mediaID int) ([]models.CrewMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.PersonID, p.FullName, p.Picture, c.CrewRole
		FROM Person p
		JOIN Crew c ON p.PersonID = c.PersonID
		WHERE c.MediaID = $1 AND c.CrewRole IN ('Director', 'Writer')`, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crew := []models.CrewMember{}
	for rows.Next() {
		var c models.CrewMember
		if err := rows.Scan(&c.PersonID, &c.FullName, &c.Picture, &c.CrewRole); err != nil {
			return nil, err
		}
		crew = append(crew, c)
	}
	return crew, rows.Err()
}

func (r *MediaRepository) StudiosFor(ctx context.Context, mediaID int) ([]models.Studio, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.StudioID, s.StudioName, s.LogoURL, s.WebsiteURL
		FROM Studio s
		JOIN Production p ON s.StudioID = p.StudioID
		WHERE p.MediaID = $1`, mediaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	studios := []models.Studio{}
	for rows.Next() {
		var s models.Studio
		if err := rows.Scan(&s.StudioID, &s.StudioName, &s.LogoURL, &s.WebsiteURL); err != nil {
			return nil, err
		}
		studios = append(studios, s)
	}
	return studios, rows.Err()
}
