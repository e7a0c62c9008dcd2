package repository

import (
	"context"
	"database/sql"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) GetByID(ctx context.Context, personID int) (*models.Person, error) {
	p := &models.Person{}
	err := r.db.QueryRowContext(ctx, `
		SELECT PersonID, FullName, Picture, Biography, Nationality, DateOfBirth
		FROM Person
		WHERE PersonID = $1`, personID,
	).Scan(&p.PersonID, &p.FullName, &p.Picture, &p.Biography,
		&p.Nationality, &p.DateOfBirth)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SearchByName matches person names case-insensitively, ordered
// alphabetically. Each row carries the person's credit count; every Crew
// row is one distinct (media, role) credit, so counting joined rows is
// enough and the LEFT JOIN keeps zero-credit people at 0.
func (r *PersonRepository) SearchByName(ctx context.Context, query string, opts ListOptions) ([]models.PersonSearchResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.PersonID, p.FullName, p.Picture, p.Biography, p.Nationality, p.DateOfBirth,
		       COUNT(c.MediaID) AS credit_count
		FROM Person p
		LEFT JOIN Crew c ON c.PersonID = p.PersonID
		WHERE p.FullName ILIKE $1
		GROUP BY p.PersonID, p.FullName, p.Picture, p.Biography, p.Nationality, p.DateOfBirth
		ORDER BY p.FullName
		LIMIT $2 OFFSET $3`, "%"+query+"%", opts.Limit, opts.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.PersonSearchResult{}
	for rows.Next() {
		var p models.PersonSearchResult
		if err := rows.Scan(&p.PersonID, &p.FullName, &p.Picture, &p.Biography,
			&p.Nationality, &p.DateOfBirth, &p.CreditCount); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// CountByName evaluates the same name predicate as SearchByName.
func (r *PersonRepository) CountByName(ctx context.Context, query string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM Person WHERE FullName ILIKE $1`, "%"+query+"%",
	).Scan(&total)
	return total, err
}

// Filmography returns every credit a person has across media, newest
// titles first.
func (r *PersonRepository) Filmography(ctx context.Context, personID int) ([]models.Credit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.MediaID, m.Title, m.Poster, m.ReleaseYear, m.MediaType,
		       c.CrewRole, c.CharacterName
		FROM Crew c
		JOIN Media m ON m.MediaID = c.MediaID
		WHERE c.PersonID = $1
		ORDER BY m.ReleaseYear DESC NULLS LAST, m.Title`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	credits := []models.Credit{}
	for rows.Next() {
		var c models.Credit
		if err := rows.Scan(&c.MediaID, &c.Title, &c.Poster, &c.ReleaseYear,
			&c.MediaType, &c.CrewRole, &c.CharacterName); err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}

// TopActors ranks actors by how many titles they appear in, then by the
// average rating of those titles.
func (r *PersonRepository) TopActors(ctx context.Context, limit int) ([]models.TopActor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.PersonID, p.FullName, p.Picture,
		       COUNT(DISTINCT c.MediaID) AS title_count,
		       ROUND(AVG(m.Rating)::numeric, 1) AS avg_rating
		FROM Person p
		JOIN Crew c ON c.PersonID = p.PersonID AND c.CrewRole = 'Actor'
		JOIN Media m ON m.MediaID = c.MediaID
		GROUP BY p.PersonID, p.FullName, p.Picture
		ORDER BY title_count DESC, avg_rating DESC NULLS LAST
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := []models.TopActor{}
	for rows.Next() {
		var a models.TopActor
		if err := rows.Scan(&a.PersonID, &a.FullName, &a.Picture,
			&a.TitleCount, &a.AvgRating); err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, rows.Err()
}
