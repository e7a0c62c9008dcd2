package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabbir-rashid/cholochitro/internal/models"
)

func TestGenreListWithCountsByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewGenreRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`m.MediaType = $1`)).
		WithArgs("Movie").
		WillReturnRows(sqlmock.NewRows([]string{"genreid", "genrename", "title_count"}).
			AddRow(80, "Crime", 14).
			AddRow(18, "Drama", 31).
			AddRow(27, "Horror", 0))

	genres, err := repo.ListWithCounts(context.Background(), models.MediaTypeMovie)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, "Crime", genres[0].GenreName)
	assert.Equal(t, 14, genres[0].TitleCount)
	assert.Zero(t, genres[2].TitleCount)
}

func TestGenreListWithCountsAllTypes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewGenreRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`COUNT(mg.MediaID) AS title_count`)).
		WillReturnRows(sqlmock.NewRows([]string{"genreid", "genrename", "title_count"}).
			AddRow(18, "Drama", 45))

	genres, err := repo.ListWithCounts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, 45, genres[0].TitleCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
