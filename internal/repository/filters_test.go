package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListOptions(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", "", 1, 20},
		{"valid values", "3", "50", 3, 50},
		{"non-numeric falls back", "abc", "xyz", 1, 20},
		{"zero falls back", "0", "0", 1, 20},
		{"negative falls back", "-2", "-10", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ParseListOptions(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, o.Page)
			assert.Equal(t, tt.wantLimit, o.Limit)
		})
	}
}

func TestListOptionsOffset(t *testing.T) {
	assert.Equal(t, 0, ListOptions{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, ListOptions{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 24, ListOptions{Page: 4, Limit: 8}.Offset())
}

func TestBuildFilterClausesEmpty(t *testing.T) {
	joinSQL, whereSQL, orderSQL, args, grouped := buildFilterClauses(&MediaFilter{}, 2)
	assert.Empty(t, joinSQL)
	assert.Empty(t, whereSQL)
	assert.Empty(t, args)
	assert.False(t, grouped)
	assert.Equal(t, " ORDER BY m.Rating DESC NULLS LAST, m.ReleaseYear DESC NULLS LAST", orderSQL)
}

func TestBuildFilterClausesNilFilter(t *testing.T) {
	joinSQL, whereSQL, orderSQL, args, grouped := buildFilterClauses(nil, 2)
	assert.Empty(t, joinSQL)
	assert.Empty(t, whereSQL)
	assert.Empty(t, args)
	assert.False(t, grouped)
	assert.Contains(t, orderSQL, "m.Rating DESC NULLS LAST")
}

func TestBuildFilterClausesGenreJoinRequiresGrouping(t *testing.T) {
	joinSQL, whereSQL, _, args, grouped := buildFilterClauses(&MediaFilter{Genre: "Drama"}, 2)
	assert.Contains(t, joinSQL, "JOIN Media_Genre mg ON mg.MediaID = m.MediaID")
	assert.Contains(t, joinSQL, "g.GenreName = $2")
	assert.Empty(t, whereSQL)
	assert.Equal(t, []interface{}{"Drama"}, args)
	assert.True(t, grouped)
}

func TestBuildFilterClausesAllFiltersConjoined(t *testing.T) {
	f := &MediaFilter{
		Genre:     "Crime",
		Year:      "2008",
		MinRating: "8.5",
		Ongoing:   "true",
	}
	joinSQL, whereSQL, _, args, grouped := buildFilterClauses(f, 2)

	assert.True(t, grouped)
	assert.Contains(t, joinSQL, "g.GenreName = $2")
	assert.Contains(t, joinSQL, "JOIN TVSeries tv ON tv.MediaID = m.MediaID")
	assert.Contains(t, whereSQL, "m.ReleaseYear = $3")
	assert.Contains(t, whereSQL, "m.Rating >= $4")
	assert.Contains(t, whereSQL, "tv.IsOngoing = $5")
	assert.Equal(t, 2, strings.Count(whereSQL, " AND "))
	assert.Equal(t, []interface{}{"Crime", 2008, 8.5, true}, args)
}

func TestBuildFilterClausesRejectsNonNumericValues(t *testing.T) {
	// Values Postgres could not cast never become clauses; like ongoing,
	// an unparseable filter is treated as absent.
	t.Run("year", func(t *testing.T) {
		for _, v := range []string{"abc", "20x8", "2008.5", " 2008"} {
			_, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{Year: v}, 2)
			assert.Empty(t, whereSQL, "year=%q", v)
			assert.Empty(t, args, "year=%q", v)
		}
	})
	t.Run("minRating", func(t *testing.T) {
		for _, v := range []string{"abc", "8,5", "high"} {
			_, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{MinRating: v}, 2)
			assert.Empty(t, whereSQL, "minRating=%q", v)
			assert.Empty(t, args, "minRating=%q", v)
		}
	})
	t.Run("valid values bind typed", func(t *testing.T) {
		_, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{Year: "2008", MinRating: "8.5"}, 2)
		assert.Contains(t, whereSQL, "m.ReleaseYear = $2")
		assert.Contains(t, whereSQL, "m.Rating >= $3")
		assert.Equal(t, []interface{}{2008, 8.5}, args)
	})
}

func TestBuildFilterClausesPeriodLayersWithExplicitYear(t *testing.T) {
	// Both conditions are appended; they only agree when the explicit
	// year is the current calendar year.
	f := &MediaFilter{Year: "1999", Period: "year"}
	_, whereSQL, _, args, _ := buildFilterClauses(f, 2)

	assert.Equal(t, 2, strings.Count(whereSQL, "m.ReleaseYear ="))
	require.Len(t, args, 2)
	assert.Equal(t, 1999, args[0])
	assert.Equal(t, time.Now().Year(), args[1])
}

func TestBuildFilterClausesPeriodAlone(t *testing.T) {
	_, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{Period: "year"}, 2)
	assert.Contains(t, whereSQL, "m.ReleaseYear = $2")
	assert.Equal(t, []interface{}{time.Now().Year()}, args)
}

func TestBuildFilterClausesUnknownPeriodIgnored(t *testing.T) {
	_, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{Period: "month"}, 2)
	assert.Empty(t, whereSQL)
	assert.Empty(t, args)
}

func TestBuildFilterClausesOngoing(t *testing.T) {
	t.Run("false is a real filter", func(t *testing.T) {
		joinSQL, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{Ongoing: "false"}, 2)
		assert.Contains(t, joinSQL, "TVSeries")
		assert.Contains(t, whereSQL, "tv.IsOngoing = $2")
		assert.Equal(t, []interface{}{false}, args)
	})
	t.Run("anything else is ignored", func(t *testing.T) {
		for _, v := range []string{"yes", "1", "TRUE", "maybe"} {
			joinSQL, whereSQL, _, args, _ := buildFilterClauses(&MediaFilter{Ongoing: v}, 2)
			assert.Empty(t, joinSQL, "ongoing=%q", v)
			assert.Empty(t, whereSQL, "ongoing=%q", v)
			assert.Empty(t, args, "ongoing=%q", v)
		}
	})
}

func TestBuildFilterClausesSortWhitelist(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"", " ORDER BY m.Rating DESC NULLS LAST, m.ReleaseYear DESC NULLS LAST"},
		{"rating", " ORDER BY m.Rating DESC NULLS LAST, m.ReleaseYear DESC NULLS LAST"},
		{"year", " ORDER BY m.ReleaseYear DESC NULLS LAST, m.Rating DESC NULLS LAST"},
		{"title", " ORDER BY m.Title ASC"},
		// Off-whitelist values never reach the clause text.
		{"rating; DROP TABLE Media", " ORDER BY m.Rating DESC NULLS LAST, m.ReleaseYear DESC NULLS LAST"},
		{"added_at", " ORDER BY m.Rating DESC NULLS LAST, m.ReleaseYear DESC NULLS LAST"},
	}
	for _, tt := range tests {
		_, _, orderSQL, _, _ := buildFilterClauses(&MediaFilter{Sort: tt.sort}, 2)
		assert.Equal(t, tt.want, orderSQL, "sort=%q", tt.sort)
	}
}

func TestBuildFilterClausesParamNumberingFollowsParamStart(t *testing.T) {
	f := &MediaFilter{Year: "2020", MinRating: "7"}
	_, whereSQL, _, args, _ := buildFilterClauses(f, 5)
	assert.Contains(t, whereSQL, "m.ReleaseYear = $5")
	assert.Contains(t, whereSQL, "m.Rating >= $6")
	assert.Len(t, args, 2)
}
