package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// ListOptions is the page/limit pair every list endpoint accepts.
type ListOptions struct {
	Page  int
	Limit int
}

// ParseListOptions coerces raw query-string values, falling back to
// defaults on anything non-numeric or out of range.
func ParseListOptions(page, limit string) ListOptions {
	o := ListOptions{Page: defaultPage, Limit: defaultLimit}
	if v, err := strconv.Atoi(page); err == nil && v >= 1 {
		o.Page = v
	}
	if v, err := strconv.Atoi(limit); err == nil && v >= 1 {
		o.Limit = v
	}
	return o
}

func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// MediaFilter holds the recognized list filters, raw from the query
// string. Empty string means the filter is absent and adds no clause.
type MediaFilter struct {
	Genre     string
	Year      string
	MinRating string
	Period    string
	Ongoing   string // TV listings only; literal "true"/"false", else ignored
	Sort      string
}

// buildFilterClauses turns a MediaFilter into JOIN, WHERE and ORDER BY
// fragments plus their bound args. paramStart is the next free $n index
// ($1 is always the media type). whereSQL is either empty or begins with
// " AND". grouped reports whether the genre join is present, in which
// case the caller must deduplicate rows (GROUP BY for fetches,
// COUNT(DISTINCT ...) for counts) since the join fans out one row per
// matching genre.
func buildFilterClauses(f *MediaFilter, paramStart int) (joinSQL, whereSQL, orderSQL string, args []interface{}, grouped bool) {
	var joins []string
	var wheres []string
	p := paramStart

	if f != nil {
		if f.Genre != "" {
			joins = append(joins, fmt.Sprintf(
				`JOIN Media_Genre mg ON mg.MediaID = m.MediaID JOIN Genre g ON g.GenreID = mg.GenreID AND g.GenreName = $%d`, p))
			args = append(args, f.Genre)
			p++
			grouped = true
		}
		// Year and minRating are validated here rather than bound raw, so a
		// value Postgres cannot cast never reaches the driver. Like ongoing,
		// an unparseable value means the filter is simply absent.
		if v, err := strconv.Atoi(f.Year); err == nil {
			wheres = append(wheres, fmt.Sprintf(`m.ReleaseYear = $%d`, p))
			args = append(args, v)
			p++
		}
		// period=year is shorthand for the current calendar year. It layers
		// with an explicit year filter: both equalities are AND'd, so they
		// only agree when the explicit year is the current one.
		if f.Period == "year" {
			wheres = append(wheres, fmt.Sprintf(`m.ReleaseYear = $%d`, p))
			args = append(args, time.Now().Year())
			p++
		}
		if v, err := strconv.ParseFloat(f.MinRating, 64); err == nil {
			wheres = append(wheres, fmt.Sprintf(`m.Rating >= $%d`, p))
			args = append(args, v)
			p++
		}
		if f.Ongoing == "true" || f.Ongoing == "false" {
			joins = append(joins, `JOIN TVSeries tv ON tv.MediaID = m.MediaID`)
			wheres = append(wheres, fmt.Sprintf(`tv.IsOngoing = $%d`, p))
			args = append(args, f.Ongoing == "true")
			p++
		}
	}

	if len(joins) > 0 {
		joinSQL = " " + strings.Join(joins, " ")
	}
	if len(wheres) > 0 {
		whereSQL = " AND " + strings.Join(wheres, " AND ")
	}

	// Sort keys map to fixed clauses; anything off the whitelist falls
	// back to the rating policy.
	switch f.sort() {
	case "year":
		orderSQL = " ORDER BY m.ReleaseYear DESC NULLS LAST, m.Rating DESC NULLS LAST"
	case "title":
		orderSQL = " ORDER BY m.Title ASC"
	default:
		orderSQL = " ORDER BY m.Rating DESC NULLS LAST, m.ReleaseYear DESC NULLS LAST"
	}

	return joinSQL, whereSQL, orderSQL, args, grouped
}

func (f *MediaFilter) sort() string {
	if f == nil {
		return ""
	}
	return f.Sort
}
