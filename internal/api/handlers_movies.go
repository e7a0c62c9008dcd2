package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sabbir-rashid/cholochitro/internal/httputil"
	"github.com/sabbir-rashid/cholochitro/internal/models"
	"github.com/sabbir-rashid/cholochitro/internal/repository"
)

func parseListOptions(r *http.Request) repository.ListOptions {
	q := r.URL.Query()
	return repository.ParseListOptions(q.Get("page"), q.Get("limit"))
}

func parseMediaFilter(r *http.Request) *repository.MediaFilter {
	q := r.URL.Query()
	return &repository.MediaFilter{
		Genre:     q.Get("genre"),
		Year:      q.Get("year"),
		MinRating: q.Get("minRating"),
		Period:    q.Get("period"),
		Ongoing:   q.Get("ongoing"),
		Sort:      q.Get("sort"),
	}
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opts := parseListOptions(r)
	filter := parseMediaFilter(r)
	filter.Ongoing = "" // movie rows have no ongoing flag

	movies, err := s.mediaRepo.List(ctx, models.MediaTypeMovie, filter, opts)
	if err != nil {
		slog.Error("failed to list movies", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch movies")
		return
	}

	total, err := s.mediaRepo.Count(ctx, models.MediaTypeMovie, filter)
	if err != nil {
		slog.Error("failed to count movies", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch movies")
		return
	}

	httputil.WriteList(w, movies, httputil.NewPagination(opts.Page, opts.Limit, total))
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "Movie not found")
		return
	}

	movie, err := s.movieDetails(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		httputil.WriteError(w, http.StatusNotFound, "Movie not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch movie details", "mediaid", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch movie details")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, movie)
}
