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

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opts := parseListOptions(r)
	filter := parseMediaFilter(r)

	shows, err := s.mediaRepo.List(ctx, models.MediaTypeTVSeries, filter, opts)
	if err != nil {
		slog.Error("failed to list TV shows", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch TV shows")
		return
	}

	total, err := s.mediaRepo.Count(ctx, models.MediaTypeTVSeries, filter)
	if err != nil {
		slog.Error("failed to count TV shows", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch TV shows")
		return
	}

	httputil.WriteList(w, shows, httputil.NewPagination(opts.Page, opts.Limit, total))
}

func (s *Server) handleGetShow(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "TV show not found")
		return
	}

	show, err := s.showDetails(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		httputil.WriteError(w, http.StatusNotFound, "TV show not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch TV show details", "mediaid", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch TV show details")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, show)
}

func (s *Server) handleGetShowSeasons(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "TV show not found")
		return
	}

	show, err := s.showSeasons(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		httputil.WriteError(w, http.StatusNotFound, "TV show not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch show seasons", "mediaid", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch TV show details")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, show)
}
