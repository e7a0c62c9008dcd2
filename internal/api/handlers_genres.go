package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sabbir-rashid/cholochitro/internal/httputil"
	"github.com/sabbir-rashid/cholochitro/internal/models"
)

const (
	defaultTopActors = 10
	maxTopActors     = 50
)

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	var mediaType models.MediaType
	switch r.URL.Query().Get("type") {
	case "Movie":
		mediaType = models.MediaTypeMovie
	case "TVSeries":
		mediaType = models.MediaTypeTVSeries
	}

	genres, err := s.genreRepo.ListWithCounts(r.Context(), mediaType)
	if err != nil {
		slog.Error("failed to list genres", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch genres")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, genres)
}

func (s *Server) handleTopActors(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopActors
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 {
		limit = v
	}
	if limit > maxTopActors {
		limit = maxTopActors
	}

	actors, err := s.personRepo.TopActors(r.Context(), limit)
	if err != nil {
		slog.Error("failed to fetch top actors", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch top actors")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, actors)
}
