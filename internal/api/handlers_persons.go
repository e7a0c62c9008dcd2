package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sabbir-rashid/cholochitro/internal/httputil"
	"github.com/sabbir-rashid/cholochitro/internal/repository"
)

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "Person not found")
		return
	}

	person, err := s.personRepo.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		httputil.WriteError(w, http.StatusNotFound, "Person not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch person", "personid", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch person details")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, person)
}

func (s *Server) handleFilmography(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "Person not found")
		return
	}

	ctx := r.Context()

	// A person with no credits gets an empty list; an unknown person gets
	// 404, same as the person detail endpoint.
	if _, err := s.personRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.WriteError(w, http.StatusNotFound, "Person not found")
			return
		}
		slog.Error("failed to fetch filmography", "personid", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch filmography")
		return
	}

	credits, err := s.personRepo.Filmography(ctx, id)
	if err != nil {
		slog.Error("failed to fetch filmography", "personid", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to fetch filmography")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, credits)
}
