package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/sabbir-rashid/cholochitro/internal/httputil"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httputil.WriteError(w, http.StatusBadRequest, "Search query (q) is required")
		return
	}
	ctx := r.Context()
	opts := parseListOptions(r)

	results, err := s.searchRepo.SearchMedia(ctx, query, opts)
	if err != nil {
		slog.Error("media search failed", "query", query, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	total, err := s.searchRepo.CountMedia(ctx, query)
	if err != nil {
		slog.Error("media search count failed", "query", query, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	httputil.WriteSearch(w, query, results, httputil.NewPagination(opts.Page, opts.Limit, total))
}

func (s *Server) handleSearchPersons(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httputil.WriteError(w, http.StatusBadRequest, "Search query (q) is required")
		return
	}
	ctx := r.Context()
	opts := parseListOptions(r)

	results, err := s.personRepo.SearchByName(ctx, query, opts)
	if err != nil {
		slog.Error("person search failed", "query", query, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	total, err := s.personRepo.CountByName(ctx, query)
	if err != nil {
		slog.Error("person search count failed", "query", query, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	httputil.WriteSearch(w, query, results, httputil.NewPagination(opts.Page, opts.Limit, total))
}
