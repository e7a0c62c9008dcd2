package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sabbir-rashid/cholochitro/internal/db"
	"github.com/sabbir-rashid/cholochitro/internal/httputil"
	"github.com/sabbir-rashid/cholochitro/internal/repository"
	"github.com/sabbir-rashid/cholochitro/internal/version"
)

type Server struct {
	db         *db.DB
	mediaRepo  *repository.MediaRepository
	movieRepo  *repository.MovieRepository
	tvRepo     *repository.TVRepository
	genreRepo  *repository.GenreRepository
	personRepo *repository.PersonRepository
	searchRepo *repository.SearchRepository
	version    version.Info
	router     chi.Router
}

func NewServer(database *db.DB, ver version.Info) *Server {
	s := &Server{
		db:         database,
		mediaRepo:  repository.NewMediaRepository(database.DB),
		movieRepo:  repository.NewMovieRepository(database.DB),
		tvRepo:     repository.NewTVRepository(database.DB),
		genreRepo:  repository.NewGenreRepository(database.DB),
		personRepo: repository.NewPersonRepository(database.DB),
		searchRepo: repository.NewSearchRepository(database.DB),
		version:    ver,
		router:     chi.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(corsMiddleware)

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)

	s.router.Get("/movies", s.handleListMovies)
	s.router.Get("/movies/{id}", s.handleGetMovie)

	s.router.Get("/tvshows", s.handleListShows)
	s.router.Get("/tvshows/{id}", s.handleGetShow)
	s.router.Get("/tvshows/{id}/seasons", s.handleGetShowSeasons)

	s.router.Get("/genres", s.handleListGenres)
	s.router.Get("/actors/top", s.handleTopActors)

	s.router.Get("/search", s.handleSearch)
	s.router.Get("/persons/search", s.handleSearchPersons)
	s.router.Get("/persons/{id}", s.handleGetPerson)
	s.router.Get("/persons/{id}/filmography", s.handleFilmography)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Cholochitro Bhandar API",
		"version": s.version.Version,
		"endpoints": map[string]string{
			"movies":        "/movies - Get all movies (paginated, filterable)",
			"movieById":     "/movies/:id - Get single movie details",
			"tvshows":       "/tvshows - Get all TV shows (paginated, filterable)",
			"tvshowById":    "/tvshows/:id - Get single TV show details",
			"tvshowSeasons": "/tvshows/:id/seasons - Get a show's seasons and episodes",
			"genres":        "/genres - Get genres with title counts",
			"topActors":     "/actors/top - Get actors ranked by title count",
			"search":        "/search?q=query - Search movies and TV shows",
			"personSearch":  "/persons/search?q=query - Search people by name",
			"personById":    "/persons/:id - Get person details",
			"filmography":   "/persons/:id/filmography - Get a person's credits",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		slog.Error("health check database ping failed", "error", err)
		httputil.WriteError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger logs one line per request with status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// corsMiddleware lets the frontend call the API from another origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
