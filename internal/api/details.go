package api

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/sabbir-rashid/cholochitro/internal/models"
	"github.com/sabbir-rashid/cholochitro/internal/repository"
)

// The detail assemblers fan the base-entity query and its relation
// queries out concurrently and join before composing the response. The
// queries touch disjoint relations, so this is a latency win only; any
// failure fails the whole request since a partial detail view is not
// meaningful, and the group context cancels the siblings still in
// flight. Absence of the base row is authoritative: it maps to
// ErrNotFound no matter what the relation queries returned, so the base
// lookup defers its not-found verdict until after the join.

func (s *Server) movieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	var (
		movie   *models.MovieDetails
		genres  []models.Genre
		cast    []models.CastMember
		crew    []models.CrewMember
		studios []models.Studio
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.movieRepo.GetByID(gctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		movie = m
		return err
	})
	g.Go(func() (err error) { genres, err = s.mediaRepo.GenresFor(gctx, id); return })
	g.Go(func() (err error) { cast, err = s.mediaRepo.CastFor(gctx, id); return })
	g.Go(func() (err error) { crew, err = s.mediaRepo.CrewFor(gctx, id); return })
	g.Go(func() (err error) { studios, err = s.mediaRepo.StudiosFor(gctx, id); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, repository.ErrNotFound
	}

	movie.Genres = genres
	movie.Cast = cast
	movie.Crew = crew
	movie.Studios = studios
	return movie, nil
}

func (s *Server) showDetails(ctx context.Context, id int) (*models.TVShowDetails, error) {
	var (
		show     *models.TVShowDetails
		genres   []models.Genre
		cast     []models.CastMember
		crew     []models.CrewMember
		studios  []models.Studio
		seasons  []models.Season
		episodes []models.Episode
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tvRepo.GetByID(gctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		show = t
		return err
	})
	g.Go(func() (err error) { genres, err = s.mediaRepo.GenresFor(gctx, id); return })
	g.Go(func() (err error) { cast, err = s.mediaRepo.CastFor(gctx, id); return })
	g.Go(func() (err error) { crew, err = s.mediaRepo.CrewFor(gctx, id); return })
	g.Go(func() (err error) { studios, err = s.mediaRepo.StudiosFor(gctx, id); return })
	g.Go(func() (err error) { seasons, err = s.tvRepo.SeasonsByShow(gctx, id); return })
	g.Go(func() (err error) { episodes, err = s.tvRepo.EpisodesByShow(gctx, id); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if show == nil {
		return nil, repository.ErrNotFound
	}

	show.Genres = genres
	show.Cast = cast
	show.Crew = crew
	show.Studios = studios
	show.Seasons = attachEpisodes(seasons, episodes)
	return show, nil
}

// showSeasons is the lighter detail variant: base row plus seasons and
// episodes, no cast/crew/genre/studio fan-out.
func (s *Server) showSeasons(ctx context.Context, id int) (*models.TVShowDetails, error) {
	var (
		show     *models.TVShowDetails
		seasons  []models.Season
		episodes []models.Episode
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tvRepo.GetByID(gctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		show = t
		return err
	})
	g.Go(func() (err error) { seasons, err = s.tvRepo.SeasonsByShow(gctx, id); return })
	g.Go(func() (err error) { episodes, err = s.tvRepo.EpisodesByShow(gctx, id); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if show == nil {
		return nil, repository.ErrNotFound
	}

	show.Genres = []models.Genre{}
	show.Cast = []models.CastMember{}
	show.Crew = []models.CrewMember{}
	show.Studios = []models.Studio{}
	show.Seasons = attachEpisodes(seasons, episodes)
	return show, nil
}

// attachEpisodes partitions a show's flat episode list under its seasons
// by season number, one linear pass. Episodes whose season number matches
// no season row are dropped.
func attachEpisodes(seasons []models.Season, episodes []models.Episode) []models.Season {
	bySeason := make(map[int][]models.Episode, len(seasons))
	for _, ep := range episodes {
		bySeason[ep.SeasonNo] = append(bySeason[ep.SeasonNo], ep)
	}
	for i := range seasons {
		eps := bySeason[seasons[i].SeasonNo]
		if eps == nil {
			eps = []models.Episode{}
		}
		seasons[i].Episodes = eps
	}
	return seasons
}
