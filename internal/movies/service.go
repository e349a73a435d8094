// internal/movies/service.go

package movies

import (
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// MaxRecommendations caps the ranked movie list
const MaxRecommendations = 10

const domain = "movies"

type Service interface {
	GetRecommendations(user, partner Preferences, rctx *recommend.Context) []Movie
	GetMovie(id string) (Movie, bool)
	Search(query string) []Movie
	GetSnackRecommendations(genres []string, user, partner SnackPreferences) []Snack
	ListStreamingServices() []StreamingService
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetRecommendations scores every movie for the couple and returns the top
// matches, best first.
func (s *service) GetRecommendations(user, partner Preferences, rctx *recommend.Context) []Movie {
	started := time.Now()

	catalog := s.repo.ListMovies()
	scored := make([]Movie, 0, len(catalog))
	for _, movie := range catalog {
		score, factors := CalculateScore(movie, user, partner, rctx)
		movie.MatchScore = recommend.ScorePtr(score)
		movie.Factors = &factors
		scored = append(scored, movie)
	}

	ranked := recommend.Rank(scored, func(m Movie) int { return recommend.ScoreOf(m.MatchScore) }, MaxRecommendations)

	scores := make([]int, len(ranked))
	for i, m := range ranked {
		scores[i] = *m.MatchScore
	}
	recommend.RecordRecommendations(domain, started, scores)

	return ranked
}

func (s *service) GetMovie(id string) (Movie, bool) {
	return s.repo.GetMovie(id)
}

// Search matches title, genres and description, ignoring case
func (s *service) Search(query string) []Movie {
	results := []Movie{}
	for _, movie := range s.repo.ListMovies() {
		if recommend.ContainsFold(movie.Title, query) ||
			recommend.AnyContainsFold(movie.Genres, query) ||
			recommend.ContainsFold(movie.Description, query) {
			results = append(results, movie)
		}
	}
	return results
}

func (s *service) GetSnackRecommendations(genres []string, user, partner SnackPreferences) []Snack {
	return PairSnacks(s.repo.ListSnacks(), genres, user, partner)
}

func (s *service) ListStreamingServices() []StreamingService {
	return s.repo.ListStreamingServices()
}
