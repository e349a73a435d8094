// internal/home/service.go

package home

import (
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

const (
	MaxRecipes    = 6
	MaxGames      = 6
	MaxActivities = 4
)

type Service interface {
	GetRecipeRecommendations(user, partner Preferences, rctx *recommend.Context) []Recipe
	GetGameRecommendations(user, partner Preferences, rctx *recommend.Context) []Game
	GetDIYRecommendations(user, partner Preferences, rctx *recommend.Context) []Activity

	SearchRecipes(query string) []Recipe
	SearchGames(query string) []Game
	SearchActivities(query string) []Activity

	GetRecipe(id string) (Recipe, bool)
	GetGame(id string) (Game, bool)
	GetActivity(id string) (Activity, bool)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetRecipeRecommendations(user, partner Preferences, rctx *recommend.Context) []Recipe {
	started := time.Now()

	recipes := s.repo.ListRecipes()
	for i := range recipes {
		recipes[i].MatchScore = recommend.ScorePtr(ScoreRecipe(recipes[i], user, partner, rctx))
	}
	ranked := recommend.Rank(recipes, func(r Recipe) int { return recommend.ScoreOf(r.MatchScore) }, MaxRecipes)

	recommend.RecordRecommendations(string(KindRecipes), started, scoresOf(ranked, func(r Recipe) *int { return r.MatchScore }))
	return ranked
}

func (s *service) GetGameRecommendations(user, partner Preferences, rctx *recommend.Context) []Game {
	started := time.Now()

	games := s.repo.ListGames()
	for i := range games {
		games[i].MatchScore = recommend.ScorePtr(ScoreGame(games[i], user, partner, rctx))
	}
	ranked := recommend.Rank(games, func(g Game) int { return recommend.ScoreOf(g.MatchScore) }, MaxGames)

	recommend.RecordRecommendations(string(KindGames), started, scoresOf(ranked, func(g Game) *int { return g.MatchScore }))
	return ranked
}

func (s *service) GetDIYRecommendations(user, partner Preferences, rctx *recommend.Context) []Activity {
	started := time.Now()

	activities := s.repo.ListActivities()
	for i := range activities {
		activities[i].MatchScore = recommend.ScorePtr(ScoreActivity(activities[i], user, partner, rctx))
	}
	ranked := recommend.Rank(activities, func(a Activity) int { return recommend.ScoreOf(a.MatchScore) }, MaxActivities)

	recommend.RecordRecommendations(string(KindDIY), started, scoresOf(ranked, func(a Activity) *int { return a.MatchScore }))
	return ranked
}

func scoresOf[T any](items []T, score func(T) *int) []int {
	scores := make([]int, len(items))
	for i, item := range items {
		scores[i] = recommend.ScoreOf(score(item))
	}
	return scores
}

// SearchRecipes matches name, description, cuisine and ingredient names
func (s *service) SearchRecipes(query string) []Recipe {
	results := []Recipe{}
	for _, recipe := range s.repo.ListRecipes() {
		if recommend.ContainsFold(recipe.Name, query) ||
			recommend.ContainsFold(recipe.Description, query) ||
			recommend.ContainsFold(recipe.Cuisine, query) ||
			ingredientMatches(recipe.Ingredients, query) {
			results = append(results, recipe)
		}
	}
	return results
}

func ingredientMatches(ingredients []Ingredient, query string) bool {
	for _, ingredient := range ingredients {
		if recommend.ContainsFold(ingredient.Name, query) {
			return true
		}
	}
	return false
}

func (s *service) SearchGames(query string) []Game {
	results := []Game{}
	for _, game := range s.repo.ListGames() {
		if recommend.ContainsFold(game.Name, query) ||
			recommend.ContainsFold(game.Description, query) ||
			recommend.ContainsFold(game.Type, query) {
			results = append(results, game)
		}
	}
	return results
}

func (s *service) SearchActivities(query string) []Activity {
	results := []Activity{}
	for _, activity := range s.repo.ListActivities() {
		if recommend.ContainsFold(activity.Name, query) ||
			recommend.ContainsFold(activity.Description, query) ||
			recommend.AnyContainsFold(activity.Materials, query) {
			results = append(results, activity)
		}
	}
	return results
}

func (s *service) GetRecipe(id string) (Recipe, bool) {
	return s.repo.GetRecipe(id)
}

func (s *service) GetGame(id string) (Game, bool) {
	return s.repo.GetGame(id)
}

func (s *service) GetActivity(id string) (Activity, bool) {
	return s.repo.GetActivity(id)
}
