package home

import "slices"

// Repository is read-only access to the stay-at-home catalogs
type Repository interface {
	ListRecipes() []Recipe
	GetRecipe(id string) (Recipe, bool)
	ListGames() []Game
	GetGame(id string) (Game, bool)
	ListActivities() []Activity
	GetActivity(id string) (Activity, bool)
}

type memoryRepository struct {
	catalog Catalog
}

func NewMemoryRepository(catalog Catalog) Repository {
	return &memoryRepository{catalog: catalog}
}

func (r *memoryRepository) ListRecipes() []Recipe {
	return slices.Clone(r.catalog.Recipes)
}

func (r *memoryRepository) GetRecipe(id string) (Recipe, bool) {
	return find(r.catalog.Recipes, func(recipe Recipe) bool { return recipe.ID == id })
}

func (r *memoryRepository) ListGames() []Game {
	return slices.Clone(r.catalog.Games)
}

func (r *memoryRepository) GetGame(id string) (Game, bool) {
	return find(r.catalog.Games, func(game Game) bool { return game.ID == id })
}

func (r *memoryRepository) ListActivities() []Activity {
	return slices.Clone(r.catalog.DIYActivities)
}

func (r *memoryRepository) GetActivity(id string) (Activity, bool) {
	return find(r.catalog.DIYActivities, func(activity Activity) bool { return activity.ID == id })
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}
