package movies

import "slices"

// Repository is read-only access to the movie catalog
type Repository interface {
	ListMovies() []Movie
	GetMovie(id string) (Movie, bool)
	ListSnacks() []Snack
	ListStreamingServices() []StreamingService
}

type memoryRepository struct {
	catalog Catalog
}

// NewMemoryRepository serves the catalog from memory. The catalog is never
// mutated; callers receive copies.
func NewMemoryRepository(catalog Catalog) Repository {
	return &memoryRepository{catalog: catalog}
}

func (r *memoryRepository) ListMovies() []Movie {
	return slices.Clone(r.catalog.Movies)
}

func (r *memoryRepository) GetMovie(id string) (Movie, bool) {
	for _, movie := range r.catalog.Movies {
		if movie.ID == id {
			return movie, true
		}
	}
	return Movie{}, false
}

func (r *memoryRepository) ListSnacks() []Snack {
	return slices.Clone(r.catalog.Snacks)
}

func (r *memoryRepository) ListStreamingServices() []StreamingService {
	return slices.Clone(r.catalog.StreamingServices)
}
