// Package catalog loads the static item catalogs every domain scores
// against. The seed JSON is embedded in the binary; CATALOG_DIR may point at
// a directory holding replacements for any of the files.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"

	"github.com/imadgeboyega/twogether-backend/internal/dining"
	"github.com/imadgeboyega/twogether-backend/internal/home"
	"github.com/imadgeboyega/twogether-backend/internal/logging"
	"github.com/imadgeboyega/twogether-backend/internal/movies"
	"github.com/imadgeboyega/twogether-backend/internal/virtual"
)

const (
	MoviesFile      = "movies.json"
	RestaurantsFile = "restaurants.json"
	HomeFile        = "home.json"
	VirtualFile     = "virtual.json"
)

//go:embed seed/*.json
var seed embed.FS

var ErrDuplicateID = errors.New("duplicate id")

// Catalogs bundles the seed data of every domain
type Catalogs struct {
	Movies  movies.Catalog
	Dining  dining.Catalog
	Home    home.Catalog
	Virtual virtual.Catalog
}

// Load reads the catalogs from dir, falling back to the embedded seed for
// any file dir does not contain. An empty dir means the embedded seed only.
func Load(dir string) (*Catalogs, error) {
	embedded, err := fs.Sub(seed, "seed")
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return LoadFS(embedded)
	}
	return LoadFS(overlayFS{primary: os.DirFS(dir), fallback: embedded})
}

// LoadFS reads all four catalog files from fsys
func LoadFS(fsys fs.FS) (*Catalogs, error) {
	var c Catalogs

	files := []struct {
		name string
		dst  interface{}
	}{
		{MoviesFile, &c.Movies},
		{RestaurantsFile, &c.Dining},
		{HomeFile, &c.Home},
		{VirtualFile, &c.Virtual},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	logger := logging.WithComponent("catalog")
	logger.Info().
		Int("movies", len(c.Movies.Movies)).
		Int("restaurants", len(c.Dining.Restaurants)).
		Int("recipes", len(c.Home.Recipes)).
		Int("games", len(c.Home.Games)).
		Int("diy_activities", len(c.Home.DIYActivities)).
		Int("virtual_dates", len(c.Virtual.VirtualDates)).
		Msg("catalogs loaded")

	return &c, nil
}

func decodeFile(fsys fs.FS, name string, dst interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// validate rejects catalogs whose item ids are not unique
func (c *Catalogs) validate() error {
	checks := []struct {
		name string
		ids  []string
	}{
		{"movies", ids(c.Movies.Movies, func(m movies.Movie) string { return m.ID })},
		{"snacks", ids(c.Movies.Snacks, func(s movies.Snack) string { return s.ID })},
		{"streaming services", ids(c.Movies.StreamingServices, func(s movies.StreamingService) string { return s.ID })},
		{"restaurants", ids(c.Dining.Restaurants, func(r dining.Restaurant) string { return r.ID })},
		{"recipes", ids(c.Home.Recipes, func(r home.Recipe) string { return r.ID })},
		{"games", ids(c.Home.Games, func(g home.Game) string { return g.ID })},
		{"diy activities", ids(c.Home.DIYActivities, func(a home.Activity) string { return a.ID })},
		{"virtual dates", ids(c.Virtual.VirtualDates, func(d virtual.VirtualDate) string { return d.ID })},
		{"wishlist", ids(c.Virtual.Wishlist, func(w virtual.WishlistItem) string { return w.ID })},
		{"plans", ids(c.Virtual.Plans, func(p virtual.Plan) string { return p.ID })},
	}

	for _, check := range checks {
		seen := make(map[string]bool, len(check.ids))
		for _, id := range check.ids {
			if seen[id] {
				return fmt.Errorf("%s: %w %q", check.name, ErrDuplicateID, id)
			}
			seen[id] = true
		}
	}
	return nil
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

// overlayFS serves files from primary and falls back when they are missing
type overlayFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	logger := logging.WithComponent("catalog")
	logger.Debug().Str("file", name).Msg("using embedded seed")
	return o.fallback.Open(name)
}
