package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imadgeboyega/twogether-backend/internal/catalog"
	"github.com/imadgeboyega/twogether-backend/internal/common/middleware"
	"github.com/imadgeboyega/twogether-backend/internal/common/utils"
	"github.com/imadgeboyega/twogether-backend/internal/config"
	"github.com/imadgeboyega/twogether-backend/internal/dining"
	"github.com/imadgeboyega/twogether-backend/internal/home"
	"github.com/imadgeboyega/twogether-backend/internal/movies"
	"github.com/imadgeboyega/twogether-backend/internal/virtual"
)

var startTime = time.Now()

// Services bundles one service per domain
type Services struct {
	Movies  movies.Service
	Dining  dining.Service
	Home    home.Service
	Virtual virtual.Service
}

// NewServices builds fresh in-memory stores over the catalogs, so bookings
// and wishlist changes are scoped to the returned services.
func NewServices(catalogs *catalog.Catalogs) *Services {
	return &Services{
		Movies:  movies.NewService(movies.NewMemoryRepository(catalogs.Movies)),
		Dining:  dining.NewService(dining.NewMemoryRepository(catalogs.Dining)),
		Home:    home.NewService(home.NewMemoryRepository(catalogs.Home)),
		Virtual: virtual.NewService(virtual.NewMemoryRepository(catalogs.Virtual)),
	}
}

// NewRouter wires every domain onto /api/v1, rate limited per client by limiter
func NewRouter(cfg *config.Config, services *Services, limiter *middleware.RateLimiter) http.Handler {
	router := mux.NewRouter()
	if cfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.Recoverer, middleware.RequestLogger)

	router.HandleFunc("/health", healthCheck).Methods("GET")
	if cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(limiter.Limit)

	movies.RegisterRoutes(api, movies.NewHandler(services.Movies))
	dining.RegisterRoutes(api, dining.NewHandler(services.Dining))
	home.RegisterRoutes(api, home.NewHandler(services.Home))
	virtual.RegisterRoutes(api, virtual.NewHandler(services.Virtual))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.ErrorResponse(w, "Route not found", http.StatusNotFound)
	})

	return middleware.CORS(router)
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}, http.StatusOK)
}
