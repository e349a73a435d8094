package virtual

import "github.com/gorilla/mux"

func RegisterRoutes(router *mux.Router, handler *Handler) {
	dates := router.PathPrefix("/virtual").Subrouter()
	dates.HandleFunc("/recommendations", handler.GetRecommendations).Methods("POST")
	dates.HandleFunc("/search", handler.Search).Methods("GET")
	dates.HandleFunc("/convert-time", handler.ConvertTime).Methods("GET")
	dates.HandleFunc("/{id}", handler.GetVirtualDate).Methods("GET")

	wishlist := router.PathPrefix("/wishlist").Subrouter()
	wishlist.HandleFunc("", handler.GetWishlist).Methods("GET")
	wishlist.HandleFunc("", handler.AddToWishlist).Methods("POST")
	wishlist.HandleFunc("/search", handler.SearchWishlist).Methods("GET")
	wishlist.HandleFunc("/{id}", handler.GetWishlistItem).Methods("GET")
	wishlist.HandleFunc("/{id}", handler.RemoveFromWishlist).Methods("DELETE")
	wishlist.HandleFunc("/{id}/complete", handler.CompleteWishlistItem).Methods("POST")

	plans := router.PathPrefix("/plans").Subrouter()
	plans.HandleFunc("", handler.GetPlans).Methods("GET")
	plans.HandleFunc("", handler.CreatePlan).Methods("POST")
	plans.HandleFunc("/{id}", handler.GetPlan).Methods("GET")
	plans.HandleFunc("/{id}/status", handler.UpdatePlanStatus).Methods("POST")
}
