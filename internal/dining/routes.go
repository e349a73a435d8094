package dining

import "github.com/gorilla/mux"

func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/restaurants").Subrouter()

	api.HandleFunc("/recommendations", handler.GetRecommendations).Methods("POST")
	api.HandleFunc("/search", handler.Search).Methods("GET")
	api.HandleFunc("/{id}", handler.GetRestaurant).Methods("GET")
	api.HandleFunc("/{id}/menu", handler.GetMenu).Methods("POST")
	api.HandleFunc("/{id}/reservations", handler.GetReservations).Methods("GET")
	api.HandleFunc("/{id}/reservations/{slotId}", handler.Reserve).Methods("POST")
}
