package movies

import "github.com/gorilla/mux"

func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/movies").Subrouter()

	api.HandleFunc("/recommendations", handler.GetRecommendations).Methods("POST")
	api.HandleFunc("/search", handler.Search).Methods("GET")
	api.HandleFunc("/snacks", handler.GetSnacks).Methods("POST")
	api.HandleFunc("/streaming-services", handler.ListStreamingServices).Methods("GET")
	api.HandleFunc("/{id}", handler.GetMovie).Methods("GET")
}
