package home

import "github.com/gorilla/mux"

func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/home/{kind:recipes|games|diy}").Subrouter()

	api.HandleFunc("/recommendations", handler.GetRecommendations).Methods("POST")
	api.HandleFunc("/search", handler.Search).Methods("GET")
	api.HandleFunc("/{id}", handler.GetByID).Methods("GET")
}
