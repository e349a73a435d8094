package movies

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/twogether-backend/internal/common/utils"
	"github.com/imadgeboyega/twogether-backend/internal/logging"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var dto RecommendationRequestDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	movies := h.service.GetRecommendations(dto.User, dto.Partner, dto.Context)
	logging.Ctx(r.Context()).Debug().Int("count", len(movies)).Msg("movie recommendations served")

	utils.SuccessResponse(w, movies, http.StatusOK)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Search(r.URL.Query().Get("q")), http.StatusOK)
}

func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.service.GetMovie(mux.Vars(r)["id"])
	if !ok {
		utils.ErrorResponse(w, "Movie not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, movie, http.StatusOK)
}

func (h *Handler) GetSnacks(w http.ResponseWriter, r *http.Request) {
	var dto SnackRequestDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.SuccessResponse(w, h.service.GetSnackRecommendations(dto.Genres, dto.User, dto.Partner), http.StatusOK)
}

func (h *Handler) ListStreamingServices(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.ListStreamingServices(), http.StatusOK)
}
