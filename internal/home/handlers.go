package home

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

func kindOf(r *http.Request) Kind {
	return Kind(mux.Vars(r)["kind"])
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var dto RecommendationRequestDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	kind := kindOf(r)
	var data interface{}
	switch kind {
	case KindRecipes:
		data = h.service.GetRecipeRecommendations(dto.User, dto.Partner, dto.Context)
	case KindGames:
		data = h.service.GetGameRecommendations(dto.User, dto.Partner, dto.Context)
	case KindDIY:
		data = h.service.GetDIYRecommendations(dto.User, dto.Partner, dto.Context)
	default:
		utils.ErrorResponse(w, "Unknown activity kind", http.StatusNotFound)
		return
	}

	logging.Ctx(r.Context()).Debug().Str("kind", string(kind)).Msg("home recommendations served")
	utils.SuccessResponse(w, data, http.StatusOK)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	switch kindOf(r) {
	case KindRecipes:
		utils.SuccessResponse(w, h.service.SearchRecipes(query), http.StatusOK)
	case KindGames:
		utils.SuccessResponse(w, h.service.SearchGames(query), http.StatusOK)
	case KindDIY:
		utils.SuccessResponse(w, h.service.SearchActivities(query), http.StatusOK)
	default:
		utils.ErrorResponse(w, "Unknown activity kind", http.StatusNotFound)
	}
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var (
		item interface{}
		ok   bool
	)
	switch kindOf(r) {
	case KindRecipes:
		item, ok = h.service.GetRecipe(id)
	case KindGames:
		item, ok = h.service.GetGame(id)
	case KindDIY:
		item, ok = h.service.GetActivity(id)
	}

	if !ok {
		utils.ErrorResponse(w, "Activity not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, item, http.StatusOK)
}
