package virtual

import (
	"errors"
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

// Virtual dates

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var dto RecommendationRequestDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	dates := h.service.GetRecommendations(dto.User, dto.Partner, dto.Context)
	logging.Ctx(r.Context()).Debug().Int("count", len(dates)).Msg("virtual date recommendations served")

	utils.SuccessResponse(w, dates, http.StatusOK)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Search(r.URL.Query().Get("q")), http.StatusOK)
}

func (h *Handler) GetVirtualDate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.service.GetVirtualDate(mux.Vars(r)["id"])
	if !ok {
		utils.ErrorResponse(w, "Virtual date not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, date, http.StatusOK)
}

// ConvertTime expects ?time=HH:MM&from=<zone>&to=<zone>
func (h *Handler) ConvertTime(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	converted, err := h.service.ConvertTime(query.Get("time"), query.Get("from"), query.Get("to"))
	if err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.SuccessResponse(w, map[string]string{
		"time":      query.Get("time"),
		"from":      query.Get("from"),
		"to":        query.Get("to"),
		"converted": converted,
	}, http.StatusOK)
}

// Wishlist

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.GetWishlist(), http.StatusOK)
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var dto AddWishlistItemDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := h.service.AddToWishlist(dto.toNew())
	logging.Ctx(r.Context()).Info().Str("item_id", item.ID).Msg("wishlist item added")

	utils.SuccessResponse(w, item, http.StatusCreated)
}

func (h *Handler) SearchWishlist(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.SearchWishlist(r.URL.Query().Get("q")), http.StatusOK)
}

func (h *Handler) GetWishlistItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.service.GetWishlistItem(mux.Vars(r)["id"])
	if !ok {
		utils.ErrorResponse(w, "Wishlist item not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, item, http.StatusOK)
}

func (h *Handler) CompleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Complete(mux.Vars(r)["id"])
	switch {
	case errors.Is(err, ErrWishlistItemNotFound):
		utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrAlreadyCompleted):
		utils.ErrorResponse(w, err.Error(), http.StatusConflict)
	case err != nil:
		utils.ErrorResponse(w, err.Error(), http.StatusInternalServerError)
	default:
		utils.SuccessResponse(w, item, http.StatusOK)
	}
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	if !h.service.RemoveFromWishlist(mux.Vars(r)["id"]) {
		utils.ErrorResponse(w, "Wishlist item not found", http.StatusNotFound)
		return
	}
	utils.MessageResponse(w, "Wishlist item removed", http.StatusOK)
}

// Plans

func (h *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.GetPlans(), http.StatusOK)
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var dto CreatePlanDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.service.CreatePlan(dto.toNew())
	if err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	logging.Ctx(r.Context()).Info().Str("plan_id", plan.ID).Msg("plan created")
	utils.SuccessResponse(w, plan, http.StatusCreated)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.service.GetPlan(mux.Vars(r)["id"])
	if !ok {
		utils.ErrorResponse(w, "Plan not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, plan, http.StatusOK)
}

func (h *Handler) UpdatePlanStatus(w http.ResponseWriter, r *http.Request) {
	var dto UpdatePlanStatusDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.service.TransitionPlan(mux.Vars(r)["id"], dto.Status)
	switch {
	case errors.Is(err, ErrPlanNotFound):
		utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition):
		utils.ErrorResponse(w, err.Error(), http.StatusConflict)
	case err != nil:
		utils.ErrorResponse(w, err.Error(), http.StatusInternalServerError)
	default:
		utils.SuccessResponse(w, plan, http.StatusOK)
	}
}
