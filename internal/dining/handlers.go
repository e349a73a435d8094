package dining

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/twogether-backend/internal/common/utils"
	"github.com/imadgeboyega/twogether-backend/internal/logging"
)

const dateLayout = "2006-01-02"

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

	restaurants := h.service.GetRecommendations(dto.User, dto.Partner, dto.UserLocation, dto.Context)
	logging.Ctx(r.Context()).Debug().Int("count", len(restaurants)).Msg("restaurant recommendations served")

	utils.SuccessResponse(w, restaurants, http.StatusOK)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.service.Search(r.URL.Query().Get("q")), http.StatusOK)
}

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.service.GetRestaurant(mux.Vars(r)["id"])
	if !ok {
		utils.ErrorResponse(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	utils.SuccessResponse(w, restaurant, http.StatusOK)
}

func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.service.GetRestaurant(id); !ok {
		utils.ErrorResponse(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	var dto MenuRequestDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.SuccessResponse(w, h.service.GetMenuRecommendations(id, dto.User, dto.Partner), http.StatusOK)
}

// GetReservations expects ?date=YYYY-MM-DD&party_size=N
func (h *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(dateLayout, query.Get("date"))
	if err != nil {
		utils.ErrorResponse(w, "date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	partySize := 1
	if raw := query.Get("party_size"); raw != "" {
		partySize, err = strconv.Atoi(raw)
		if err != nil || partySize < 1 {
			utils.ErrorResponse(w, "party_size must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	utils.SuccessResponse(w, h.service.GetAvailableReservations(mux.Vars(r)["id"], date, partySize), http.StatusOK)
}

func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var dto ReservationRequestDTO
	if err := utils.DecodeJSON(r, &dto); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	slot, err := h.service.Reserve(vars["id"], vars["slotId"], dto.PartySize)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).
			Str("restaurant_id", vars["id"]).
			Str("slot_id", vars["slotId"]).
			Msg("reservation rejected")

		switch {
		case errors.Is(err, ErrRestaurantNotFound), errors.Is(err, ErrSlotNotFound):
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrSlotUnavailable):
			utils.ErrorResponse(w, err.Error(), http.StatusConflict)
		default:
			utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("restaurant_id", vars["id"]).
		Str("slot_id", slot.ID).
		Int("party_size", slot.PartySize).
		Msg("reservation booked")

	utils.SuccessResponse(w, slot, http.StatusCreated)
}
