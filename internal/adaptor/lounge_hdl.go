package adaptor

import (
	"encoding/json"
	"net/http"

	"lounge-booking/internal/dto/request"
	"lounge-booking/internal/usecase"
	"lounge-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LoungeHandler struct {
	service usecase.LoungeService
	log     *zap.Logger
}

func NewLoungeHandler(service usecase.LoungeService, log *zap.Logger) *LoungeHandler {
	return &LoungeHandler{
		service: service,
		log:     log.With(zap.String("handler", "lounge")),
	}
}

// ListLounges handles GET /api/lounges (public)
func (h *LoungeHandler) ListLounges(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lounges, err := h.service.ListLounges(r.Context(), &request.LoungeListQuery{
		Status:      query.Get("status"),
		MinCapacity: utils.ParseInt(query.Get("min_capacity"), 0),
		MaxPrice:    utils.ParseFloat(query.Get("max_price"), 0),
		Sort:        query.Get("sort"),
	})
	if err != nil {
		respondError(h.log, w, err, "list lounges")
		return
	}

	utils.ResponseSuccess(w, "success", lounges)
}

// GetLounge handles GET /api/lounges/{id} (public)
func (h *LoungeHandler) GetLounge(w http.ResponseWriter, r *http.Request) {
	loungeID := chi.URLParam(r, "id")
	if loungeID == "" {
		utils.ResponseBadRequest(w, "Lounge ID is required", nil)
		return
	}

	lounge, err := h.service.GetLounge(r.Context(), loungeID)
	if err != nil {
		respondError(h.log, w, err, "get lounge")
		return
	}

	utils.ResponseSuccess(w, "success", lounge)
}

// CheckAvailability handles POST /api/lounges/{id}/check-availability (public)
func (h *LoungeHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	loungeID := chi.URLParam(r, "id")
	if loungeID == "" {
		utils.ResponseBadRequest(w, "Lounge ID is required", nil)
		return
	}

	var req request.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), loungeID, req.StartTime, req.EndTime)
	if err != nil {
		respondError(h.log, w, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// CreateLounge handles POST /api/lounges (admin only)
func (h *LoungeHandler) CreateLounge(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLoungeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	lounge, err := h.service.CreateLounge(r.Context(), &req)
	if err != nil {
		respondError(h.log, w, err, "create lounge")
		return
	}

	utils.ResponseCreated(w, "success", lounge)
}

// UpdateLounge handles PUT /api/lounges/{id} (admin only)
func (h *LoungeHandler) UpdateLounge(w http.ResponseWriter, r *http.Request) {
	loungeID := chi.URLParam(r, "id")
	if loungeID == "" {
		utils.ResponseBadRequest(w, "Lounge ID is required", nil)
		return
	}

	var req request.UpdateLoungeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	lounge, err := h.service.UpdateLounge(r.Context(), loungeID, &req)
	if err != nil {
		respondError(h.log, w, err, "update lounge")
		return
	}

	utils.ResponseSuccess(w, "success", lounge)
}

// DeleteLounge handles DELETE /api/lounges/{id} (admin only)
func (h *LoungeHandler) DeleteLounge(w http.ResponseWriter, r *http.Request) {
	loungeID := chi.URLParam(r, "id")
	if loungeID == "" {
		utils.ResponseBadRequest(w, "Lounge ID is required", nil)
		return
	}

	if err := h.service.DeleteLounge(r.Context(), loungeID); err != nil {
		respondError(h.log, w, err, "delete lounge")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
