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

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// ListItems handles GET /api/menu (public)
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var available *bool
	if v := query.Get("available"); v != "" {
		b := v == "true"
		available = &b
	}

	items, err := h.service.ListItems(r.Context(), query.Get("category"), available)
	if err != nil {
		respondError(h.log, w, err, "list menu items")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// GetItem handles GET /api/menu/{id} (public)
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Menu item ID is required", nil)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		respondError(h.log, w, err, "get menu item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// CreateItem handles POST /api/menu (admin only)
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		respondError(h.log, w, err, "create menu item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// UpdateItem handles PUT /api/menu/{id} (admin only)
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Menu item ID is required", nil)
		return
	}

	var req request.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		respondError(h.log, w, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// DeleteItem handles DELETE /api/menu/{id} (admin only)
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Menu item ID is required", nil)
		return
	}

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		respondError(h.log, w, err, "delete menu item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
