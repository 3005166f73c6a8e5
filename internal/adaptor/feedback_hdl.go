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

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// CreateFeedback handles POST /api/feedback (protected)
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	feedback, err := h.service.CreateFeedback(r.Context(), userID, &req)
	if err != nil {
		respondError(h.log, w, err, "create feedback")
		return
	}

	utils.ResponseCreated(w, "success", feedback)
}

// GetMyFeedback handles GET /api/feedback/my-feedback (protected)
func (h *FeedbackHandler) GetMyFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	feedback, err := h.service.GetMyFeedback(r.Context(), userID)
	if err != nil {
		respondError(h.log, w, err, "get user feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// GetLoungeFeedback handles GET /api/feedback/lounge/{id} (public)
func (h *FeedbackHandler) GetLoungeFeedback(w http.ResponseWriter, r *http.Request) {
	loungeID := chi.URLParam(r, "id")
	if loungeID == "" {
		utils.ResponseBadRequest(w, "Lounge ID is required", nil)
		return
	}

	feedback, err := h.service.GetLoungeFeedback(r.Context(), loungeID)
	if err != nil {
		respondError(h.log, w, err, "get lounge feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// ListFeedback handles GET /api/feedback (staff and admin)
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var hasResponse *bool
	if v := query.Get("has_response"); v != "" {
		b := v == "true"
		hasResponse = &b
	}

	feedback, err := h.service.ListFeedback(r.Context(), utils.ParseInt(query.Get("rating"), 0), hasResponse)
	if err != nil {
		respondError(h.log, w, err, "list feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// RespondFeedback handles PATCH /api/feedback/{id}/respond (staff and admin)
func (h *FeedbackHandler) RespondFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID := chi.URLParam(r, "id")
	if feedbackID == "" {
		utils.ResponseBadRequest(w, "Feedback ID is required", nil)
		return
	}

	var req request.RespondFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	feedback, err := h.service.RespondFeedback(r.Context(), feedbackID, &req)
	if err != nil {
		respondError(h.log, w, err, "respond to feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// DeleteFeedback handles DELETE /api/feedback/{id} (admin only)
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	feedbackID := chi.URLParam(r, "id")
	if feedbackID == "" {
		utils.ResponseBadRequest(w, "Feedback ID is required", nil)
		return
	}

	if err := h.service.DeleteFeedback(r.Context(), userID, role, feedbackID); err != nil {
		respondError(h.log, w, err, "delete feedback")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
