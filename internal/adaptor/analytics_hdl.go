package adaptor

import (
	"fmt"
	"net/http"
	"time"

	"lounge-booking/internal/usecase"
	"lounge-booking/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

// Dashboard handles GET /api/analytics/dashboard (admin only)
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		respondError(h.log, w, err, "dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// Bookings handles GET /api/analytics/bookings (admin only)
func (h *AnalyticsHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var from, to *time.Time
	if v := query.Get("start_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid start_date, expected YYYY-MM-DD", nil)
			return
		}
		from = &parsed
	}
	if v := query.Get("end_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid end_date, expected YYYY-MM-DD", nil)
			return
		}
		// Include the whole end day.
		parsed = parsed.AddDate(0, 0, 1)
		to = &parsed
	}

	analytics, err := h.service.BookingAnalytics(r.Context(), from, to)
	if err != nil {
		respondError(h.log, w, err, "booking analytics")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}

// Revenue handles GET /api/analytics/revenue (admin only)
func (h *AnalyticsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	now := time.Now()

	year := utils.ParseInt(query.Get("year"), now.Year())
	month := utils.ParseInt(query.Get("month"), int(now.Month()))
	if month < 1 || month > 12 {
		utils.ResponseBadRequest(w, "Invalid month, expected 1-12", nil)
		return
	}

	analytics, err := h.service.RevenueAnalytics(r.Context(), year, month)
	if err != nil {
		respondError(h.log, w, err, "revenue analytics")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}

// Customers handles GET /api/analytics/customers (admin only)
func (h *AnalyticsHandler) Customers(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.CustomerAnalytics(r.Context())
	if err != nil {
		respondError(h.log, w, err, "customer analytics")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}

// Feedback handles GET /api/analytics/feedback (admin only)
func (h *AnalyticsHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.FeedbackAnalytics(r.Context())
	if err != nil {
		respondError(h.log, w, err, "feedback analytics")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}

// ExportBookings handles GET /api/analytics/export (admin only)
func (h *AnalyticsHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportBookings(r.Context())
	if err != nil {
		respondError(h.log, w, err, "export bookings")
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error("failed to write export", zap.Error(err))
	}
}
