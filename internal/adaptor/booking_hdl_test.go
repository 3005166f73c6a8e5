package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/dto/request"
	"lounge-booking/internal/dto/response"
	"lounge-booking/internal/usecase"
	"lounge-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingService struct {
	usecase.BookingService

	createFn       func(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	updateStatusFn func(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return f.createFn(ctx, userID, req)
}

func (f *fakeBookingService) UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	return f.updateStatusFn(ctx, userID, role, bookingID, req)
}

func authedRequest(method, target, body string, userID uuid.UUID, role string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := utils.SetUserContext(req.Context(), userID, role)
	return req.WithContext(ctx)
}

func createBookingBody(loungeID uuid.UUID) string {
	start := time.Now().Add(48 * time.Hour).UTC()
	end := start.Add(2 * time.Hour)
	return fmt.Sprintf(
		`{"lounge_id":%q,"start_time":%q,"end_time":%q,"number_of_guests":4}`,
		loungeID, start.Format(time.RFC3339), end.Format(time.RFC3339),
	)
}

func TestBookingHandlerCreate(t *testing.T) {
	userID := uuid.New()
	loungeID := uuid.New()

	svc := &fakeBookingService{
		createFn: func(ctx context.Context, gotUserID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
			assert.Equal(t, userID, gotUserID)
			return &response.BookingResponse{ID: uuid.New().String(), Status: "pending", TotalPrice: 300}, nil
		},
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	req := authedRequest(http.MethodPost, "/api/bookings", createBookingBody(loungeID), userID, "customer")
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
}

func TestBookingHandlerCreateConflict(t *testing.T) {
	svc := &fakeBookingService{
		createFn: func(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("%w: lounge is already booked for this time", usecase.ErrConflict)
		},
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	req := authedRequest(http.MethodPost, "/api/bookings", createBookingBody(uuid.New()), uuid.New(), "customer")
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingHandlerCreateValidation(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{}, zap.NewNop())

	// end_time before start_time trips the gtfield rule
	start := time.Now().Add(48 * time.Hour).UTC()
	body := fmt.Sprintf(
		`{"lounge_id":%q,"start_time":%q,"end_time":%q,"number_of_guests":4}`,
		uuid.New(), start.Format(time.RFC3339), start.Add(-time.Hour).Format(time.RFC3339),
	)

	req := authedRequest(http.MethodPost, "/api/bookings", body, uuid.New(), "customer")
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandlerCreateUnauthenticated(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(createBookingBody(uuid.New())))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandlerUpdateStatusForbidden(t *testing.T) {
	svc := &fakeBookingService{
		updateStatusFn: func(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("%w: customers can only cancel their own bookings", usecase.ErrForbidden)
		},
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	router := chi.NewRouter()
	router.Patch("/api/bookings/{id}/status", handler.UpdateStatus)

	target := fmt.Sprintf("/api/bookings/%s/status", uuid.New())
	req := authedRequest(http.MethodPatch, target, `{"status":"confirmed"}`, uuid.New(), "customer")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBookingHandlerUpdateStatusInvalidState(t *testing.T) {
	svc := &fakeBookingService{
		updateStatusFn: func(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("%w: cannot change status from cancelled to confirmed", usecase.ErrInvalidState)
		},
	}
	handler := NewBookingHandler(svc, zap.NewNop())

	router := chi.NewRouter()
	router.Patch("/api/bookings/{id}/status", handler.UpdateStatus)

	target := fmt.Sprintf("/api/bookings/%s/status", uuid.New())
	req := authedRequest(http.MethodPatch, target, `{"status":"confirmed"}`, uuid.New(), "admin")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
