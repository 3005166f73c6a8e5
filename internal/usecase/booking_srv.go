package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/request"
	"lounge-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID uuid.UUID, status string, upcoming bool) (*response.BookingListResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)

	// Admin endpoints
	ListBookings(ctx context.Context, status, loungeID string, day *time.Time) (*response.BookingListResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	loungeID, err := uuid.Parse(req.LoungeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}

	if !req.StartTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: start_time must be in the future", ErrInvalidInput)
	}

	lounge, err := s.repo.Lounge.FindByID(ctx, loungeID)
	if err != nil {
		s.log.Error("Failed to find lounge", zap.Error(err), zap.String("lounge_id", req.LoungeID))
		return nil, fmt.Errorf("find lounge: %w", err)
	}
	if lounge == nil {
		return nil, fmt.Errorf("%w: lounge %s", ErrNotFound, req.LoungeID)
	}

	if !lounge.IsBookable() {
		return nil, fmt.Errorf("%w: lounge is %s", ErrConflict, lounge.Status)
	}

	if req.NumberOfGuests > lounge.Capacity {
		return nil, fmt.Errorf("%w: %d guests exceed lounge capacity of %d",
			ErrInvalidInput, req.NumberOfGuests, lounge.Capacity)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		LoungeID:        loungeID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      entity.PriceBooking(lounge, req.StartTime, req.EndTime),
		Status:          entity.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.repo.Booking.CreateChecked(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			s.log.Warn("Booking slot conflict",
				zap.String("lounge_id", req.LoungeID),
				zap.Time("start_time", req.StartTime),
				zap.Time("end_time", req.EndTime),
			)
			return nil, fmt.Errorf("%w: time slot is already booked", ErrConflict)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("lounge_id", req.LoungeID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("lounge_id", req.LoungeID),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, userID uuid.UUID, status string, upcoming bool) (*response.BookingListResponse, error) {
	if status != "" && !entity.BookingStatus(status).Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %s", ErrInvalidInput, status)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, entity.BookingStatus(status), upcoming)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	resp := response.BookingsToResponse(bookings)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID && role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// UpdateStatus applies a status transition. Admins may perform any allowed
// transition. Customers may only cancel their own bookings, and only up to
// 24 hours before the start time.
func (s *bookingService) UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	next := entity.BookingStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %s", ErrInvalidInput, req.Status)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if role != entity.RoleAdmin {
		if booking.UserID != userID {
			return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}
		if next != entity.BookingStatusCancelled {
			return nil, fmt.Errorf("%w: only cancellation is allowed", ErrForbidden)
		}
		if !booking.CanBeCancelled(time.Now()) {
			return nil, fmt.Errorf("%w: bookings can only be cancelled at least 24 hours before start", ErrInvalidState)
		}
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s", ErrInvalidState, booking.Status, next)
	}

	booking.ApplyStatus(next, time.Now())
	if next == entity.BookingStatusCancelled && req.CancellationReason != nil {
		booking.CancellationReason = req.CancellationReason
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(next)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status, loungeID string, day *time.Time) (*response.BookingListResponse, error) {
	if status != "" && !entity.BookingStatus(status).Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %s", ErrInvalidInput, status)
	}

	filter := repository.BookingFilter{
		Status: entity.BookingStatus(status),
		Day:    day,
	}
	if loungeID != "" {
		id, err := uuid.Parse(loungeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
		}
		filter.LoungeID = id
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	resp := response.BookingsToResponse(bookings)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking: %w", err)
	}

	s.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format", ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	return booking, nil
}
