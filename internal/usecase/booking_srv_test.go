package usecase

import (
	"context"
	"testing"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLoungeRepo struct {
	repository.LoungeRepository
	lounge *entity.Lounge
}

func (f *fakeLoungeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lounge, error) {
	if f.lounge != nil && f.lounge.ID == id {
		return f.lounge, nil
	}
	return nil, nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	booking   *entity.Booking
	createErr error
	created   *entity.Booking
	updated   *entity.Booking
}

func (f *fakeBookingRepo) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.booking != nil && f.booking.ID == id {
		return f.booking, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	f.updated = booking
	return nil
}

func testLounge(capacity int, pricePerHour float64) *entity.Lounge {
	return &entity.Lounge{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Skyline",
		Capacity:     capacity,
		PricePerHour: pricePerHour,
		Status:       entity.LoungeStatusAvailable,
	}
}

func newBookingService(lounge *entity.Lounge, bookings *fakeBookingRepo) BookingService {
	repo := &repository.Repository{
		Lounge:  &fakeLoungeRepo{lounge: lounge},
		Booking: bookings,
	}
	return NewBookingService(repo, zap.NewNop())
}

func TestBookingServiceCreateBooking(t *testing.T) {
	lounge := testLounge(8, 150)
	start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

	t.Run("creates pending booking with hourly price", func(t *testing.T) {
		bookings := &fakeBookingRepo{}
		svc := newBookingService(lounge, bookings)

		resp, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
			LoungeID:       lounge.ID.String(),
			StartTime:      start,
			EndTime:        start.Add(150 * time.Minute),
			NumberOfGuests: 4,
		})

		require.NoError(t, err)
		require.NotNil(t, bookings.created)
		assert.Equal(t, entity.BookingStatusPending, bookings.created.Status)
		assert.InDelta(t, 375.0, bookings.created.TotalPrice, 1e-9)
		assert.InDelta(t, 375.0, resp.TotalPrice, 1e-9)
	})

	t.Run("translates slot conflict", func(t *testing.T) {
		bookings := &fakeBookingRepo{createErr: repository.ErrBookingConflict}
		svc := newBookingService(lounge, bookings)

		_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
			LoungeID:       lounge.ID.String(),
			StartTime:      start,
			EndTime:        start.Add(time.Hour),
			NumberOfGuests: 2,
		})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("rejects guests over capacity", func(t *testing.T) {
		svc := newBookingService(lounge, &fakeBookingRepo{})

		_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
			LoungeID:       lounge.ID.String(),
			StartTime:      start,
			EndTime:        start.Add(time.Hour),
			NumberOfGuests: 9,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects start in the past", func(t *testing.T) {
		svc := newBookingService(lounge, &fakeBookingRepo{})

		past := time.Now().Add(-time.Hour)
		_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
			LoungeID:       lounge.ID.String(),
			StartTime:      past,
			EndTime:        past.Add(time.Hour),
			NumberOfGuests: 2,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects lounge under maintenance", func(t *testing.T) {
		closed := testLounge(8, 150)
		closed.Status = entity.LoungeStatusMaintenance
		svc := newBookingService(closed, &fakeBookingRepo{})

		_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
			LoungeID:       closed.ID.String(),
			StartTime:      start,
			EndTime:        start.Add(time.Hour),
			NumberOfGuests: 2,
		})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("rejects unknown lounge", func(t *testing.T) {
		svc := newBookingService(lounge, &fakeBookingRepo{})

		_, err := svc.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
			LoungeID:       uuid.New().String(),
			StartTime:      start,
			EndTime:        start.Add(time.Hour),
			NumberOfGuests: 2,
		})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBookingServiceUpdateStatus(t *testing.T) {
	owner := uuid.New()
	lounge := testLounge(8, 150)

	pendingBooking := func(start time.Time) *entity.Booking {
		return &entity.Booking{
			Base:     entity.Base{ID: uuid.New()},
			UserID:   owner,
			LoungeID: lounge.ID,
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
			Status:    entity.BookingStatusPending,
		}
	}

	t.Run("customer cancels own booking before cutoff", func(t *testing.T) {
		booking := pendingBooking(time.Now().Add(48 * time.Hour))
		bookings := &fakeBookingRepo{booking: booking}
		svc := newBookingService(lounge, bookings)

		reason := "change of plans"
		resp, err := svc.UpdateStatus(context.Background(), owner, entity.RoleCustomer, booking.ID.String(), &request.UpdateBookingStatusRequest{
			Status:             "cancelled",
			CancellationReason: &reason,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
		require.NotNil(t, bookings.updated)
		assert.NotNil(t, bookings.updated.CancelledAt)
		assert.Equal(t, &reason, bookings.updated.CancellationReason)
	})

	t.Run("customer cannot cancel inside 24 hours", func(t *testing.T) {
		booking := pendingBooking(time.Now().Add(12 * time.Hour))
		svc := newBookingService(lounge, &fakeBookingRepo{booking: booking})

		_, err := svc.UpdateStatus(context.Background(), owner, entity.RoleCustomer, booking.ID.String(), &request.UpdateBookingStatusRequest{
			Status: "cancelled",
		})

		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		booking := pendingBooking(time.Now().Add(48 * time.Hour))
		svc := newBookingService(lounge, &fakeBookingRepo{booking: booking})

		_, err := svc.UpdateStatus(context.Background(), owner, entity.RoleCustomer, booking.ID.String(), &request.UpdateBookingStatusRequest{
			Status: "confirmed",
		})

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("customer cannot touch another user's booking", func(t *testing.T) {
		booking := pendingBooking(time.Now().Add(48 * time.Hour))
		svc := newBookingService(lounge, &fakeBookingRepo{booking: booking})

		_, err := svc.UpdateStatus(context.Background(), uuid.New(), entity.RoleCustomer, booking.ID.String(), &request.UpdateBookingStatusRequest{
			Status: "cancelled",
		})

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin confirms pending booking", func(t *testing.T) {
		booking := pendingBooking(time.Now().Add(48 * time.Hour))
		bookings := &fakeBookingRepo{booking: booking}
		svc := newBookingService(lounge, bookings)

		resp, err := svc.UpdateStatus(context.Background(), uuid.New(), entity.RoleAdmin, booking.ID.String(), &request.UpdateBookingStatusRequest{
			Status: "confirmed",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
		assert.NotNil(t, bookings.updated.ConfirmedAt)
	})

	t.Run("admin cannot revive a cancelled booking", func(t *testing.T) {
		booking := pendingBooking(time.Now().Add(48 * time.Hour))
		booking.Status = entity.BookingStatusCancelled
		svc := newBookingService(lounge, &fakeBookingRepo{booking: booking})

		_, err := svc.UpdateStatus(context.Background(), uuid.New(), entity.RoleAdmin, booking.ID.String(), &request.UpdateBookingStatusRequest{
			Status: "confirmed",
		})

		assert.ErrorIs(t, err, ErrInvalidState)
	})
}
