package repository

import (
	"context"
	"testing"
	"time"

	"lounge-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBooking(loungeID uuid.UUID, start, end time.Time) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         uuid.New(),
		LoungeID:       loungeID,
		StartTime:      start,
		EndTime:        end,
		NumberOfGuests: 4,
		TotalPrice:     300,
		Status:         entity.BookingStatusPending,
	}
}

func bookingRows(bookings ...*entity.Booking) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "user_id", "lounge_id", "start_time", "end_time",
		"number_of_guests", "total_price", "status", "special_requests",
		"cancellation_reason", "confirmed_at", "cancelled_at", "created_at", "updated_at",
	})
	for _, b := range bookings {
		rows.AddRow(
			b.ID, b.UserID, b.LoungeID, b.StartTime, b.EndTime,
			b.NumberOfGuests, b.TotalPrice, b.Status, b.SpecialRequests,
			b.CancellationReason, b.ConfirmedAt, b.CancelledAt, b.CreatedAt, b.UpdatedAt,
		)
	}
	return rows
}

func TestBookingRepositoryCreateChecked(t *testing.T) {
	loungeID := uuid.New()
	start := time.Now().Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)

	t.Run("inserts when no overlap exists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		booking := newBooking(loungeID, start, end)

		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").
			WithArgs(loungeID.String()).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(loungeID, uuid.Nil, booking.StartTime, booking.EndTime).
			WillReturnRows(bookingRows())
		mock.ExpectExec("INSERT INTO bookings").
			WithArgs(
				booking.ID, booking.UserID, booking.LoungeID,
				booking.StartTime, booking.EndTime, booking.NumberOfGuests,
				booking.TotalPrice, booking.Status, booking.SpecialRequests,
				booking.CancellationReason, booking.ConfirmedAt, booking.CancelledAt,
				booking.CreatedAt, booking.UpdatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := NewBookingRepository(mock, zap.NewNop())
		err = repo.CreateChecked(context.Background(), booking)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns conflict when an overlapping booking exists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		existing := newBooking(loungeID, start.Add(-time.Hour), end.Add(-time.Hour))
		booking := newBooking(loungeID, start, end)

		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").
			WithArgs(loungeID.String()).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(loungeID, uuid.Nil, booking.StartTime, booking.EndTime).
			WillReturnRows(bookingRows(existing))
		mock.ExpectRollback()

		repo := NewBookingRepository(mock, zap.NewNop())
		err = repo.CreateChecked(context.Background(), booking)

		assert.ErrorIs(t, err, ErrBookingConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepositoryFindByID(t *testing.T) {
	t.Run("returns nil when no row matches", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(id).
			WillReturnRows(bookingRows())

		repo := NewBookingRepository(mock, zap.NewNop())
		booking, err := repo.FindByID(context.Background(), id)

		assert.NoError(t, err)
		assert.Nil(t, booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the matching booking", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		expected := newBooking(uuid.New(), time.Now(), time.Now().Add(time.Hour))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(expected.ID).
			WillReturnRows(bookingRows(expected))

		repo := NewBookingRepository(mock, zap.NewNop())
		booking, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, expected.ID, booking.ID)
		assert.Equal(t, expected.LoungeID, booking.LoungeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepositoryCountFutureActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	loungeID := uuid.New()
	after := time.Now()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(loungeID, after).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := NewBookingRepository(mock, zap.NewNop())
	count, err := repo.CountFutureActive(context.Background(), loungeID, after)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
