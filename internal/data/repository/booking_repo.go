package repository

import (
	"context"
	"fmt"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows the admin booking listing. Zero values mean no
// filtering on that field.
type BookingFilter struct {
	Status   entity.BookingStatus
	LoungeID uuid.UUID
	Day      *time.Time // matches bookings starting on this calendar day
}

type BookingRepository interface {
	// CreateChecked inserts the booking after verifying no pending or
	// confirmed booking overlaps its interval. The check and insert run in
	// one transaction holding a per-lounge advisory lock, so two concurrent
	// requests for the same lounge serialize instead of double-booking.
	// Returns ErrBookingConflict when an overlap exists.
	CreateChecked(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus, upcoming bool) ([]*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	FindOverlapping(ctx context.Context, loungeID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*entity.Booking, error)
	CountFutureActive(ctx context.Context, loungeID uuid.UUID, after time.Time) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, lounge_id, start_time, end_time, number_of_guests, total_price, status, special_requests, cancellation_reason, confirmed_at, cancelled_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.LoungeID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.NumberOfGuests,
		&booking.TotalPrice,
		&booking.Status,
		&booking.SpecialRequests,
		&booking.CancellationReason,
		&booking.ConfirmedAt,
		&booking.CancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// findOverlapping runs the half-open interval overlap query against q, which
// may be the pool or an open transaction. Two intervals [s1,e1) and [s2,e2)
// overlap iff s1 < e2 AND s2 < e1.
func (r *bookingRepository) findOverlapping(ctx context.Context, q querier, loungeID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE lounge_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND id <> $2
		  AND start_time < $4
		  AND $3 < end_time
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, loungeID, excludeID, start, end)
	if err != nil {
		r.log.Error("Failed to find overlapping bookings",
			zap.Error(err),
			zap.String("lounge_id", loungeID.String()),
		)
		return nil, fmt.Errorf("find overlapping bookings for lounge %s: %w", loungeID.String(), err)
	}

	return collectBookings(rows)
}

func insertBooking(ctx context.Context, q querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, lounge_id, start_time, end_time, number_of_guests, total_price, status, special_requests, cancellation_reason, confirmed_at, cancelled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.LoungeID,
		booking.StartTime,
		booking.EndTime,
		booking.NumberOfGuests,
		booking.TotalPrice,
		booking.Status,
		booking.SpecialRequests,
		booking.CancellationReason,
		booking.ConfirmedAt,
		booking.CancelledAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	return err
}

func (r *bookingRepository) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize conflict-check-then-insert per lounge. The lock is released
	// automatically at commit/rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, booking.LoungeID.String()); err != nil {
		r.log.Error("Failed to take lounge advisory lock",
			zap.Error(err),
			zap.String("lounge_id", booking.LoungeID.String()),
		)
		return fmt.Errorf("lock lounge %s: %w", booking.LoungeID.String(), err)
	}

	conflicts, err := r.findOverlapping(ctx, tx, booking.LoungeID, booking.StartTime, booking.EndTime, uuid.Nil)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("lounge %s has %d overlapping booking(s): %w",
			booking.LoungeID.String(), len(conflicts), ErrBookingConflict)
	}

	if err := insertBooking(ctx, tx, booking); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("lounge_id", booking.LoungeID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus, upcoming bool) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1`
	args := []any{userID}

	if upcoming {
		query += ` AND start_time >= NOW() AND status IN ('pending', 'confirmed')`
	} else if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY start_time DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.LoungeID != uuid.Nil {
		args = append(args, filter.LoungeID)
		query += fmt.Sprintf(" AND lounge_id = $%d", len(args))
	}
	if filter.Day != nil {
		dayStart := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		args = append(args, dayStart)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
		args = append(args, dayStart.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND start_time < $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, loungeID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*entity.Booking, error) {
	return r.findOverlapping(ctx, r.db, loungeID, start, end, excludeID)
}

func (r *bookingRepository) CountFutureActive(ctx context.Context, loungeID uuid.UUID, after time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE lounge_id = $1 AND start_time >= $2 AND status IN ('pending', 'confirmed')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, loungeID, after).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count future active bookings",
			zap.Error(err),
			zap.String("lounge_id", loungeID.String()),
		)
		return 0, fmt.Errorf("count future active bookings for lounge %s: %w", loungeID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, special_requests = $3, cancellation_reason = $4,
		    confirmed_at = $5, cancelled_at = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.SpecialRequests,
		booking.CancellationReason,
		booking.ConfirmedAt,
		booking.CancelledAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
