package repository

import (
	"context"

	"lounge-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// querier is the query subset of PgxIface satisfied by both the pool and a
// pgx.Tx, so the same scan helpers can run inside and outside transactions.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	User      UserRepository
	Lounge    LoungeRepository
	Menu      MenuRepository
	Booking   BookingRepository
	Order     OrderRepository
	Feedback  FeedbackRepository
	Analytics AnalyticsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Lounge:    NewLoungeRepository(db, log),
		Menu:      NewMenuRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Order:     NewOrderRepository(db, log),
		Feedback:  NewFeedbackRepository(db, log),
		Analytics: NewAnalyticsRepository(db, log),
	}
}
