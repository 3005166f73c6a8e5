package repository

import (
	"context"
	"fmt"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DateRange bounds an aggregation on created_at. Nil endpoints are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

type StatusCount struct {
	Status  string
	Count   int64
	Revenue float64
}

type LoungeAggregate struct {
	LoungeID   uuid.UUID
	LoungeName string
	Count      int64
	Revenue    float64
	AvgRating  float64
}

type MonthlyRevenue struct {
	Year    int
	Month   int
	Revenue float64
	Count   int64
}

type DailyAggregate struct {
	Day     string
	Count   int64
	Revenue float64
}

type RevenueSummary struct {
	Total   float64
	Count   int64
	Average float64
}

type CustomerAggregate struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Bookings int64
	Spent    float64
}

type RatingCount struct {
	Rating int
	Count  int64
}

type RatingAverages struct {
	Overall     float64
	Service     float64
	Cleanliness float64
	Total       int64
}

type AnalyticsRepository interface {
	CountLounges(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context, role entity.UserRole) (int64, error)
	CountUsersSince(ctx context.Context, role entity.UserRole, since time.Time) (int64, error)
	CountBookings(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountDistinctBookingUsers(ctx context.Context) (int64, error)

	BookingRevenue(ctx context.Context, rng DateRange) (*RevenueSummary, error)
	OrderRevenue(ctx context.Context, rng DateRange) (*RevenueSummary, error)
	AverageRating(ctx context.Context) (float64, error)

	BookingsByStatus(ctx context.Context, rng DateRange) ([]StatusCount, error)
	BookingsByLounge(ctx context.Context, rng DateRange) ([]LoungeAggregate, error)
	BookingsDailyTrend(ctx context.Context, rng DateRange) ([]DailyAggregate, error)
	PopularLounges(ctx context.Context, limit int) ([]LoungeAggregate, error)
	MonthlyBookingRevenue(ctx context.Context, since time.Time) ([]MonthlyRevenue, error)
	RecentBookings(ctx context.Context, limit int) ([]*entity.Booking, error)

	TopCustomers(ctx context.Context, limit int) ([]CustomerAggregate, error)

	RatingAverages(ctx context.Context) (*RatingAverages, error)
	RatingDistribution(ctx context.Context) ([]RatingCount, error)
	FeedbackByLounge(ctx context.Context) ([]LoungeAggregate, error)
	LowRatedFeedback(ctx context.Context, maxRating, limit int) ([]*entity.Feedback, error)
}

type analyticsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAnalyticsRepository(db database.PgxIface, log *zap.Logger) AnalyticsRepository {
	return &analyticsRepository{
		db:  db,
		log: log.With(zap.String("repository", "analytics")),
	}
}

// rangeClause appends created_at bounds to args and returns the SQL fragment.
func rangeClause(rng DateRange, args *[]any) string {
	clause := ""
	if rng.From != nil {
		*args = append(*args, *rng.From)
		clause += fmt.Sprintf(" AND created_at >= $%d", len(*args))
	}
	if rng.To != nil {
		*args = append(*args, *rng.To)
		clause += fmt.Sprintf(" AND created_at <= $%d", len(*args))
	}
	return clause
}

func (r *analyticsRepository) count(ctx context.Context, label, query string, args ...any) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count "+label, zap.Error(err))
		return 0, fmt.Errorf("count %s: %w", label, err)
	}
	return count, nil
}

func (r *analyticsRepository) CountLounges(ctx context.Context) (int64, error) {
	return r.count(ctx, "lounges", `SELECT COUNT(*) FROM lounges`)
}

func (r *analyticsRepository) CountUsers(ctx context.Context, role entity.UserRole) (int64, error) {
	if role == "" {
		return r.count(ctx, "users", `SELECT COUNT(*) FROM users`)
	}
	return r.count(ctx, "users", `SELECT COUNT(*) FROM users WHERE role = $1`, role)
}

func (r *analyticsRepository) CountUsersSince(ctx context.Context, role entity.UserRole, since time.Time) (int64, error) {
	return r.count(ctx, "new users", `SELECT COUNT(*) FROM users WHERE role = $1 AND created_at >= $2`, role, since)
}

func (r *analyticsRepository) CountBookings(ctx context.Context) (int64, error) {
	return r.count(ctx, "bookings", `SELECT COUNT(*) FROM bookings`)
}

func (r *analyticsRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, "orders", `SELECT COUNT(*) FROM orders`)
}

func (r *analyticsRepository) CountDistinctBookingUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "active customers", `SELECT COUNT(DISTINCT user_id) FROM bookings`)
}

func (r *analyticsRepository) BookingRevenue(ctx context.Context, rng DateRange) (*RevenueSummary, error) {
	args := []any{}
	query := `
		SELECT COALESCE(SUM(total_price), 0), COUNT(*), COALESCE(AVG(total_price), 0)
		FROM bookings
		WHERE status IN ('confirmed', 'completed')` + rangeClause(rng, &args)

	var summary RevenueSummary
	if err := r.db.QueryRow(ctx, query, args...).Scan(&summary.Total, &summary.Count, &summary.Average); err != nil {
		r.log.Error("Failed to sum booking revenue", zap.Error(err))
		return nil, fmt.Errorf("booking revenue: %w", err)
	}
	return &summary, nil
}

func (r *analyticsRepository) OrderRevenue(ctx context.Context, rng DateRange) (*RevenueSummary, error) {
	args := []any{}
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*), COALESCE(AVG(total_amount), 0)
		FROM orders
		WHERE status IN ('delivered', 'ready')` + rangeClause(rng, &args)

	var summary RevenueSummary
	if err := r.db.QueryRow(ctx, query, args...).Scan(&summary.Total, &summary.Count, &summary.Average); err != nil {
		r.log.Error("Failed to sum order revenue", zap.Error(err))
		return nil, fmt.Errorf("order revenue: %w", err)
	}
	return &summary, nil
}

func (r *analyticsRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg float64
	query := `SELECT COALESCE(AVG(rating), 0) FROM feedback`
	if err := r.db.QueryRow(ctx, query).Scan(&avg); err != nil {
		r.log.Error("Failed to average ratings", zap.Error(err))
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}

func (r *analyticsRepository) BookingsByStatus(ctx context.Context, rng DateRange) ([]StatusCount, error) {
	args := []any{}
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM bookings
		WHERE 1=1` + rangeClause(rng, &args) + `
		GROUP BY status
		ORDER BY status`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to group bookings by status", zap.Error(err))
		return nil, fmt.Errorf("bookings by status: %w", err)
	}
	defer rows.Close()

	var stats []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count, &sc.Revenue); err != nil {
			return nil, fmt.Errorf("scan booking status row: %w", err)
		}
		stats = append(stats, sc)
	}
	return stats, nil
}

func (r *analyticsRepository) BookingsByLounge(ctx context.Context, rng DateRange) ([]LoungeAggregate, error) {
	args := []any{}
	query := `
		SELECT b.lounge_id, l.name, COUNT(*), COALESCE(SUM(b.total_price), 0)
		FROM bookings b
		JOIN lounges l ON l.id = b.lounge_id
		WHERE 1=1` + rangeClauseAliased(rng, &args, "b") + `
		GROUP BY b.lounge_id, l.name
		ORDER BY COUNT(*) DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to group bookings by lounge", zap.Error(err))
		return nil, fmt.Errorf("bookings by lounge: %w", err)
	}
	defer rows.Close()

	var aggs []LoungeAggregate
	for rows.Next() {
		var agg LoungeAggregate
		if err := rows.Scan(&agg.LoungeID, &agg.LoungeName, &agg.Count, &agg.Revenue); err != nil {
			return nil, fmt.Errorf("scan lounge aggregate row: %w", err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, nil
}

func rangeClauseAliased(rng DateRange, args *[]any, alias string) string {
	clause := ""
	if rng.From != nil {
		*args = append(*args, *rng.From)
		clause += fmt.Sprintf(" AND %s.created_at >= $%d", alias, len(*args))
	}
	if rng.To != nil {
		*args = append(*args, *rng.To)
		clause += fmt.Sprintf(" AND %s.created_at <= $%d", alias, len(*args))
	}
	return clause
}

func (r *analyticsRepository) BookingsDailyTrend(ctx context.Context, rng DateRange) ([]DailyAggregate, error) {
	args := []any{}
	query := `
		SELECT TO_CHAR(created_at, 'YYYY-MM-DD'), COUNT(*), COALESCE(SUM(total_price), 0)
		FROM bookings
		WHERE 1=1` + rangeClause(rng, &args) + `
		GROUP BY 1
		ORDER BY 1`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to build daily booking trend", zap.Error(err))
		return nil, fmt.Errorf("daily booking trend: %w", err)
	}
	defer rows.Close()

	var trend []DailyAggregate
	for rows.Next() {
		var day DailyAggregate
		if err := rows.Scan(&day.Day, &day.Count, &day.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily trend row: %w", err)
		}
		trend = append(trend, day)
	}
	return trend, nil
}

func (r *analyticsRepository) PopularLounges(ctx context.Context, limit int) ([]LoungeAggregate, error) {
	query := `
		SELECT b.lounge_id, l.name, COUNT(*), COALESCE(SUM(b.total_price), 0)
		FROM bookings b
		JOIN lounges l ON l.id = b.lounge_id
		WHERE b.status IN ('confirmed', 'completed')
		GROUP BY b.lounge_id, l.name
		ORDER BY COUNT(*) DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to rank popular lounges", zap.Error(err))
		return nil, fmt.Errorf("popular lounges: %w", err)
	}
	defer rows.Close()

	var aggs []LoungeAggregate
	for rows.Next() {
		var agg LoungeAggregate
		if err := rows.Scan(&agg.LoungeID, &agg.LoungeName, &agg.Count, &agg.Revenue); err != nil {
			return nil, fmt.Errorf("scan popular lounge row: %w", err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, nil
}

func (r *analyticsRepository) MonthlyBookingRevenue(ctx context.Context, since time.Time) ([]MonthlyRevenue, error) {
	query := `
		SELECT EXTRACT(YEAR FROM created_at)::int, EXTRACT(MONTH FROM created_at)::int,
		       COALESCE(SUM(total_price), 0), COUNT(*)
		FROM bookings
		WHERE created_at >= $1 AND status IN ('confirmed', 'completed')
		GROUP BY 1, 2
		ORDER BY 1, 2`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		r.log.Error("Failed to build monthly revenue trend", zap.Error(err))
		return nil, fmt.Errorf("monthly booking revenue: %w", err)
	}
	defer rows.Close()

	var months []MonthlyRevenue
	for rows.Next() {
		var m MonthlyRevenue
		if err := rows.Scan(&m.Year, &m.Month, &m.Revenue, &m.Count); err != nil {
			return nil, fmt.Errorf("scan monthly revenue row: %w", err)
		}
		months = append(months, m)
	}
	return months, nil
}

func (r *analyticsRepository) RecentBookings(ctx context.Context, limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list recent bookings", zap.Error(err))
		return nil, fmt.Errorf("recent bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *analyticsRepository) TopCustomers(ctx context.Context, limit int) ([]CustomerAggregate, error) {
	query := `
		SELECT b.user_id, u.name, u.email, COUNT(*), COALESCE(SUM(b.total_price), 0)
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		GROUP BY b.user_id, u.name, u.email
		ORDER BY COUNT(*) DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to rank top customers", zap.Error(err))
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()

	var customers []CustomerAggregate
	for rows.Next() {
		var c CustomerAggregate
		if err := rows.Scan(&c.UserID, &c.Name, &c.Email, &c.Bookings, &c.Spent); err != nil {
			return nil, fmt.Errorf("scan top customer row: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *analyticsRepository) RatingAverages(ctx context.Context) (*RatingAverages, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0),
		       COALESCE(AVG(service_rating), 0),
		       COALESCE(AVG(cleanliness_rating), 0),
		       COUNT(*)
		FROM feedback`

	var avgs RatingAverages
	err := r.db.QueryRow(ctx, query).Scan(&avgs.Overall, &avgs.Service, &avgs.Cleanliness, &avgs.Total)
	if err != nil {
		r.log.Error("Failed to average feedback ratings", zap.Error(err))
		return nil, fmt.Errorf("rating averages: %w", err)
	}
	return &avgs, nil
}

func (r *analyticsRepository) RatingDistribution(ctx context.Context) ([]RatingCount, error) {
	query := `SELECT rating, COUNT(*) FROM feedback GROUP BY rating ORDER BY rating`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to build rating distribution", zap.Error(err))
		return nil, fmt.Errorf("rating distribution: %w", err)
	}
	defer rows.Close()

	var dist []RatingCount
	for rows.Next() {
		var rc RatingCount
		if err := rows.Scan(&rc.Rating, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan rating count row: %w", err)
		}
		dist = append(dist, rc)
	}
	return dist, nil
}

func (r *analyticsRepository) FeedbackByLounge(ctx context.Context) ([]LoungeAggregate, error) {
	query := `
		SELECT f.lounge_id, l.name, COUNT(*), COALESCE(AVG(f.rating), 0)
		FROM feedback f
		JOIN lounges l ON l.id = f.lounge_id
		GROUP BY f.lounge_id, l.name
		ORDER BY AVG(f.rating) DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to group feedback by lounge", zap.Error(err))
		return nil, fmt.Errorf("feedback by lounge: %w", err)
	}
	defer rows.Close()

	var aggs []LoungeAggregate
	for rows.Next() {
		var agg LoungeAggregate
		if err := rows.Scan(&agg.LoungeID, &agg.LoungeName, &agg.Count, &agg.AvgRating); err != nil {
			return nil, fmt.Errorf("scan feedback aggregate row: %w", err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, nil
}

func (r *analyticsRepository) LowRatedFeedback(ctx context.Context, maxRating, limit int) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE rating <= $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, maxRating, limit)
	if err != nil {
		r.log.Error("Failed to list low rated feedback", zap.Error(err))
		return nil, fmt.Errorf("low rated feedback: %w", err)
	}

	return collectFeedback(rows)
}
