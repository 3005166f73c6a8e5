package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/response"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	BookingAnalytics(ctx context.Context, from, to *time.Time) (*response.BookingAnalyticsResponse, error)
	RevenueAnalytics(ctx context.Context, year, month int) (*response.RevenueAnalyticsResponse, error)
	CustomerAnalytics(ctx context.Context) (*response.CustomerAnalyticsResponse, error)
	FeedbackAnalytics(ctx context.Context) (*response.FeedbackAnalyticsResponse, error)
	ExportBookings(ctx context.Context) ([]byte, error)
}

type analyticsService struct {
	analytics repository.AnalyticsRepository
	log       *zap.Logger
}

func NewAnalyticsService(analytics repository.AnalyticsRepository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		analytics: analytics,
		log:       log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalLounges, err := s.analytics.CountLounges(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.analytics.CountUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.analytics.CountBookings(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.analytics.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	bookingRevenue, err := s.analytics.BookingRevenue(ctx, repository.DateRange{})
	if err != nil {
		return nil, err
	}
	orderRevenue, err := s.analytics.OrderRevenue(ctx, repository.DateRange{})
	if err != nil {
		return nil, err
	}
	avgRating, err := s.analytics.AverageRating(ctx)
	if err != nil {
		return nil, err
	}

	bookingStats, err := s.analytics.BookingsByStatus(ctx, repository.DateRange{})
	if err != nil {
		return nil, err
	}
	popularLounges, err := s.analytics.PopularLounges(ctx, 5)
	if err != nil {
		return nil, err
	}
	monthlyRevenue, err := s.analytics.MonthlyBookingRevenue(ctx, time.Now().AddDate(0, -6, 0))
	if err != nil {
		return nil, err
	}
	recentBookings, err := s.analytics.RecentBookings(ctx, 10)
	if err != nil {
		return nil, err
	}

	recent := response.BookingsToResponse(recentBookings)

	return &response.DashboardResponse{
		Overview: response.DashboardOverview{
			TotalLounges:      totalLounges,
			TotalUsers:        totalUsers,
			TotalBookings:     totalBookings,
			TotalOrders:       totalOrders,
			TotalRevenue:      response.Round2(bookingRevenue.Total),
			TotalOrderRevenue: response.Round2(orderRevenue.Total),
			CombinedRevenue:   response.Round2(bookingRevenue.Total + orderRevenue.Total),
			AvgRating:         response.Round2(avgRating),
		},
		BookingStats:   response.StatusCountsToResponse(bookingStats),
		PopularLounges: response.LoungeAggregatesToResponse(popularLounges),
		MonthlyRevenue: response.MonthlyRevenueToResponse(monthlyRevenue),
		RecentBookings: recent.Bookings,
	}, nil
}

func (s *analyticsService) BookingAnalytics(ctx context.Context, from, to *time.Time) (*response.BookingAnalyticsResponse, error) {
	rng := repository.DateRange{From: from, To: to}

	byStatus, err := s.analytics.BookingsByStatus(ctx, rng)
	if err != nil {
		return nil, err
	}
	byLounge, err := s.analytics.BookingsByLounge(ctx, rng)
	if err != nil {
		return nil, err
	}
	dailyTrend, err := s.analytics.BookingsDailyTrend(ctx, rng)
	if err != nil {
		return nil, err
	}

	return &response.BookingAnalyticsResponse{
		ByStatus:   response.StatusCountsToResponse(byStatus),
		ByLounge:   response.LoungeAggregatesToResponse(byLounge),
		DailyTrend: response.DailyAggregatesToResponse(dailyTrend),
	}, nil
}

// RevenueAnalytics reports booking and order revenue, optionally narrowed to
// one calendar month. Both year and month must be given to narrow.
func (s *analyticsService) RevenueAnalytics(ctx context.Context, year, month int) (*response.RevenueAnalyticsResponse, error) {
	rng := repository.DateRange{}
	if year > 0 && month > 0 {
		if month > 12 {
			return nil, fmt.Errorf("%w: month must be 1-12", ErrInvalidInput)
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		rng.From = &start
		rng.To = &end
	}

	bookingRevenue, err := s.analytics.BookingRevenue(ctx, rng)
	if err != nil {
		return nil, err
	}
	orderRevenue, err := s.analytics.OrderRevenue(ctx, rng)
	if err != nil {
		return nil, err
	}

	return &response.RevenueAnalyticsResponse{
		BookingRevenue: response.RevenueSummaryToResponse(bookingRevenue),
		OrderRevenue:   response.RevenueSummaryToResponse(orderRevenue),
		CombinedTotal:  response.Round2(bookingRevenue.Total + orderRevenue.Total),
	}, nil
}

func (s *analyticsService) CustomerAnalytics(ctx context.Context) (*response.CustomerAnalyticsResponse, error) {
	totalCustomers, err := s.analytics.CountUsers(ctx, "customer")
	if err != nil {
		return nil, err
	}
	activeCustomers, err := s.analytics.CountDistinctBookingUsers(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newThisMonth, err := s.analytics.CountUsersSince(ctx, "customer", startOfMonth)
	if err != nil {
		return nil, err
	}

	topCustomers, err := s.analytics.TopCustomers(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &response.CustomerAnalyticsResponse{
		TotalCustomers:        totalCustomers,
		ActiveCustomers:       activeCustomers,
		NewCustomersThisMonth: newThisMonth,
		TopCustomers:          response.TopCustomersToResponse(topCustomers),
	}, nil
}

func (s *analyticsService) FeedbackAnalytics(ctx context.Context) (*response.FeedbackAnalyticsResponse, error) {
	averages, err := s.analytics.RatingAverages(ctx)
	if err != nil {
		return nil, err
	}
	distribution, err := s.analytics.RatingDistribution(ctx)
	if err != nil {
		return nil, err
	}
	byLounge, err := s.analytics.FeedbackByLounge(ctx)
	if err != nil {
		return nil, err
	}
	lowRatings, err := s.analytics.LowRatedFeedback(ctx, 3, 10)
	if err != nil {
		return nil, err
	}

	dist := make([]response.RatingCountResponse, len(distribution))
	for i, rc := range distribution {
		dist[i] = response.RatingCountResponse{Rating: rc.Rating, Count: rc.Count}
	}

	low := response.FeedbackEntriesToResponse(lowRatings)

	return &response.FeedbackAnalyticsResponse{
		AverageRatings: response.RatingAveragesResponse{
			AvgOverall:     response.Round2(averages.Overall),
			AvgService:     response.Round2(averages.Service),
			AvgCleanliness: response.Round2(averages.Cleanliness),
			Total:          averages.Total,
		},
		RatingDistribution: dist,
		ByLounge:           response.LoungeAggregatesToResponse(byLounge),
		LowRatings:         low.Entries,
	}, nil
}

// ExportBookings renders the full booking list as an xlsx workbook.
func (s *analyticsService) ExportBookings(ctx context.Context) ([]byte, error) {
	bookings, err := s.analytics.RecentBookings(ctx, 10000)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "User ID", "Lounge ID", "Start", "End", "Guests", "Total Price", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, booking := range bookings {
		values := []any{
			booking.ID.String(),
			booking.UserID.String(),
			booking.LoungeID.String(),
			booking.StartTime.Format(time.RFC3339),
			booking.EndTime.Format(time.RFC3339),
			booking.NumberOfGuests,
			booking.TotalPrice,
			string(booking.Status),
			booking.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.log.Info("Bookings exported", zap.Int("count", len(bookings)))
	return buf.Bytes(), nil
}
