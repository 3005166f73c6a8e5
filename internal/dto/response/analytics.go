package response

import "lounge-booking/internal/data/repository"

type DashboardOverview struct {
	TotalLounges      int64   `json:"total_lounges"`
	TotalUsers        int64   `json:"total_users"`
	TotalBookings     int64   `json:"total_bookings"`
	TotalOrders       int64   `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrderRevenue float64 `json:"total_order_revenue"`
	CombinedRevenue   float64 `json:"combined_revenue"`
	AvgRating         float64 `json:"avg_rating"`
}

type StatusCountResponse struct {
	Status  string  `json:"status"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type LoungeAggregateResponse struct {
	LoungeID   string  `json:"lounge_id"`
	LoungeName string  `json:"lounge_name"`
	Count      int64   `json:"count"`
	Revenue    float64 `json:"revenue,omitempty"`
	AvgRating  float64 `json:"avg_rating,omitempty"`
}

type MonthlyRevenueResponse struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

type DailyAggregateResponse struct {
	Day     string  `json:"day"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DashboardResponse struct {
	Overview       DashboardOverview         `json:"overview"`
	BookingStats   []StatusCountResponse     `json:"booking_stats"`
	PopularLounges []LoungeAggregateResponse `json:"popular_lounges"`
	MonthlyRevenue []MonthlyRevenueResponse  `json:"monthly_revenue"`
	RecentBookings []BookingResponse         `json:"recent_bookings"`
}

type BookingAnalyticsResponse struct {
	ByStatus   []StatusCountResponse     `json:"by_status"`
	ByLounge   []LoungeAggregateResponse `json:"by_lounge"`
	DailyTrend []DailyAggregateResponse  `json:"daily_trend"`
}

type RevenueSummaryResponse struct {
	Total   float64 `json:"total"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

type RevenueAnalyticsResponse struct {
	BookingRevenue RevenueSummaryResponse `json:"booking_revenue"`
	OrderRevenue   RevenueSummaryResponse `json:"order_revenue"`
	CombinedTotal  float64                `json:"combined_total"`
}

type TopCustomerResponse struct {
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Bookings int64   `json:"bookings"`
	Spent    float64 `json:"spent"`
}

type CustomerAnalyticsResponse struct {
	TotalCustomers        int64                 `json:"total_customers"`
	ActiveCustomers       int64                 `json:"active_customers"`
	NewCustomersThisMonth int64                 `json:"new_customers_this_month"`
	TopCustomers          []TopCustomerResponse `json:"top_customers"`
}

type RatingAveragesResponse struct {
	AvgOverall     float64 `json:"avg_overall"`
	AvgService     float64 `json:"avg_service"`
	AvgCleanliness float64 `json:"avg_cleanliness"`
	Total          int64   `json:"total"`
}

type RatingCountResponse struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type FeedbackAnalyticsResponse struct {
	AverageRatings     RatingAveragesResponse    `json:"average_ratings"`
	RatingDistribution []RatingCountResponse     `json:"rating_distribution"`
	ByLounge           []LoungeAggregateResponse `json:"by_lounge"`
	LowRatings         []FeedbackResponse        `json:"low_ratings"`
}

func StatusCountsToResponse(stats []repository.StatusCount) []StatusCountResponse {
	items := make([]StatusCountResponse, len(stats))
	for i, sc := range stats {
		items[i] = StatusCountResponse{
			Status:  sc.Status,
			Count:   sc.Count,
			Revenue: round2(sc.Revenue),
		}
	}
	return items
}

func LoungeAggregatesToResponse(aggs []repository.LoungeAggregate) []LoungeAggregateResponse {
	items := make([]LoungeAggregateResponse, len(aggs))
	for i, agg := range aggs {
		items[i] = LoungeAggregateResponse{
			LoungeID:   agg.LoungeID.String(),
			LoungeName: agg.LoungeName,
			Count:      agg.Count,
			Revenue:    round2(agg.Revenue),
			AvgRating:  round2(agg.AvgRating),
		}
	}
	return items
}

func MonthlyRevenueToResponse(months []repository.MonthlyRevenue) []MonthlyRevenueResponse {
	items := make([]MonthlyRevenueResponse, len(months))
	for i, m := range months {
		items[i] = MonthlyRevenueResponse{
			Year:    m.Year,
			Month:   m.Month,
			Revenue: round2(m.Revenue),
			Count:   m.Count,
		}
	}
	return items
}

func DailyAggregatesToResponse(days []repository.DailyAggregate) []DailyAggregateResponse {
	items := make([]DailyAggregateResponse, len(days))
	for i, d := range days {
		items[i] = DailyAggregateResponse{
			Day:     d.Day,
			Count:   d.Count,
			Revenue: round2(d.Revenue),
		}
	}
	return items
}

func RevenueSummaryToResponse(summary *repository.RevenueSummary) RevenueSummaryResponse {
	if summary == nil {
		return RevenueSummaryResponse{}
	}
	return RevenueSummaryResponse{
		Total:   round2(summary.Total),
		Count:   summary.Count,
		Average: round2(summary.Average),
	}
}

func TopCustomersToResponse(customers []repository.CustomerAggregate) []TopCustomerResponse {
	items := make([]TopCustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = TopCustomerResponse{
			UserID:   c.UserID.String(),
			Name:     c.Name,
			Email:    c.Email,
			Bookings: c.Bookings,
			Spent:    round2(c.Spent),
		}
	}
	return items
}
