package dto

import "github.com/vitrinepdv/vitrine/internal/domain/model"

// DailyStatResponse is one day of the dashboard time series.
type DailyStatResponse struct {
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DashboardResponse summarizes order history for the admin dashboard.
type DashboardResponse struct {
	TotalOrders   int                 `json:"total_orders"`
	TotalRevenue  float64             `json:"total_revenue"`
	AverageTicket float64             `json:"average_ticket"`
	ByStatus      map[string]int      `json:"by_status"`
	Daily         []DailyStatResponse `json:"daily"`
}

// FromDashboard maps dashboard stats onto their response shape.
func FromDashboard(stats *model.DashboardStats) DashboardResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	daily := make([]DailyStatResponse, 0, len(stats.Daily))
	for _, stat := range stats.Daily {
		daily = append(daily, DailyStatResponse(stat))
	}
	return DashboardResponse{
		TotalOrders:   stats.TotalOrders,
		TotalRevenue:  stats.TotalRevenue,
		AverageTicket: stats.AverageTicket,
		ByStatus:      byStatus,
		Daily:         daily,
	}
}

// ProfitPointResponse is one day of the profit time series.
type ProfitPointResponse struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// ProfitResponse aggregates revenue, cost and margin over the period.
type ProfitResponse struct {
	Revenue float64               `json:"revenue"`
	Cost    float64               `json:"cost"`
	Profit  float64               `json:"profit"`
	Margin  float64               `json:"margin"`
	Daily   []ProfitPointResponse `json:"daily"`
}

// FromProfit maps the profit report onto its response shape.
func FromProfit(report *model.ProfitReport) ProfitResponse {
	daily := make([]ProfitPointResponse, 0, len(report.Daily))
	for _, point := range report.Daily {
		daily = append(daily, ProfitPointResponse(point))
	}
	return ProfitResponse{
		Revenue: report.Revenue,
		Cost:    report.Cost,
		Profit:  report.Profit,
		Margin:  report.Margin,
		Daily:   daily,
	}
}
