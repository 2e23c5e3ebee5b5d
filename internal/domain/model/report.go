package model

// DailyStat aggregates orders created on a single day (YYYY-MM-DD).
type DailyStat struct {
	Day     string
	Orders  int
	Revenue float64
}

// DashboardStats summarizes order history for the admin dashboard.
type DashboardStats struct {
	TotalOrders   int
	TotalRevenue  float64
	AverageTicket float64
	ByStatus      map[OrderStatus]int
	Daily         []DailyStat
}

// ProfitPoint is one day of the profit time series.
type ProfitPoint struct {
	Day     string
	Revenue float64
	Cost    float64
	Profit  float64
}

// ProfitReport aggregates revenue, cost and margin over non-cancelled orders.
type ProfitReport struct {
	Revenue float64
	Cost    float64
	Profit  float64
	Margin  float64
	Daily   []ProfitPoint
}
