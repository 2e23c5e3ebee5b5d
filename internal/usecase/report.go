package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
)

// DefaultCostRatio estimates item cost as a share of its sale price when the
// catalog entry carries no cost price.
const DefaultCostRatio = 0.5

// ReportUseCase aggregates order history into dashboard and profit reports.
type ReportUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(orders repository.OrderRepository, products repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders, products: products}
}

// Dashboard summarizes orders in the period. Revenue counts only orders
// whose payment settled; cancelled and refunded orders appear in the status
// breakdown but contribute nothing to revenue.
func (u *ReportUseCase) Dashboard(ctx context.Context, from, to *time.Time) (*model.DashboardStats, error) {
	orders, err := u.orders.List(ctx, repository.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{ByStatus: make(map[model.OrderStatus]int)}
	daily := make(map[string]*model.DailyStat)

	for i := range orders {
		order := &orders[i]
		stats.TotalOrders++
		stats.ByStatus[order.Status]++

		if !countsAsRevenue(order) {
			continue
		}
		stats.TotalRevenue += order.Total

		day := order.CreatedAt.Format("2006-01-02")
		stat, ok := daily[day]
		if !ok {
			stat = &model.DailyStat{Day: day}
			daily[day] = stat
		}
		stat.Orders++
		stat.Revenue += order.Total
	}

	if settled := settledCount(stats); settled > 0 {
		stats.AverageTicket = stats.TotalRevenue / float64(settled)
	}

	stats.Daily = make([]model.DailyStat, 0, len(daily))
	for _, stat := range daily {
		stats.Daily = append(stats.Daily, *stat)
	}
	sort.Slice(stats.Daily, func(i, j int) bool { return stats.Daily[i].Day < stats.Daily[j].Day })

	return stats, nil
}

// Profit computes revenue, cost and margin over settled orders in the
// period. Item cost comes from the catalog cost price, falling back to
// DefaultCostRatio of the snapshot unit price.
func (u *ReportUseCase) Profit(ctx context.Context, from, to *time.Time) (*model.ProfitReport, error) {
	orders, err := u.orders.List(ctx, repository.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	costs, err := u.costIndex(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.ProfitReport{}
	daily := make(map[string]*model.ProfitPoint)

	for i := range orders {
		order := &orders[i]
		if !countsAsRevenue(order) {
			continue
		}

		var cost float64
		for _, item := range order.Items {
			unitCost, ok := costs[item.ProductID]
			if !ok {
				unitCost = item.UnitPrice() * DefaultCostRatio
			}
			cost += unitCost * float64(item.Quantity)
		}

		report.Revenue += order.Total
		report.Cost += cost

		day := order.CreatedAt.Format("2006-01-02")
		point, ok := daily[day]
		if !ok {
			point = &model.ProfitPoint{Day: day}
			daily[day] = point
		}
		point.Revenue += order.Total
		point.Cost += cost
		point.Profit = point.Revenue - point.Cost
	}

	report.Profit = report.Revenue - report.Cost
	if report.Revenue > 0 {
		report.Margin = report.Profit / report.Revenue
	}

	report.Daily = make([]model.ProfitPoint, 0, len(daily))
	for _, point := range daily {
		report.Daily = append(report.Daily, *point)
	}
	sort.Slice(report.Daily, func(i, j int) bool { return report.Daily[i].Day < report.Daily[j].Day })

	return report, nil
}

func (u *ReportUseCase) costIndex(ctx context.Context) (map[string]float64, error) {
	products, err := u.products.List(ctx, false)
	if err != nil {
		return nil, err
	}
	costs := make(map[string]float64, len(products))
	for _, product := range products {
		if product.CostPrice != nil {
			costs[product.ID] = *product.CostPrice
		}
	}
	return costs, nil
}

func countsAsRevenue(order *model.Order) bool {
	switch order.Status {
	case model.OrderStatusCancelled, model.OrderStatusRefunded:
		return false
	}
	return order.PaymentStatus.Settled()
}

func settledCount(stats *model.DashboardStats) int {
	return stats.ByStatus[model.OrderStatusPaid] +
		stats.ByStatus[model.OrderStatusShipped] +
		stats.ByStatus[model.OrderStatusDelivered]
}
