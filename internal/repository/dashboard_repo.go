package repository

import (
	"time"

	"go-pos-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats is the overview block shown on the dashboard.
type DashboardStats struct {
	TotalProducts  int64 `json:"total_products"`
	TotalCustomers int64 `json:"total_customers"`
	TotalSuppliers int64 `json:"total_suppliers"`
	TotalSales     int64 `json:"total_sales"`
	LowStockCount  int64 `json:"low_stock_count"`
}

// RevenueSummary aggregates sale amounts over a date range.
type RevenueSummary struct {
	SaleTotal    decimal.Decimal `json:"sale_total"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	BalanceTotal decimal.Decimal `json:"balance_total"`
	SaleCount    int64           `json:"sale_count"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
	GetRevenueSummary(startDate, endDate time.Time) (*RevenueSummary, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Supplier{}).Count(&stats.TotalSuppliers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).Where("stock_qty < alert_qty").Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *dashboardRepo) GetRevenueSummary(startDate, endDate time.Time) (*RevenueSummary, error) {
	var summary RevenueSummary

	err := r.db.Model(&model.Sale{}).
		Select(`
			COALESCE(SUM(sale_amount), 0) as sale_total,
			COALESCE(SUM(paid_amount), 0) as paid_total,
			COALESCE(SUM(balance_amount), 0) as balance_total,
			COUNT(*) as sale_count
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
