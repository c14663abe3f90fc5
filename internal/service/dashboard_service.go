package service

import (
	"time"

	"go-pos-api/internal/repository"
)

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
	GetRevenueSummary(days int) (*repository.RevenueSummary, error)
}

type dashboardService struct {
	dashRepo repository.DashboardRepository
}

func NewDashboardService(dashRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashRepo: dashRepo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.dashRepo.GetStats()
}

func (s *dashboardService) GetRevenueSummary(days int) (*repository.RevenueSummary, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.dashRepo.GetRevenueSummary(startDate, endDate)
}
