package services

import (
	"context"

	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/app/repositories"
)

// DashboardStore is the aggregate access the dashboard service needs.
type DashboardStore interface {
	CountUsers(ctx context.Context) (int, error)
	CountStudents(ctx context.Context) (int, error)
	CountPrograms(ctx context.Context) (int, error)
	RoleDistribution(ctx context.Context) ([]repositories.RoleTally, error)
	AverageRating(ctx context.Context) (float64, error)
	MonthlyFeedbackCounts(ctx context.Context, year int) ([]repositories.MonthTally, error)
	StudentsPerYear(ctx context.Context) ([]repositories.YearTally, error)
}

// DashboardService assembles the admin overview.
type DashboardService struct {
	store DashboardStore
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Overview computes the dashboard aggregates. The monthly chart covers the
// given year and omits months with no feedback rather than zero-filling.
func (s *DashboardService) Overview(ctx context.Context, year int) (*dto.AdminOverview, error) {
	totalUsers, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalStudents, err := s.store.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	totalPrograms, err := s.store.CountPrograms(ctx)
	if err != nil {
		return nil, err
	}
	averageRating, err := s.store.AverageRating(ctx)
	if err != nil {
		return nil, err
	}

	roleTallies, err := s.store.RoleDistribution(ctx)
	if err != nil {
		return nil, err
	}
	roleDistribution := make([]dto.RoleCount, 0, len(roleTallies))
	for _, t := range roleTallies {
		roleDistribution = append(roleDistribution, dto.RoleCount{Role: t.Role, Value: t.Count})
	}

	monthTallies, err := s.store.MonthlyFeedbackCounts(ctx, year)
	if err != nil {
		return nil, err
	}
	monthlyFeedbacks := make([]dto.MonthCount, 0, len(monthTallies))
	for _, t := range monthTallies {
		if t.Month < 1 || t.Month > 12 {
			continue
		}
		monthlyFeedbacks = append(monthlyFeedbacks, dto.MonthCount{Month: monthNames[t.Month-1], Count: t.Count})
	}

	yearTallies, err := s.store.StudentsPerYear(ctx)
	if err != nil {
		return nil, err
	}
	studentsPerYear := make([]dto.YearCount, 0, len(yearTallies))
	for _, t := range yearTallies {
		studentsPerYear = append(studentsPerYear, dto.YearCount{Year: t.Year, Count: t.Count})
	}

	return &dto.AdminOverview{
		TotalUsers:       totalUsers,
		TotalStudents:    totalStudents,
		TotalPrograms:    totalPrograms,
		AverageRating:    averageRating,
		MonthlyFeedbacks: monthlyFeedbacks,
		RoleDistribution: roleDistribution,
		StudentsPerYear:  studentsPerYear,
	}, nil
}
