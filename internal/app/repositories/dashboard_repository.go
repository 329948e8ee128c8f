package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internlink/internlink/internal/pkg/logger"
)

// RoleTally is a per-role account count.
type RoleTally struct {
	Role  string
	Count int
}

// MonthTally is a per-month feedback count. Only months with at least one
// row are returned.
type MonthTally struct {
	Month int
	Count int
}

// YearTally is a per-internship-year student count.
type YearTally struct {
	Year  int
	Count int
}

// DashboardRepository computes the aggregates behind the admin overview.
type DashboardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *DashboardRepository) count(ctx context.Context, table string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error counting rows")
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}

// CountUsers returns the total number of user accounts.
func (r *DashboardRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "users")
}

// CountStudents returns the total number of student profiles.
func (r *DashboardRepository) CountStudents(ctx context.Context) (int, error) {
	return r.count(ctx, "students")
}

// CountPrograms returns the total number of internship programs.
func (r *DashboardRepository) CountPrograms(ctx context.Context) (int, error) {
	return r.count(ctx, "internship_programs")
}

// RoleDistribution returns the account count per role.
func (r *DashboardRepository) RoleDistribution(ctx context.Context) ([]RoleTally, error) {
	sql, args, err := r.sb.Select("role", "COUNT(*)").
		From("users").
		GroupBy("role").
		OrderBy("role ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build role distribution query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing role distribution query")
		return nil, fmt.Errorf("error querying role distribution: %w", err)
	}
	defer rows.Close()

	tallies := []RoleTally{}
	for rows.Next() {
		var t RoleTally
		if err := rows.Scan(&t.Role, &t.Count); err != nil {
			return nil, fmt.Errorf("error scanning role distribution row: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role distribution rows: %w", err)
	}

	return tallies, nil
}

// AverageRating returns the mean feedback rating across all entries, 0 when
// there are none.
func (r *DashboardRepository) AverageRating(ctx context.Context) (float64, error) {
	sql, args, err := r.sb.Select("COALESCE(AVG(rating), 0)").
		From("feedbacks").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build average rating query: %w", err)
	}

	var avg float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&avg); err != nil {
		logger.Error().Err(err).Msg("Error executing average rating query")
		return 0, fmt.Errorf("error querying average rating: %w", err)
	}
	return avg, nil
}

// MonthlyFeedbackCounts returns the feedback count per calendar month of the
// given year. Months with no rows are absent.
func (r *DashboardRepository) MonthlyFeedbackCounts(ctx context.Context, year int) ([]MonthTally, error) {
	sql, args, err := r.sb.Select("EXTRACT(MONTH FROM feedback_date)::int AS month", "COUNT(*)").
		From("feedbacks").
		Where(squirrel.Expr("EXTRACT(YEAR FROM feedback_date) = ?", year)).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("year", year).Msg("Error executing monthly feedback query")
		return nil, fmt.Errorf("error querying monthly feedbacks: %w", err)
	}
	defer rows.Close()

	tallies := []MonthTally{}
	for rows.Next() {
		var t MonthTally
		if err := rows.Scan(&t.Month, &t.Count); err != nil {
			return nil, fmt.Errorf("error scanning monthly feedback row: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly feedback rows: %w", err)
	}

	return tallies, nil
}

// StudentsPerYear returns the student count per internship year, newest year
// first. Students with no year set are excluded.
func (r *DashboardRepository) StudentsPerYear(ctx context.Context) ([]YearTally, error) {
	sql, args, err := r.sb.Select("internship_year", "COUNT(*)").
		From("students").
		Where("internship_year IS NOT NULL").
		GroupBy("internship_year").
		OrderBy("internship_year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students per year query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students per year query")
		return nil, fmt.Errorf("error querying students per year: %w", err)
	}
	defer rows.Close()

	tallies := []YearTally{}
	for rows.Next() {
		var t YearTally
		if err := rows.Scan(&t.Year, &t.Count); err != nil {
			return nil, fmt.Errorf("error scanning students per year row: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students per year rows: %w", err)
	}

	return tallies, nil
}
