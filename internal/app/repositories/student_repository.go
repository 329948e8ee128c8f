package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/db"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row, student *models.Student, joined bool) error {
	dest := []any{
		&student.ID, &student.FirstName, &student.LastName, &student.University,
		&student.Department, &student.InternshipDepartment, &student.InternshipStartDate,
		&student.InternshipEndDate, &student.Email, &student.PhoneNumber, &student.Status,
		&student.Comments, &student.InternshipYear, &student.UserID, &student.ProgramID,
	}
	if joined {
		dest = append(dest, &student.Username, &student.ProgramName)
	}
	return row.Scan(dest...)
}

func (r *StudentRepository) studentValues(student *models.Student) map[string]interface{} {
	return map[string]interface{}{
		"first_name":            student.FirstName,
		"last_name":             student.LastName,
		"university":            student.University,
		"department":            student.Department,
		"internship_department": student.InternshipDepartment,
		"internship_start_date": student.InternshipStartDate,
		"internship_end_date":   student.InternshipEndDate,
		"email":                 student.Email,
		"phone_number":          student.PhoneNumber,
		"status":                student.Status,
		"comments":              student.Comments,
		"internship_year":       student.InternshipYear,
		"user_id":               student.UserID,
		"program_id":            student.ProgramID,
	}
}

func (r *StudentRepository) create(ctx context.Context, q Querier, student *models.Student) error {
	values := r.studentValues(student)
	values["student_id"] = student.ID

	sql, args, err := r.sb.Insert("students").SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", student.ID.String()).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Create inserts a single student profile.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.create(ctx, r.db, student)
}

// CreateMany inserts a batch of student profiles in one transaction.
func (r *StudentRepository) CreateMany(ctx context.Context, students []*models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, student := range students {
			if err := r.create(ctx, tx, student); err != nil {
				return err
			}
		}
		return nil
	})
}

// List retrieves all student profiles with the linked account username and
// program name joined in.
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.student_id", "s.first_name", "s.last_name", "s.university",
		"s.department", "s.internship_department", "s.internship_start_date",
		"s.internship_end_date", "s.email", "s.phone_number", "s.status",
		"s.comments", "s.internship_year", "s.user_id", "s.program_id",
		"u.username", "ip.program_name").
		From("students s").
		LeftJoin("users u ON s.user_id = u.user_id").
		LeftJoin("internship_programs ip ON s.program_id = ip.program_id").
		OrderBy("s.last_name ASC", "s.first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := scanStudent(rows, student, true); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByUserID retrieves the student profile linked to a user account.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.student_id", "s.first_name", "s.last_name", "s.university",
		"s.department", "s.internship_department", "s.internship_start_date",
		"s.internship_end_date", "s.email", "s.phone_number", "s.status",
		"s.comments", "s.internship_year", "s.user_id", "s.program_id",
		"u.username", "ip.program_name").
		From("students s").
		LeftJoin("users u ON s.user_id = u.user_id").
		LeftJoin("internship_programs ip ON s.program_id = ip.program_id").
		Where(squirrel.Eq{"s.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := scanStudent(r.db.QueryRow(ctx, sql, args...), student, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by user id: %w", err)
	}

	return student, nil
}

// GetByID retrieves a student profile by id.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"student_id", "first_name", "last_name", "university", "department",
		"internship_department", "internship_start_date", "internship_end_date",
		"email", "phone_number", "status", "comments", "internship_year",
		"user_id", "program_id").
		From("students").
		Where(squirrel.Eq{"student_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := scanStudent(r.db.QueryRow(ctx, sql, args...), student, false); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}

	return student, nil
}

// Update rewrites a student profile.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(r.studentValues(student)).
		Where(squirrel.Eq{"student_id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", student.ID.String()).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a single student profile.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteMany removes a batch of student profiles in one transaction. Ids
// that match no row fail the whole batch.
func (r *StudentRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, id := range ids {
			sql, args, err := r.sb.Delete("students").
				Where(squirrel.Eq{"student_id": id}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete student query: %w", err)
			}

			cmdTag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return fmt.Errorf("error deleting student: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return apperrors.ErrStudentNotFound
			}
		}
		return nil
	})
}

// IsAssignedSupervisor reports whether the given user currently supervises
// the program the student is enrolled in.
func (r *StudentRepository) IsAssignedSupervisor(ctx context.Context, studentID, supervisorID uuid.UUID) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students s").
		Join("internship_programs ip ON s.program_id = ip.program_id").
		Where(squirrel.Eq{"s.student_id": studentID, "ip.supervisor_id": supervisorID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build supervisor assignment query: %w", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Str("studentID", studentID.String()).Msg("Error checking supervisor assignment")
		return false, fmt.Errorf("error checking supervisor assignment: %w", err)
	}

	return true, nil
}

// ListForSupervisor retrieves the students enrolled in programs the given
// user supervises, each flagged with whether that supervisor has already
// left feedback for them.
func (r *StudentRepository) ListForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]*models.SupervisedStudent, error) {
	sql, args, err := r.sb.Select(
		"s.student_id", "s.first_name", "s.last_name", "s.university",
		"s.department", "s.internship_department", "s.internship_start_date",
		"s.internship_end_date", "s.email", "s.phone_number", "s.status",
		"s.comments", "s.internship_year", "s.user_id", "s.program_id",
		"u.username", "ip.program_name",
		"EXISTS (SELECT 1 FROM feedbacks f WHERE f.student_id = s.student_id AND f.supervisor_id = ip.supervisor_id) AS feedback_given").
		From("students s").
		Join("internship_programs ip ON s.program_id = ip.program_id").
		LeftJoin("users u ON s.user_id = u.user_id").
		Where(squirrel.Eq{"ip.supervisor_id": supervisorID}).
		OrderBy("s.last_name ASC", "s.first_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supervised students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("supervisorID", supervisorID.String()).Msg("Error executing supervised students query")
		return nil, fmt.Errorf("error querying supervised students: %w", err)
	}
	defer rows.Close()

	students := []*models.SupervisedStudent{}
	for rows.Next() {
		student := &models.SupervisedStudent{}
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.University,
			&student.Department, &student.InternshipDepartment, &student.InternshipStartDate,
			&student.InternshipEndDate, &student.Email, &student.PhoneNumber, &student.Status,
			&student.Comments, &student.InternshipYear, &student.UserID, &student.ProgramID,
			&student.Username, &student.ProgramName, &student.FeedbackGiven)
		if err != nil {
			return nil, fmt.Errorf("error scanning supervised student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supervised student rows: %w", err)
	}

	return students, nil
}
