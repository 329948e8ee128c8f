package repositories

import (
	"context"
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

// ProgramRepository handles internship program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ProgramRepository) programValues(program *models.InternshipProgram) map[string]interface{} {
	return map[string]interface{}{
		"program_name":  program.Name,
		"start_date":    program.StartDate,
		"end_date":      program.EndDate,
		"supervisor_id": program.SupervisorID,
		"details":       program.Details,
		"status":        program.Status,
	}
}

func (r *ProgramRepository) create(ctx context.Context, q Querier, program *models.InternshipProgram) error {
	values := r.programValues(program)
	values["program_id"] = program.ID

	sql, args, err := r.sb.Insert("internship_programs").SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create program query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("programID", program.ID.String()).Msg("Error executing create program query")
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// Create inserts a single internship program.
func (r *ProgramRepository) Create(ctx context.Context, program *models.InternshipProgram) error {
	return r.create(ctx, r.db, program)
}

// CreateMany inserts a batch of programs in one transaction, so a CSV import
// either lands whole or not at all.
func (r *ProgramRepository) CreateMany(ctx context.Context, programs []*models.InternshipProgram) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, program := range programs {
			if err := r.create(ctx, tx, program); err != nil {
				return err
			}
		}
		return nil
	})
}

// List retrieves all programs with the supervisor username joined in.
func (r *ProgramRepository) List(ctx context.Context) ([]*models.InternshipProgram, error) {
	sql, args, err := r.sb.Select(
		"ip.program_id", "ip.program_name", "ip.start_date", "ip.end_date",
		"ip.supervisor_id", "ip.details", "ip.status", "u.username").
		From("internship_programs ip").
		LeftJoin("users u ON ip.supervisor_id = u.user_id").
		OrderBy("ip.program_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programs query")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.InternshipProgram{}
	for rows.Next() {
		program := &models.InternshipProgram{}
		err := rows.Scan(
			&program.ID, &program.Name, &program.StartDate, &program.EndDate,
			&program.SupervisorID, &program.Details, &program.Status,
			&program.SupervisorUsername)
		if err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

func (r *ProgramRepository) update(ctx context.Context, q Querier, program *models.InternshipProgram) error {
	sql, args, err := r.sb.Update("internship_programs").
		SetMap(r.programValues(program)).
		Where(squirrel.Eq{"program_id": program.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programID", program.ID.String()).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Update rewrites a single program.
func (r *ProgramRepository) Update(ctx context.Context, program *models.InternshipProgram) error {
	return r.update(ctx, r.db, program)
}

// UpdateMany rewrites a batch of programs in one transaction. An unknown id
// fails the whole batch.
func (r *ProgramRepository) UpdateMany(ctx context.Context, programs []*models.InternshipProgram) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, program := range programs {
			if err := r.update(ctx, tx, program); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a single program.
func (r *ProgramRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("internship_programs").
		Where(squirrel.Eq{"program_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("programID", id.String()).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// DeleteMany removes a batch of programs in one transaction. An unknown id
// fails the whole batch.
func (r *ProgramRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, id := range ids {
			sql, args, err := r.sb.Delete("internship_programs").
				Where(squirrel.Eq{"program_id": id}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete program query: %w", err)
			}

			cmdTag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return fmt.Errorf("error deleting program: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return apperrors.ErrProgramNotFound
			}
		}
		return nil
	})
}
