package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves the feedback rows visible under the given filter. The
// filter's ownership constraints become joins: a student scope joins through
// the student profile's linked account, a supervisor scope joins through the
// student's program to its current supervisor.
func (r *FeedbackRepository) List(ctx context.Context, filter appauth.FeedbackFilter) ([]*models.Feedback, error) {
	query := r.sb.Select(
		"f.feedback_id", "f.student_id", "f.supervisor_id", "f.feedback",
		"f.rating", "f.feedback_date").
		From("feedbacks f").
		OrderBy("f.feedback_date DESC")

	switch {
	case filter.StudentUserID != nil:
		query = query.
			Join("students s ON f.student_id = s.student_id").
			Where(squirrel.Eq{"s.user_id": *filter.StudentUserID})
	case filter.SupervisorID != nil:
		query = query.
			Join("students s ON f.student_id = s.student_id").
			Join("internship_programs ip ON s.program_id = ip.program_id").
			Where(squirrel.Eq{"ip.supervisor_id": *filter.SupervisorID})
		if filter.StudentID != nil {
			query = query.Where(squirrel.Eq{"f.student_id": *filter.StudentID})
		}
	default:
		if filter.StudentID != nil {
			query = query.Where(squirrel.Eq{"f.student_id": *filter.StudentID})
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list feedbacks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list feedbacks query")
		return nil, fmt.Errorf("error querying feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := []*models.Feedback{}
	for rows.Next() {
		feedback := &models.Feedback{}
		err := rows.Scan(
			&feedback.ID, &feedback.StudentID, &feedback.SupervisorID,
			&feedback.Feedback, &feedback.Rating, &feedback.FeedbackDate)
		if err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		feedbacks = append(feedbacks, feedback)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedbacks, nil
}

// GetByID retrieves a feedback entry by id.
func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error) {
	sql, args, err := r.sb.Select(
		"feedback_id", "student_id", "supervisor_id", "feedback", "rating", "feedback_date").
		From("feedbacks").
		Where(squirrel.Eq{"feedback_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get feedback query: %w", err)
	}

	feedback := &models.Feedback{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&feedback.ID, &feedback.StudentID, &feedback.SupervisorID,
		&feedback.Feedback, &feedback.Rating, &feedback.FeedbackDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		logger.Error().Err(err).Str("feedbackID", id.String()).Msg("Error scanning feedback row")
		return nil, fmt.Errorf("error getting feedback by id: %w", err)
	}

	return feedback, nil
}

// Create inserts a feedback entry.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	sql, args, err := r.sb.Insert("feedbacks").
		Columns("feedback_id", "student_id", "supervisor_id", "feedback", "rating", "feedback_date").
		Values(feedback.ID, feedback.StudentID, feedback.SupervisorID, feedback.Feedback, feedback.Rating, feedback.FeedbackDate).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create feedback query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", feedback.StudentID.String()).Msg("Error executing create feedback query")
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// Update applies a partial change set to a feedback entry. The caller is
// responsible for rejecting an empty change set before reaching here.
func (r *FeedbackRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	sql, args, err := r.sb.Update("feedbacks").
		SetMap(changes).
		Where(squirrel.Eq{"feedback_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("feedbackID", id.String()).Msg("Error executing update feedback query")
		return fmt.Errorf("error updating feedback: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}

// Delete removes a feedback entry.
func (r *FeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("feedbacks").
		Where(squirrel.Eq{"feedback_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("feedbackID", id.String()).Msg("Error executing delete feedback query")
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}
