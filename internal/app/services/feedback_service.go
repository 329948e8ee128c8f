package services

import (
	"context"

	"github.com/google/uuid"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// FeedbackStore is the feedback access the feedback service needs.
type FeedbackStore interface {
	List(ctx context.Context, filter appauth.FeedbackFilter) ([]*models.Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Feedback, error)
	Create(ctx context.Context, feedback *models.Feedback) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedbackService handles feedback reads and mutations under the feedback
// policy: reads are scoped to the caller's visibility, mutations require the
// caller to currently supervise the student's program (or be an admin).
type FeedbackService struct {
	feedbacks FeedbackStore
	policy    *appauth.FeedbackPolicy
	today     func() models.Date
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbacks FeedbackStore, policy *appauth.FeedbackPolicy) *FeedbackService {
	return &FeedbackService{
		feedbacks: feedbacks,
		policy:    policy,
		today:     models.Today,
	}
}

// List retrieves the feedback visible to the caller, optionally narrowed to
// one student. The student filter never widens a caller's scope.
func (s *FeedbackService) List(ctx context.Context, identity appauth.Identity, studentID *uuid.UUID) ([]*models.Feedback, error) {
	filter, err := s.policy.ScopeRead(identity, studentID)
	if err != nil {
		return nil, err
	}
	return s.feedbacks.List(ctx, filter)
}

// Create adds a feedback entry authored by the caller. The feedback date
// defaults to today when absent.
func (s *FeedbackService) Create(ctx context.Context, identity appauth.Identity, req dto.CreateFeedbackRequest) (uuid.UUID, error) {
	feedbackDate, err := parseOptionalDate("feedback_date", req.FeedbackDate)
	if err != nil {
		return uuid.Nil, err
	}
	if feedbackDate == nil {
		today := s.today()
		feedbackDate = &today
	}

	feedback := &models.Feedback{
		ID:           uuid.New(),
		StudentID:    req.StudentID,
		SupervisorID: identity.UserID,
		Feedback:     req.Feedback,
		Rating:       req.Rating,
		FeedbackDate: feedbackDate,
	}

	if err := s.feedbacks.Create(ctx, feedback); err != nil {
		return uuid.Nil, err
	}

	logger.Info().
		Str("feedbackID", feedback.ID.String()).
		Str("studentID", feedback.StudentID.String()).
		Str("username", identity.Username).
		Msg("Feedback created")
	return feedback.ID, nil
}

// Update applies a partial change to an existing entry. Only the feedback
// text, rating, and date are mutable; an empty change set is rejected before
// any authorization check hits the database.
func (s *FeedbackService) Update(ctx context.Context, identity appauth.Identity, id uuid.UUID, req dto.UpdateFeedbackRequest) error {
	if req.Empty() {
		return apperrors.ErrNoFieldsToUpdate
	}

	feedback, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.policy.CanModify(ctx, identity, feedback); err != nil {
		return err
	}

	changes := map[string]interface{}{}
	if req.Feedback != nil {
		changes["feedback"] = *req.Feedback
	}
	if req.Rating != nil {
		changes["rating"] = *req.Rating
	}
	if req.FeedbackDate != nil {
		feedbackDate, err := parseOptionalDate("feedback_date", req.FeedbackDate)
		if err != nil {
			return err
		}
		changes["feedback_date"] = feedbackDate
	}

	return s.feedbacks.Update(ctx, id, changes)
}

// Delete removes an entry under the same authorization rule as Update.
func (s *FeedbackService) Delete(ctx context.Context, identity appauth.Identity, id uuid.UUID) error {
	feedback, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.policy.CanModify(ctx, identity, feedback); err != nil {
		return err
	}

	if err := s.feedbacks.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("feedbackID", id.String()).Str("username", identity.Username).Msg("Feedback deleted")
	return nil
}
