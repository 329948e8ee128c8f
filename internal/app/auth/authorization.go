// Package auth holds the per-resource access policies: who may read or
// mutate which rows, derived from the caller identity and the ownership
// joins in the data model.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/pkg/apperrors"
)

// FeedbackFilter narrows a feedback read to the caller's visibility scope.
// Repositories translate it into join conditions.
type FeedbackFilter struct {
	// StudentUserID restricts to rows whose student profile is linked to
	// this user account (student viewing their own feedback).
	StudentUserID *uuid.UUID
	// SupervisorID restricts to rows whose student belongs to a program
	// currently supervised by this user.
	SupervisorID *uuid.UUID
	// StudentID restricts to a single student's rows.
	StudentID *uuid.UUID
}

// ProgramAssignments answers whether a supervisor is currently assigned to a
// student's program. Implemented by the student repository.
type ProgramAssignments interface {
	IsAssignedSupervisor(ctx context.Context, studentID, supervisorID uuid.UUID) (bool, error)
}

// FeedbackPolicy decides row-level visibility and mutation rights for
// feedback entries.
type FeedbackPolicy struct {
	assignments ProgramAssignments
}

// NewFeedbackPolicy creates a FeedbackPolicy
func NewFeedbackPolicy(assignments ProgramAssignments) *FeedbackPolicy {
	return &FeedbackPolicy{assignments: assignments}
}

// ScopeRead returns the filter bounding what the caller may see. A student
// sees only their own rows regardless of any requested student filter; a
// supervisor is always bounded by their program assignment, even when a
// student filter targets someone else's student; an admin sees everything.
func (p *FeedbackPolicy) ScopeRead(identity Identity, studentID *uuid.UUID) (FeedbackFilter, error) {
	switch identity.Role {
	case models.RoleStudent:
		userID := identity.UserID
		return FeedbackFilter{StudentUserID: &userID}, nil
	case models.RoleSupervisor:
		supervisorID := identity.UserID
		return FeedbackFilter{SupervisorID: &supervisorID, StudentID: studentID}, nil
	case models.RoleAdmin:
		return FeedbackFilter{StudentID: studentID}, nil
	}
	return FeedbackFilter{}, apperrors.ErrAccessDenied
}

// CanModify reports whether the caller may update or delete the given row.
// Non-admins must be the supervisor currently assigned to the student's
// program; the original author of the row does not matter, so a supervisor
// who inherits a student may edit a predecessor's feedback.
func (p *FeedbackPolicy) CanModify(ctx context.Context, identity Identity, feedback *models.Feedback) error {
	if identity.Role == models.RoleAdmin {
		return nil
	}

	assigned, err := p.assignments.IsAssignedSupervisor(ctx, feedback.StudentID, identity.UserID)
	if err != nil {
		return err
	}
	if !assigned {
		return apperrors.ErrNotAuthorized
	}
	return nil
}

// StudentPolicy decides visibility for student profiles. Only admins may
// list or mutate; a student may read the single row linked to their own
// account. Supervisors have no direct student access and read transitively
// through the supervisor listing instead.
type StudentPolicy struct{}

// NewStudentPolicy creates a StudentPolicy
func NewStudentPolicy() *StudentPolicy {
	return &StudentPolicy{}
}

// CanAdminister reports whether the caller may list or mutate student rows.
func (p *StudentPolicy) CanAdminister(identity Identity) error {
	if identity.Role != models.RoleAdmin {
		return apperrors.ErrAccessDenied
	}
	return nil
}

// SelfScope returns the user id a student's own profile lookup is resolved
// against.
func (p *StudentPolicy) SelfScope(identity Identity) (uuid.UUID, error) {
	if identity.Role != models.RoleStudent {
		return uuid.Nil, apperrors.ErrAccessDenied
	}
	return identity.UserID, nil
}

// ProgramPolicy decides visibility for internship programs. Listing is
// limited to admins and supervisors. Mutations are open to any
// authenticated caller; see the route table, where the absence of a role
// gate is recorded deliberately rather than left implicit.
type ProgramPolicy struct{}

// NewProgramPolicy creates a ProgramPolicy
func NewProgramPolicy() *ProgramPolicy {
	return &ProgramPolicy{}
}

// CanList reports whether the caller may list programs.
func (p *ProgramPolicy) CanList(identity Identity) error {
	switch identity.Role {
	case models.RoleAdmin, models.RoleSupervisor:
		return nil
	}
	return apperrors.ErrAccessDenied
}

// CanImport reports whether the caller may bulk-import programs from CSV.
func (p *ProgramPolicy) CanImport(identity Identity) error {
	if identity.Role != models.RoleAdmin {
		return apperrors.ErrAccessDenied
	}
	return nil
}
