package services

import (
	"context"

	"github.com/google/uuid"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
)

// StudentStore is the profile access the student service needs.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	CreateMany(ctx context.Context, students []*models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	ListForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]*models.SupervisedStudent, error)
}

// StudentService handles student profile administration and the self and
// supervisor read paths.
type StudentService struct {
	students StudentStore
	policy   *appauth.StudentPolicy
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, policy *appauth.StudentPolicy) *StudentService {
	return &StudentService{students: students, policy: policy}
}

func (s *StudentService) fromRequest(id uuid.UUID, req dto.StudentRequest) (*models.Student, error) {
	startDate, err := parseOptionalDate("internship_start_date", req.InternshipStartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate("internship_end_date", req.InternshipEndDate)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	internshipYear := req.InternshipYear
	return &models.Student{
		ID:                   id,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		University:           req.University,
		Department:           req.Department,
		InternshipDepartment: req.InternshipDepartment,
		InternshipStartDate:  startDate,
		InternshipEndDate:    endDate,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		Status:               defaultString(req.Status, models.StatusActive),
		Comments:             req.Comments,
		InternshipYear:       &internshipYear,
		UserID:               req.UserID,
		ProgramID:            req.ProgramID,
	}, nil
}

// List retrieves all profiles for an administrator.
func (s *StudentService) List(ctx context.Context, identity appauth.Identity) ([]*models.Student, error) {
	if err := s.policy.CanAdminister(identity); err != nil {
		return nil, err
	}
	return s.students.List(ctx)
}

// GetOwn retrieves the profile linked to the calling student's account.
func (s *StudentService) GetOwn(ctx context.Context, identity appauth.Identity) (*models.Student, error) {
	userID, err := s.policy.SelfScope(identity)
	if err != nil {
		return nil, err
	}
	return s.students.GetByUserID(ctx, userID)
}

// ListSupervised retrieves the students in programs the caller supervises.
func (s *StudentService) ListSupervised(ctx context.Context, identity appauth.Identity) ([]*models.SupervisedStudent, error) {
	return s.students.ListForSupervisor(ctx, identity.UserID)
}

// Create adds one or more profiles. A batch lands in a single transaction.
func (s *StudentService) Create(ctx context.Context, identity appauth.Identity, reqs []dto.StudentRequest) error {
	if err := s.policy.CanAdminister(identity); err != nil {
		return err
	}

	students := make([]*models.Student, 0, len(reqs))
	for _, req := range reqs {
		student, err := s.fromRequest(uuid.New(), req)
		if err != nil {
			return err
		}
		students = append(students, student)
	}

	if len(students) == 1 {
		return s.students.Create(ctx, students[0])
	}
	return s.students.CreateMany(ctx, students)
}

// Update rewrites a profile.
func (s *StudentService) Update(ctx context.Context, identity appauth.Identity, id uuid.UUID, req dto.StudentRequest) error {
	if err := s.policy.CanAdminister(identity); err != nil {
		return err
	}

	student, err := s.fromRequest(id, req)
	if err != nil {
		return err
	}
	return s.students.Update(ctx, student)
}

// Delete removes a single profile.
func (s *StudentService) Delete(ctx context.Context, identity appauth.Identity, id uuid.UUID) error {
	if err := s.policy.CanAdminister(identity); err != nil {
		return err
	}
	return s.students.Delete(ctx, id)
}

// DeleteMany removes a batch of profiles in one transaction.
func (s *StudentService) DeleteMany(ctx context.Context, identity appauth.Identity, ids []uuid.UUID) error {
	if err := s.policy.CanAdminister(identity); err != nil {
		return err
	}
	return s.students.DeleteMany(ctx, ids)
}
