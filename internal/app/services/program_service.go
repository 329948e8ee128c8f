package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/csvmap"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// ProgramStore is the program access the program service needs.
type ProgramStore interface {
	Create(ctx context.Context, program *models.InternshipProgram) error
	CreateMany(ctx context.Context, programs []*models.InternshipProgram) error
	List(ctx context.Context) ([]*models.InternshipProgram, error)
	Update(ctx context.Context, program *models.InternshipProgram) error
	UpdateMany(ctx context.Context, programs []*models.InternshipProgram) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
}

// ProgramService handles internship program administration and CSV import.
type ProgramService struct {
	programs ProgramStore
	policy   *appauth.ProgramPolicy
}

// NewProgramService creates a new ProgramService
func NewProgramService(programs ProgramStore, policy *appauth.ProgramPolicy) *ProgramService {
	return &ProgramService{programs: programs, policy: policy}
}

func (s *ProgramService) fromRequest(id uuid.UUID, req dto.ProgramRequest) (*models.InternshipProgram, error) {
	startDate, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	return &models.InternshipProgram{
		ID:           id,
		Name:         req.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		SupervisorID: req.SupervisorID,
		Details:      req.Details,
		Status:       defaultString(req.Status, models.StatusActive),
	}, nil
}

// List retrieves all programs.
func (s *ProgramService) List(ctx context.Context, identity appauth.Identity) ([]*models.InternshipProgram, error) {
	if err := s.policy.CanList(identity); err != nil {
		return nil, err
	}
	return s.programs.List(ctx)
}

// Create adds one or more programs. A batch lands in a single transaction.
func (s *ProgramService) Create(ctx context.Context, reqs []dto.ProgramRequest) error {
	programs := make([]*models.InternshipProgram, 0, len(reqs))
	for _, req := range reqs {
		program, err := s.fromRequest(uuid.New(), req)
		if err != nil {
			return err
		}
		programs = append(programs, program)
	}

	if len(programs) == 1 {
		return s.programs.Create(ctx, programs[0])
	}
	return s.programs.CreateMany(ctx, programs)
}

// Update rewrites a single program.
func (s *ProgramService) Update(ctx context.Context, id uuid.UUID, req dto.ProgramRequest) error {
	program, err := s.fromRequest(id, req)
	if err != nil {
		return err
	}
	return s.programs.Update(ctx, program)
}

// UpdateMany rewrites a batch of programs in one transaction. An unknown id
// rejects the whole batch.
func (s *ProgramService) UpdateMany(ctx context.Context, items []dto.ProgramBulkUpdateItem) error {
	programs := make([]*models.InternshipProgram, 0, len(items))
	for _, item := range items {
		program, err := s.fromRequest(item.ProgramID, dto.ProgramRequest{
			Name:         item.Name,
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			SupervisorID: item.SupervisorID,
			Details:      item.Details,
			Status:       item.Status,
		})
		if err != nil {
			return err
		}
		programs = append(programs, program)
	}
	return s.programs.UpdateMany(ctx, programs)
}

// Delete removes a single program.
func (s *ProgramService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.programs.Delete(ctx, id)
}

// DeleteMany removes a batch of programs in one transaction.
func (s *ProgramService) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	return s.programs.DeleteMany(ctx, ids)
}

// ImportCSV bulk-creates programs from a header-first CSV document. The
// expected columns are program_name, start_date, end_date, supervisor_id,
// details, and status; only program_name is required. The whole file lands
// in one transaction, so a bad row rejects the entire import. Returns the
// number of imported programs.
func (s *ProgramService) ImportCSV(ctx context.Context, identity appauth.Identity, file io.Reader) (int, error) {
	if err := s.policy.CanImport(identity); err != nil {
		return 0, err
	}

	records, err := csvmap.Read(file)
	if err != nil {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}
	if len(records) == 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "csv file contains no data rows")
	}

	programs := make([]*models.InternshipProgram, 0, len(records))
	for i, record := range records {
		if record["program_name"] == "" {
			return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("row %d: program_name is required", i+1))
		}

		req := dto.ProgramRequest{Name: record["program_name"]}
		if v := record["start_date"]; v != "" {
			req.StartDate = &v
		}
		if v := record["end_date"]; v != "" {
			req.EndDate = &v
		}
		if v := record["supervisor_id"]; v != "" {
			supervisorID, err := uuid.Parse(v)
			if err != nil {
				return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed,
					fmt.Sprintf("row %d: supervisor_id is not a valid uuid", i+1))
			}
			req.SupervisorID = &supervisorID
		}
		if v := record["details"]; v != "" {
			req.Details = &v
		}
		if v := record["status"]; v != "" {
			req.Status = &v
		}

		program, err := s.fromRequest(uuid.New(), req)
		if err != nil {
			return 0, err
		}
		programs = append(programs, program)
	}

	if err := s.programs.CreateMany(ctx, programs); err != nil {
		return 0, err
	}

	logger.Info().Int("count", len(programs)).Str("username", identity.Username).Msg("Programs imported from CSV")
	return len(programs), nil
}
