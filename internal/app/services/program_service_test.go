package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
)

func adminIdentity() appauth.Identity {
	return appauth.Identity{UserID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
}

func newProgramService(store *fakeProgramStore) *ProgramService {
	return NewProgramService(store, appauth.NewProgramPolicy())
}

func TestProgramCreateDefaultsStatus(t *testing.T) {
	store := newFakeProgramStore()
	svc := newProgramService(store)

	err := svc.Create(context.Background(), []dto.ProgramRequest{{Name: "Summer 2026"}})
	require.NoError(t, err)

	programs, _ := store.List(context.Background())
	require.Len(t, programs, 1)
	assert.Equal(t, models.StatusActive, programs[0].Status)
}

func TestProgramCreateRejectsInvertedDateRange(t *testing.T) {
	svc := newProgramService(newFakeProgramStore())

	err := svc.Create(context.Background(), []dto.ProgramRequest{{
		Name:      "Summer 2026",
		StartDate: strPtr("2026-09-01"),
		EndDate:   strPtr("2026-06-01"),
	}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProgramUpdateUnknownID(t *testing.T) {
	svc := newProgramService(newFakeProgramStore())

	err := svc.Update(context.Background(), uuid.New(), dto.ProgramRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)
}

func TestProgramBulkUpdateAtomicity(t *testing.T) {
	store := newFakeProgramStore()
	svc := newProgramService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, []dto.ProgramRequest{{Name: "Summer 2026"}}))
	programs, _ := store.List(ctx)
	existing := programs[0]

	err := svc.UpdateMany(ctx, []dto.ProgramBulkUpdateItem{
		{ProgramID: existing.ID, Name: "Renamed"},
		{ProgramID: uuid.New(), Name: "Ghost"},
	})
	assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)

	// The unknown id rejected the whole batch.
	programs, _ = store.List(ctx)
	assert.Equal(t, "Summer 2026", programs[0].Name)
}

func TestProgramImportCSV(t *testing.T) {
	store := newFakeProgramStore()
	svc := newProgramService(store)
	supervisorID := uuid.New()

	csv := "program_name,start_date,end_date,supervisor_id,details,status\n" +
		"Summer 2026,2026-06-01,2026-08-31," + supervisorID.String() + ",Backend track,active\n" +
		"Winter 2026,,,,,\n"

	count, err := svc.ImportCSV(context.Background(), adminIdentity(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	programs, _ := store.List(context.Background())
	assert.Len(t, programs, 2)
}

func TestProgramImportCSVRequiresAdmin(t *testing.T) {
	svc := newProgramService(newFakeProgramStore())
	supervisor := appauth.Identity{UserID: uuid.New(), Role: models.RoleSupervisor}

	_, err := svc.ImportCSV(context.Background(), supervisor, strings.NewReader("program_name\nX\n"))
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestProgramImportCSVBadRow(t *testing.T) {
	store := newFakeProgramStore()
	svc := newProgramService(store)

	csv := "program_name,supervisor_id\nSummer 2026,not-a-uuid\n"
	_, err := svc.ImportCSV(context.Background(), adminIdentity(), strings.NewReader(csv))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	csv = "program_name\nSummer 2026\n\"\"\n"
	_, err = svc.ImportCSV(context.Background(), adminIdentity(), strings.NewReader(csv))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	programs, _ := store.List(context.Background())
	assert.Empty(t, programs)
}

func TestProgramListRequiresRole(t *testing.T) {
	svc := newProgramService(newFakeProgramStore())
	student := appauth.Identity{UserID: uuid.New(), Role: models.RoleStudent}

	_, err := svc.List(context.Background(), student)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}
