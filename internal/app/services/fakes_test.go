package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/repositories"
	"github.com/internlink/internlink/internal/pkg/apperrors"
)

// In-memory store fakes. They reproduce the repository error contracts
// (not-found sentinels, duplicate usernames) without a database.

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) CreateMany(ctx context.Context, users []*models.User) error {
	for _, user := range users {
		if err := f.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User, newPasswordHash string) error {
	existing, ok := f.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	existing.Username = user.Username
	existing.Email = user.Email
	existing.Role = user.Role
	if newPasswordHash != "" {
		existing.PasswordHash = newPasswordHash
	}
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeStudentStore struct {
	students   map[uuid.UUID]*models.Student
	supervised []*models.SupervisedStudent
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[uuid.UUID]*models.Student{}}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) CreateMany(ctx context.Context, students []*models.Student) error {
	for _, student := range students {
		if err := f.Create(ctx, student); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStudentStore) List(_ context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		copied := *student
		students = append(students, &copied)
	}
	return students, nil
}

func (f *fakeStudentStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Student, error) {
	for _, student := range f.students {
		if student.UserID != nil && *student.UserID == userID {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if _, ok := f.students[id]; !ok {
			return apperrors.ErrStudentNotFound
		}
	}
	for _, id := range ids {
		delete(f.students, id)
	}
	return nil
}

func (f *fakeStudentStore) ListForSupervisor(_ context.Context, _ uuid.UUID) ([]*models.SupervisedStudent, error) {
	return f.supervised, nil
}

type fakeProgramStore struct {
	programs map[uuid.UUID]*models.InternshipProgram
}

func newFakeProgramStore() *fakeProgramStore {
	return &fakeProgramStore{programs: map[uuid.UUID]*models.InternshipProgram{}}
}

func (f *fakeProgramStore) Create(_ context.Context, program *models.InternshipProgram) error {
	copied := *program
	f.programs[program.ID] = &copied
	return nil
}

func (f *fakeProgramStore) CreateMany(ctx context.Context, programs []*models.InternshipProgram) error {
	for _, program := range programs {
		if err := f.Create(ctx, program); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeProgramStore) List(_ context.Context) ([]*models.InternshipProgram, error) {
	programs := make([]*models.InternshipProgram, 0, len(f.programs))
	for _, program := range f.programs {
		copied := *program
		programs = append(programs, &copied)
	}
	return programs, nil
}

func (f *fakeProgramStore) Update(_ context.Context, program *models.InternshipProgram) error {
	if _, ok := f.programs[program.ID]; !ok {
		return apperrors.ErrProgramNotFound
	}
	copied := *program
	f.programs[program.ID] = &copied
	return nil
}

func (f *fakeProgramStore) UpdateMany(ctx context.Context, programs []*models.InternshipProgram) error {
	for _, program := range programs {
		if _, ok := f.programs[program.ID]; !ok {
			return apperrors.ErrProgramNotFound
		}
	}
	for _, program := range programs {
		if err := f.Update(ctx, program); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeProgramStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.programs[id]; !ok {
		return apperrors.ErrProgramNotFound
	}
	delete(f.programs, id)
	return nil
}

func (f *fakeProgramStore) DeleteMany(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if _, ok := f.programs[id]; !ok {
			return apperrors.ErrProgramNotFound
		}
	}
	for _, id := range ids {
		delete(f.programs, id)
	}
	return nil
}

type fakeFeedbackStore struct {
	feedbacks  map[uuid.UUID]*models.Feedback
	lastFilter appauth.FeedbackFilter
	lastUpdate map[string]interface{}
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{feedbacks: map[uuid.UUID]*models.Feedback{}}
}

func (f *fakeFeedbackStore) List(_ context.Context, filter appauth.FeedbackFilter) ([]*models.Feedback, error) {
	f.lastFilter = filter
	feedbacks := make([]*models.Feedback, 0, len(f.feedbacks))
	for _, feedback := range f.feedbacks {
		copied := *feedback
		feedbacks = append(feedbacks, &copied)
	}
	return feedbacks, nil
}

func (f *fakeFeedbackStore) GetByID(_ context.Context, id uuid.UUID) (*models.Feedback, error) {
	feedback, ok := f.feedbacks[id]
	if !ok {
		return nil, apperrors.ErrFeedbackNotFound
	}
	copied := *feedback
	return &copied, nil
}

func (f *fakeFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	copied := *feedback
	f.feedbacks[feedback.ID] = &copied
	return nil
}

func (f *fakeFeedbackStore) Update(_ context.Context, id uuid.UUID, changes map[string]interface{}) error {
	feedback, ok := f.feedbacks[id]
	if !ok {
		return apperrors.ErrFeedbackNotFound
	}
	f.lastUpdate = changes
	if v, ok := changes["feedback"]; ok {
		feedback.Feedback = v.(string)
	}
	if v, ok := changes["rating"]; ok {
		feedback.Rating = v.(int)
	}
	if v, ok := changes["feedback_date"]; ok {
		feedback.FeedbackDate = v.(*models.Date)
	}
	return nil
}

func (f *fakeFeedbackStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.feedbacks[id]; !ok {
		return apperrors.ErrFeedbackNotFound
	}
	delete(f.feedbacks, id)
	return nil
}

type fakeAssignments struct {
	assigned map[uuid.UUID]uuid.UUID // student -> current supervisor
}

func (f *fakeAssignments) IsAssignedSupervisor(_ context.Context, studentID, supervisorID uuid.UUID) (bool, error) {
	return f.assigned[studentID] == supervisorID, nil
}

type fakeDashboardStore struct {
	users    int
	students int
	programs int
	avg      float64
	roles    []repositories.RoleTally
	months   []repositories.MonthTally
	years    []repositories.YearTally
	lastYear int
}

func (f *fakeDashboardStore) CountUsers(context.Context) (int, error)    { return f.users, nil }
func (f *fakeDashboardStore) CountStudents(context.Context) (int, error) { return f.students, nil }
func (f *fakeDashboardStore) CountPrograms(context.Context) (int, error) { return f.programs, nil }
func (f *fakeDashboardStore) AverageRating(context.Context) (float64, error) {
	return f.avg, nil
}
func (f *fakeDashboardStore) RoleDistribution(context.Context) ([]repositories.RoleTally, error) {
	return f.roles, nil
}
func (f *fakeDashboardStore) MonthlyFeedbackCounts(_ context.Context, year int) ([]repositories.MonthTally, error) {
	f.lastYear = year
	return f.months, nil
}
func (f *fakeDashboardStore) StudentsPerYear(context.Context) ([]repositories.YearTally, error) {
	return f.years, nil
}
