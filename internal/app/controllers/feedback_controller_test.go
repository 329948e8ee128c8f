package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFeedbackStore struct {
	feedbacks  map[uuid.UUID]*models.Feedback
	lastFilter appauth.FeedbackFilter
}

func newStubFeedbackStore() *stubFeedbackStore {
	return &stubFeedbackStore{feedbacks: map[uuid.UUID]*models.Feedback{}}
}

func (s *stubFeedbackStore) List(_ context.Context, filter appauth.FeedbackFilter) ([]*models.Feedback, error) {
	s.lastFilter = filter
	out := []*models.Feedback{}
	for _, f := range s.feedbacks {
		out = append(out, f)
	}
	return out, nil
}

func (s *stubFeedbackStore) GetByID(_ context.Context, id uuid.UUID) (*models.Feedback, error) {
	f, ok := s.feedbacks[id]
	if !ok {
		return nil, apperrors.ErrFeedbackNotFound
	}
	return f, nil
}

func (s *stubFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	s.feedbacks[feedback.ID] = feedback
	return nil
}

func (s *stubFeedbackStore) Update(_ context.Context, id uuid.UUID, changes map[string]interface{}) error {
	if _, ok := s.feedbacks[id]; !ok {
		return apperrors.ErrFeedbackNotFound
	}
	return nil
}

func (s *stubFeedbackStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.feedbacks[id]; !ok {
		return apperrors.ErrFeedbackNotFound
	}
	delete(s.feedbacks, id)
	return nil
}

type stubAssignments struct {
	assigned map[uuid.UUID]uuid.UUID
}

func (s *stubAssignments) IsAssignedSupervisor(_ context.Context, studentID, supervisorID uuid.UUID) (bool, error) {
	return s.assigned[studentID] == supervisorID, nil
}

// feedbackTestRouter mounts the feedback controller with a fixed caller
// identity injected ahead of the handler, standing in for Authenticate.
func feedbackTestRouter(store *stubFeedbackStore, assignments *stubAssignments, identity appauth.Identity) *gin.Engine {
	if assignments == nil {
		assignments = &stubAssignments{}
	}
	svc := services.NewFeedbackService(store, appauth.NewFeedbackPolicy(assignments))
	ctrl := NewFeedbackController(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) { appauth.SetIdentity(c, identity) })
	router.GET("/api/feedback", ctrl.List)
	router.POST("/api/feedback", ctrl.Create)
	router.PUT("/api/feedback/:id", ctrl.Update)
	router.DELETE("/api/feedback/:id", ctrl.Delete)
	return router
}

func jsonRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateFeedbackRatingBounds(t *testing.T) {
	supervisor := appauth.Identity{UserID: uuid.New(), Username: "sup", Role: models.RoleSupervisor}
	store := newStubFeedbackStore()
	router := feedbackTestRouter(store, nil, supervisor)

	body := func(rating int) string {
		return fmt.Sprintf(`{"student_id":%q,"feedback":"solid","rating":%d}`, uuid.New(), rating)
	}

	assert.Equal(t, http.StatusBadRequest, jsonRequest(router, http.MethodPost, "/api/feedback", body(0)).Code)
	assert.Equal(t, http.StatusBadRequest, jsonRequest(router, http.MethodPost, "/api/feedback", body(6)).Code)
	assert.Equal(t, http.StatusCreated, jsonRequest(router, http.MethodPost, "/api/feedback", body(1)).Code)
	assert.Equal(t, http.StatusCreated, jsonRequest(router, http.MethodPost, "/api/feedback", body(5)).Code)
	assert.Len(t, store.feedbacks, 2)
}

func TestCreateFeedbackSetsAuthorFromIdentity(t *testing.T) {
	supervisor := appauth.Identity{UserID: uuid.New(), Username: "sup", Role: models.RoleSupervisor}
	store := newStubFeedbackStore()
	router := feedbackTestRouter(store, nil, supervisor)

	w := jsonRequest(router, http.MethodPost, "/api/feedback",
		fmt.Sprintf(`{"student_id":%q,"feedback":"solid","rating":4}`, uuid.New()))
	require.Equal(t, http.StatusCreated, w.Code)

	for _, f := range store.feedbacks {
		assert.Equal(t, supervisor.UserID, f.SupervisorID)
	}
}

func TestListFeedbackScopedToStudent(t *testing.T) {
	student := appauth.Identity{UserID: uuid.New(), Username: "stu", Role: models.RoleStudent}
	store := newStubFeedbackStore()
	router := feedbackTestRouter(store, nil, student)

	// The student_id filter is ignored for students.
	w := jsonRequest(router, http.MethodGet, "/api/feedback?student_id="+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.lastFilter.StudentUserID)
	assert.Equal(t, student.UserID, *store.lastFilter.StudentUserID)
	assert.Nil(t, store.lastFilter.StudentID)
}

func TestUpdateFeedbackEmptyBody(t *testing.T) {
	supervisor := appauth.Identity{UserID: uuid.New(), Username: "sup", Role: models.RoleSupervisor}
	router := feedbackTestRouter(newStubFeedbackStore(), nil, supervisor)

	w := jsonRequest(router, http.MethodPut, "/api/feedback/"+uuid.NewString(), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no fields to update")
}

func TestUpdateFeedbackNotAssigned(t *testing.T) {
	studentID := uuid.New()
	feedbackID := uuid.New()
	notAssigned := appauth.Identity{UserID: uuid.New(), Username: "sup", Role: models.RoleSupervisor}

	store := newStubFeedbackStore()
	store.feedbacks[feedbackID] = &models.Feedback{ID: feedbackID, StudentID: studentID, Rating: 3}

	router := feedbackTestRouter(store, &stubAssignments{}, notAssigned)
	w := jsonRequest(router, http.MethodPut, "/api/feedback/"+feedbackID.String(), `{"rating":5}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateFeedbackUnknownID(t *testing.T) {
	admin := appauth.Identity{UserID: uuid.New(), Username: "boss", Role: models.RoleAdmin}
	router := feedbackTestRouter(newStubFeedbackStore(), nil, admin)

	w := jsonRequest(router, http.MethodPut, "/api/feedback/"+uuid.NewString(), `{"rating":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = jsonRequest(router, http.MethodPut, "/api/feedback/not-a-uuid", `{"rating":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFeedbackAsAdmin(t *testing.T) {
	feedbackID := uuid.New()
	store := newStubFeedbackStore()
	store.feedbacks[feedbackID] = &models.Feedback{ID: feedbackID, StudentID: uuid.New(), Rating: 3}

	admin := appauth.Identity{UserID: uuid.New(), Username: "boss", Role: models.RoleAdmin}
	router := feedbackTestRouter(store, nil, admin)

	w := jsonRequest(router, http.MethodDelete, "/api/feedback/"+feedbackID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.feedbacks)
}
