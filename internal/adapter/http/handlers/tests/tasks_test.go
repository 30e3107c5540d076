package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskhive/internal/adapter/http/dto"
	"taskhive/internal/adapter/http/handlers"
	"taskhive/internal/adapter/http/middleware"
	"taskhive/internal/auth"
	"taskhive/internal/core/domain"
	"taskhive/pkg/apierrors"
	"taskhive/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) error {
	args := m.Called(ctx, userID, taskID, input)
	return args.Error(0)
}

const tasksTestSecret = "handler-test-secret"

func newTasksRouter(serviceMock *taskServiceMock) (*gin.Engine, *auth.Manager) {
	tokens := auth.NewManager(tasksTestSecret)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	tasks := router.Group("/tasks")
	tasks.Use(middleware.LanguageMiddleware(), middleware.AuthMiddleware(tokens))
	{
		tasks.GET("", handler.ListTasks)
		tasks.POST("/add", handler.AddTask)
		tasks.GET("/:id", handler.GetTask)
		tasks.DELETE("/:id", handler.DeleteTask)
		tasks.POST("/update/:id", handler.UpdateTask)
	}
	return router, tokens
}

func issueToken(t *testing.T, tokens *auth.Manager, userID string) string {
	t.Helper()

	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	return token
}

func TestTaskHandler_ListTasks_MissingToken(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router, _ := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "No authentication token, authorization denied.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_TamperedToken(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router, tokens := newTasksRouter(serviceMock)

	tampered := issueToken(t, tokens, "u-1") + "xx"

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, tampered)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Token is not valid, authorization denied.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_ScopesToTokenSubject(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 8, 2, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, "u-1").Return(
		[]domain.Task{
			{
				ID:          "t-1",
				Title:       "A",
				Description: "B",
				Status:      domain.TaskStatusNew,
				UserID:      "u-1",
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
			},
		},
		nil,
	).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "t-1", got[0].ID)
	require.Equal(t, "A", got[0].Title)
	require.Equal(t, "B", got[0].Description)
	require.Equal(t, "New", got[0].Status)
	require.Equal(t, "u-1", got[0].UserID)
	require.Equal(t, "2026-08-01T10:20:30Z", got[0].CreatedAt)
	require.Equal(t, "2026-08-02T11:20:30Z", got[0].UpdatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AddTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, "u-1", domain.CreateTaskInput{
		Title:       "A",
		Description: "B",
		Status:      domain.TaskStatusNew,
	}).Return(domain.Task{ID: "t-1", UserID: "u-1"}, nil).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/tasks/add", strings.NewReader(`{"title":"A","description":"B","status":"New"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Confirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task added!", got.Msg)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AddTask_MissingField(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/tasks/add", strings.NewReader(`{"title":"A","status":"New"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

// Reading a foreign task and reading a missing one are indistinguishable
// on purpose: both come back as 404.
func TestTaskHandler_GetTask_NotFoundOrNotOwned(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, "u-2", "t-1").
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks/t-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-2"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found or user not authorized", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, "u-1", "t-1").
		Return(domain.Task{
			ID:          "t-1",
			Title:       "t",
			Description: "d",
			Status:      domain.TaskStatusNew,
			UserID:      "u-1",
		}, nil).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks/t-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "t-1", got.ID)
	require.Equal(t, "t", got.Title)
	require.Equal(t, "d", got.Description)
	require.Equal(t, "New", got.Status)
	require.Equal(t, "u-1", got.UserID)
	serviceMock.AssertExpectations(t)
}

// Deleting an id that does not exist reports not found rather than
// failing loudly.
func TestTaskHandler_DeleteTask_MissingTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, "u-1", "t-404").
		Return(domain.ErrTaskNotFound).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/t-404", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found or user not authorized", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, "u-1", "t-1").Return(nil).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/t-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Confirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task deleted.", got.Msg)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_MissingTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, "u-1", "t-404", mock.Anything).
		Return(domain.ErrTaskNotFound).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/tasks/update/t-404", strings.NewReader(`{"title":"A","description":"B","status":"New"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

// Update is the one operation that reveals a task exists but belongs to
// someone else: it answers 401 where read and delete answer 404.
func TestTaskHandler_UpdateTask_ForeignOwner(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, "u-2", "t-1", mock.Anything).
		Return(domain.ErrTaskNotOwned).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/tasks/update/t-1", strings.NewReader(`{"title":"A","description":"B","status":"New"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-2"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User not authorized", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, "u-1", "t-1", domain.UpdateTaskInput{
		Title:       "new title",
		Description: "new description",
		Status:      domain.TaskStatusCompleted,
	}).Return(nil).Once()
	router, tokens := newTasksRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/tasks/update/t-1", strings.NewReader(`{"title":"new title","description":"new description","status":"Completed"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set(middleware.TokenHeader, issueToken(t, tokens, "u-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Confirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task updated!", got.Msg)
	serviceMock.AssertExpectations(t)
}
