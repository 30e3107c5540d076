package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhive/internal/adapter/http/dto"
	"taskhive/internal/adapter/http/mapper"
	"taskhive/internal/adapter/http/middleware"
	"taskhive/internal/core/domain"
	"taskhive/internal/core/ports"
	"taskhive/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) AddTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TaskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	_, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetUserID(c), domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Confirmation{Msg: apierrors.GetTransMsg(apierrors.MsgTaskAdded, lang)})
}

// GetTask scopes the lookup by owner: a task belonging to someone else is
// reported exactly like a missing one.
func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFoundOrNotOwned, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFoundOrNotOwned, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Confirmation{Msg: apierrors.GetTransMsg(apierrors.MsgTaskDeleted, lang)})
}

// UpdateTask answers 404 for a missing task but 401 for a foreign one,
// unlike GetTask/DeleteTask. The asymmetry is inherited from the web
// client's contract and is covered by tests; do not unify it here.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TaskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrTaskNotOwned) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotTaskOwner, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.Confirmation{Msg: apierrors.GetTransMsg(apierrors.MsgTaskUpdated, lang)})
}
