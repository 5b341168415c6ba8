package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/dto"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/internal/service/taskservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

//go:generate mockgen -source=tasks.go -destination=mock_tasks.go -package=tasks

type Service interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CompleteTask(ctx context.Context, accountID, taskID int) (int64, *domain.Account, error)
	ApplyPromoCode(ctx context.Context, accountID int, code string) (int64, error)

	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	CreateTasks(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id int) error

	CreateDailyTask(ctx context.Context, task *domain.DailyTask) (*domain.DailyTask, error)
	UpdateDailyTask(ctx context.Context, task *domain.DailyTask) error
	DeleteDailyTask(ctx context.Context, id int) error
	ListDailyTasks(ctx context.Context, page, limit int) ([]domain.DailyTask, error)

	CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List godoc
//
//	@Summary		List active one-off tasks
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskResponseDTO	"Active tasks"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/tasks [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	taskList, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TaskResponseDTO, len(taskList))
	for i, t := range taskList {
		response[i] = toTaskDTO(&t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Complete godoc
//
//	@Summary		Complete a one-off task
//	@Description	Credits the task reward. A task pays out once per account.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int							true	"Task ID"
//	@Success		200		{object}	dto.CompleteTaskResponseDTO	"Task completed"
//	@Failure		400		{object}	utils.Response				"Invalid task id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Task not found"
//	@Failure		409		{object}	utils.Response				"Task already completed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tasks/{taskID}/complete [post]
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	reward, account, err := h.taskService.CompleteTask(r.Context(), accountID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, taskservice.ErrTaskAlreadyCompleted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteTaskResponseDTO{
		Points:     reward,
		NewBalance: account.Balance,
	})
}

// ApplyPromo godoc
//
//	@Summary		Redeem a promo code
//	@Description	Requires every active one-off task to be completed first; a code redeems once per account.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyPromoRequestDTO	true	"Promo payload"
//	@Success		200		{object}	dto.ApplyPromoResponseDTO	"Promo applied"
//	@Failure		400		{object}	utils.Response				"Invalid code or tasks incomplete"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Promo not found"
//	@Failure		409		{object}	utils.Response				"Promo already redeemed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tasks/promo [post]
func (h *TaskHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.ApplyPromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	boost, err := h.taskService.ApplyPromoCode(r.Context(), accountID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrInvalidPromoCode), errors.Is(err, taskservice.ErrTasksIncomplete):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, taskservice.ErrPromoNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, taskservice.ErrPromoUsed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApplyPromoResponseDTO{PointsBoost: boost})
}

// CreateTask godoc
//
//	@Summary		Create a one-off task
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TaskRequestDTO	true	"Task payload"
//	@Success		201		{object}	dto.TaskResponseDTO	"Task created"
//	@Failure		400		{object}	utils.Response		"Invalid payload"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.taskService.CreateTask(r.Context(), taskFromDTO(&req, 0))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTaskDTO(created))
}

// CreateTasks godoc
//
//	@Summary		Create a batch of one-off tasks
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkTasksRequestDTO	true	"Tasks payload"
//	@Success		201		{array}		dto.TaskResponseDTO		"Tasks created"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/tasks/bulk [post]
func (h *TaskHandler) CreateTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkTasksRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Tasks) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "tasks list is empty")
		return
	}

	taskList := make([]domain.Task, len(req.Tasks))
	for i, t := range req.Tasks {
		taskList[i] = *taskFromDTO(&t, 0)
	}

	created, err := h.taskService.CreateTasks(r.Context(), taskList)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TaskResponseDTO, len(created))
	for i, t := range created {
		response[i] = toTaskDTO(&t)
	}
	utils.RespondWithJSON(w, http.StatusCreated, response)
}

// UpdateTask godoc
//
//	@Summary		Update a one-off task
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		int					true	"Task ID"
//	@Param			request	body		dto.TaskRequestDTO	true	"Task payload"
//	@Success		200		{object}	utils.Response		"Task updated"
//	@Failure		400		{object}	utils.Response		"Invalid payload"
//	@Failure		404		{object}	utils.Response		"Task not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/tasks/{taskID} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req dto.TaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.taskService.UpdateTask(r.Context(), taskFromDTO(&req, taskID)); err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "task updated"})
}

// DeleteTask godoc
//
//	@Summary		Delete a one-off task
//	@Tags			Admin
//	@Produce		json
//	@Param			taskID	path		int				true	"Task ID"
//	@Success		200		{object}	utils.Response	"Task deleted"
//	@Failure		400		{object}	utils.Response	"Invalid task id"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks/{taskID} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "task deleted"})
}

// ListDailyTasks godoc
//
//	@Summary		List daily task catalog entries
//	@Tags			Daily
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int							false	"Page number"
//	@Param			limit	query		int							false	"Page size"
//	@Success		200		{array}		dto.DailyTaskResponseDTO	"Daily tasks"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/daily/tasks [get]
func (h *TaskHandler) ListDailyTasks(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	taskList, err := h.taskService.ListDailyTasks(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DailyTaskResponseDTO, len(taskList))
	for i, t := range taskList {
		response[i] = toDailyTaskDTO(&t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateDailyTask godoc
//
//	@Summary		Create a daily task catalog entry
//	@Description	Reward points derive from the day number's schedule entry.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DailyTaskRequestDTO		true	"Daily task payload"
//	@Success		201		{object}	dto.DailyTaskResponseDTO	"Daily task created"
//	@Failure		400		{object}	utils.Response				"Invalid day number"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/daily-tasks [post]
func (h *TaskHandler) CreateDailyTask(w http.ResponseWriter, r *http.Request) {
	var req dto.DailyTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.taskService.CreateDailyTask(r.Context(), dailyTaskFromDTO(&req, 0))
	if err != nil {
		if errors.Is(err, taskservice.ErrInvalidDayNumber) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDailyTaskDTO(created))
}

// UpdateDailyTask godoc
//
//	@Summary		Update a daily task catalog entry
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		int						true	"Daily task ID"
//	@Param			request	body		dto.DailyTaskRequestDTO	true	"Daily task payload"
//	@Success		200		{object}	utils.Response			"Daily task updated"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		404		{object}	utils.Response			"Daily task not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/daily-tasks/{taskID} [put]
func (h *TaskHandler) UpdateDailyTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req dto.DailyTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.taskService.UpdateDailyTask(r.Context(), dailyTaskFromDTO(&req, taskID)); err != nil {
		switch {
		case errors.Is(err, taskservice.ErrInvalidDayNumber):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "daily task updated"})
}

// DeleteDailyTask godoc
//
//	@Summary		Delete a daily task catalog entry
//	@Tags			Admin
//	@Produce		json
//	@Param			taskID	path		int				true	"Daily task ID"
//	@Success		200		{object}	utils.Response	"Daily task deleted"
//	@Failure		400		{object}	utils.Response	"Invalid task id"
//	@Failure		404		{object}	utils.Response	"Daily task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/daily-tasks/{taskID} [delete]
func (h *TaskHandler) DeleteDailyTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.taskService.DeleteDailyTask(r.Context(), taskID); err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "daily task deleted"})
}

// CreatePromo godoc
//
//	@Summary		Create a promo code
//	@Description	The code must pass Luhn checksum validation.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePromoRequestDTO	true	"Promo payload"
//	@Success		201		{object}	utils.Response				"Promo created"
//	@Failure		400		{object}	utils.Response				"Invalid code"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/promo [post]
func (h *TaskHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.taskService.CreatePromo(r.Context(), &domain.PromoCode{
		Code:     req.Code,
		Points:   req.Points,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, taskservice.ErrInvalidPromoCode) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "promo code created"})
}

func taskFromDTO(req *dto.TaskRequestDTO, id int) *domain.Task {
	return &domain.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
		Link:        req.Link,
		IsActive:    req.IsActive,
	}
}

func toTaskDTO(t *domain.Task) dto.TaskResponseDTO {
	return dto.TaskResponseDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Points:      t.Points,
		Link:        t.Link,
		IsActive:    t.IsActive,
	}
}

func dailyTaskFromDTO(req *dto.DailyTaskRequestDTO, id int) *domain.DailyTask {
	return &domain.DailyTask{
		ID:          id,
		Topic:       req.Topic,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DayNumber:   req.DayNumber,
		IsActive:    req.IsActive,
		Link:        req.Link,
	}
}

func toDailyTaskDTO(t *domain.DailyTask) dto.DailyTaskResponseDTO {
	return dto.DailyTaskResponseDTO{
		ID:          t.ID,
		Topic:       t.Topic,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		DayNumber:   t.DayNumber,
		Points:      t.Points,
		IsActive:    t.IsActive,
		Link:        t.Link,
	}
}
