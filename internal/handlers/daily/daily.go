package daily

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tonance/tonance/internal/dto"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/internal/service/streakservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

//go:generate mockgen -source=daily.go -destination=mock_daily.go -package=daily

type StreakService interface {
	CompleteDailyTask(ctx context.Context, accountID, taskID int) (*streakservice.CompletionResult, error)
	GetStreakStatus(ctx context.Context, accountID int) (*streakservice.StreakStatus, error)
	GetCompletionHistory(ctx context.Context, accountID, page, limit int) (*streakservice.CompletionHistory, error)
}

type DailyHandler struct {
	streakService StreakService
}

func New(streakService StreakService) *DailyHandler {
	return &DailyHandler{
		streakService: streakService,
	}
}

// Complete godoc
//
//	@Summary		Complete today's daily task
//	@Description	Advances the check-in streak and credits the streak day's reward.
//	@Tags			Daily
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int								true	"Daily task ID"
//	@Success		200		{object}	dto.CompleteDailyResponseDTO	"Task completed"
//	@Failure		400		{object}	utils.Response					"Invalid task id"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Task not found"
//	@Failure		409		{object}	utils.Response					"Already completed today"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/daily/{taskID}/complete [post]
func (h *DailyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	result, err := h.streakService.CompleteDailyTask(r.Context(), accountID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, streakservice.ErrAlreadyCompletedToday):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, streakservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteDailyResponseDTO{
		StreakDay:     result.StreakDay,
		Points:        result.Points,
		TotalBalance:  result.TotalBalance,
		HighestStreak: result.HighestStreak,
	})
}

// Status godoc
//
//	@Summary		Current streak state
//	@Tags			Daily
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StreakStatusResponseDTO	"Streak status"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Account not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/daily/streak [get]
func (h *DailyHandler) Status(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	status, err := h.streakService.GetStreakStatus(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StreakStatusResponseDTO{
		CurrentStreak:      status.CurrentStreak,
		HighestStreak:      status.HighestStreak,
		LastCheckIn:        status.LastCheckIn,
		IsActive:           status.IsActive,
		NextPoints:         status.NextPoints,
		NextMilestone:      status.NextMilestone,
		DaysUntilMilestone: status.DaysUntilBonus,
		BonusLabel:         status.BonusLabel,
	})
}

// History godoc
//
//	@Summary		Paginated daily completion history
//	@Tags			Daily
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int									false	"Page number"
//	@Param			limit	query		int									false	"Page size"
//	@Success		200		{object}	dto.CompletionHistoryResponseDTO	"Completion history"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/daily/history [get]
func (h *DailyHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.streakService.GetCompletionHistory(r.Context(), accountID, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	completions := make([]dto.DailyCompletionDTO, len(history.Completions))
	for i, c := range history.Completions {
		completions[i] = dto.DailyCompletionDTO{
			DailyTaskID: c.DailyTaskID,
			StreakDay:   c.StreakDay,
			Points:      c.Points,
			CompletedAt: c.CompletedAt,
		}
	}
	totalPages := (history.Total + history.Limit - 1) / history.Limit
	utils.RespondWithJSON(w, http.StatusOK, dto.CompletionHistoryResponseDTO{
		Completions: completions,
		Pagination: dto.PaginationDTO{
			CurrentPage: history.Page,
			TotalPages:  totalPages,
			TotalItems:  history.Total,
		},
	})
}
