package daily

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/dto"
	"github.com/tonance/tonance/internal/service/streakservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

func NewMock(t *testing.T) (*DailyHandler, *MockStreakService) {
	ctrl := gomock.NewController(t)
	service := NewMockStreakService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, url string, accountID int) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	ctx := context.WithValue(req.Context(), auth.AccountIDKey, accountID)
	return req.WithContext(ctx)
}

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		taskID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Task completed",
			taskID: "12",
			prepareMock: func() {
				service.EXPECT().CompleteDailyTask(gomock.Any(), 1, 12).Return(&streakservice.CompletionResult{
					StreakDay:     3,
					Points:        15000,
					TotalBalance:  60000,
					HighestStreak: 5,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Already completed today",
			taskID: "12",
			prepareMock: func() {
				service.EXPECT().CompleteDailyTask(gomock.Any(), 1, 12).
					Return(nil, streakservice.ErrAlreadyCompletedToday)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "daily task already completed today",
		},
		{
			name:   "Task not found",
			taskID: "99",
			prepareMock: func() {
				service.EXPECT().CompleteDailyTask(gomock.Any(), 1, 99).
					Return(nil, streakservice.ErrTaskNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "daily task not found",
		},
		{
			name:          "Invalid task id",
			taskID:        "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid task id",
		},
		{
			name:   "Internal error",
			taskID: "12",
			prepareMock: func() {
				service.EXPECT().CompleteDailyTask(gomock.Any(), 1, 12).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/daily/"+tt.taskID+"/complete", 1)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("taskID", tt.taskID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.Complete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.CompleteDailyResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 3, resp.StreakDay)
				assert.Equal(t, int64(15000), resp.Points)
				assert.Equal(t, int64(60000), resp.TotalBalance)
				assert.Equal(t, 5, resp.HighestStreak)
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	lastCheckIn := time.Now().Add(-20 * time.Hour)

	service.EXPECT().GetStreakStatus(gomock.Any(), 1).Return(&streakservice.StreakStatus{
		CurrentStreak:  3,
		HighestStreak:  5,
		LastCheckIn:    &lastCheckIn,
		IsActive:       true,
		NextPoints:     20000,
		NextMilestone:  7,
		DaysUntilBonus: 4,
		BonusLabel:     "7-Day Achiever",
	}, nil)

	req := authedRequest("GET", "/api/daily/streak", 1)
	rr := httptest.NewRecorder()

	handler.Status(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.StreakStatusResponseDTO
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.CurrentStreak)
	assert.True(t, resp.IsActive)
	assert.Equal(t, int64(20000), resp.NextPoints)
	assert.Equal(t, 7, resp.NextMilestone)
	assert.Equal(t, 4, resp.DaysUntilMilestone)
	assert.Equal(t, "7-Day Achiever", resp.BonusLabel)
}

func TestHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	completedAt := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Second page of history",
			url:  "/api/daily/history?page=2&limit=10",
			prepareMock: func() {
				service.EXPECT().GetCompletionHistory(gomock.Any(), 1, 2, 10).
					Return(&streakservice.CompletionHistory{
						Completions: []domain.DailyCompletion{
							{DailyTaskID: 12, StreakDay: 11, Points: 55000, CompletedAt: completedAt},
						},
						Total: 27,
						Page:  2,
						Limit: 10,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service error",
			url:  "/api/daily/history",
			prepareMock: func() {
				service.EXPECT().GetCompletionHistory(gomock.Any(), 1, 0, 0).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", tt.url, 1)
			rr := httptest.NewRecorder()

			handler.History(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.CompletionHistoryResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp.Completions, 1)
				assert.Equal(t, 12, resp.Completions[0].DailyTaskID)
				assert.Equal(t, 2, resp.Pagination.CurrentPage)
				assert.Equal(t, 3, resp.Pagination.TotalPages)
				assert.Equal(t, 27, resp.Pagination.TotalItems)
			}
		})
	}
}
