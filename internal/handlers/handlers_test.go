package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tonance/tonance/internal/config"
	"github.com/tonance/tonance/internal/handlers/daily"
	"github.com/tonance/tonance/internal/handlers/earnings"
	"github.com/tonance/tonance/internal/handlers/stakes"
	"github.com/tonance/tonance/internal/handlers/tasks"
	"github.com/tonance/tonance/internal/handlers/users"
	"github.com/tonance/tonance/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AccountService: users.NewMockService(ctrl),
		EarningService: earnings.NewMockService(ctrl),
		StreakService:  daily.NewMockStreakService(ctrl),
		StakeService:   stakes.NewMockService(ctrl),
		TaskService:    tasks.NewMockService(ctrl),
	}

	h := New(services, &config.Config{})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserHandler := NewMockUserHandler(ctrl)
	mockEarningHandler := NewMockEarningHandler(ctrl)
	mockDailyHandler := NewMockDailyHandler(ctrl)
	mockStakeHandler := NewMockStakeHandler(ctrl)
	mockTaskHandler := NewMockTaskHandler(ctrl)

	mockUserHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		UserHandler:    mockUserHandler,
		EarningHandler: mockEarningHandler,
		DailyHandler:   mockDailyHandler,
		StakeHandler:   mockStakeHandler,
		TaskHandler:    mockTaskHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user", http.StatusUnauthorized},
		{"GET", "/api/user/referrals", http.StatusUnauthorized},
		{"POST", "/api/earn/start", http.StatusUnauthorized},
		{"POST", "/api/earn/claim", http.StatusUnauthorized},
		{"GET", "/api/earn/status", http.StatusUnauthorized},
		{"GET", "/api/daily/streak", http.StatusUnauthorized},
		{"GET", "/api/daily/history", http.StatusUnauthorized},
		{"POST", "/api/daily/12/complete", http.StatusUnauthorized},
		{"POST", "/api/stakes", http.StatusUnauthorized},
		{"GET", "/api/stakes", http.StatusUnauthorized},
		{"GET", "/api/stakes/claimable", http.StatusUnauthorized},
		{"POST", "/api/stakes/7/claim", http.StatusUnauthorized},
		{"POST", "/api/stakes/7/unstake", http.StatusUnauthorized},
		{"GET", "/api/tasks", http.StatusUnauthorized},
		{"POST", "/api/tasks/promo", http.StatusUnauthorized},
		{"GET", "/api/leaderboard", http.StatusUnauthorized},
		{"GET", "/api/leaderboard/rank", http.StatusUnauthorized},
		{"POST", "/api/admin/tasks", http.StatusForbidden},
		{"POST", "/api/admin/daily-tasks", http.StatusForbidden},
		{"POST", "/api/admin/promo", http.StatusForbidden},
		{"POST", "/api/admin/accounts/1/role", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
