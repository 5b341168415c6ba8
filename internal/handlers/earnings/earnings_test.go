package earnings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/dto"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/internal/service/earningservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

func NewMock(t *testing.T) (*EarningHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, url string, accountID int) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	ctx := context.WithValue(req.Context(), auth.AccountIDKey, accountID)
	return req.WithContext(ctx)
}

func TestStartHandler(t *testing.T) {
	handler, service := NewMock(t)

	startedAt := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Earning started",
			prepareMock: func() {
				service.EXPECT().StartEarning(gomock.Any(), 1).Return(&domain.Account{
					ID:               1,
					IsEarning:        true,
					EarningStartedAt: &startedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already earning",
			prepareMock: func() {
				service.EXPECT().StartEarning(gomock.Any(), 1).Return(nil, earningservice.ErrAlreadyEarning)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "earning already started",
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().StartEarning(gomock.Any(), 1).Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "account not found",
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().StartEarning(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/earn/start", 1)
			rr := httptest.NewRecorder()

			handler.Start(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.StartEarningResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.IsEarning)
				assert.NotNil(t, resp.EarningStartedAt)
			}
		})
	}
}

func TestClaimHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Earnings claimed",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1).Return(int64(3600), &domain.Account{
					ID:          1,
					Balance:     33600,
					ClaimStreak: 4,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing to claim",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1).Return(int64(0), nil, earningservice.ErrNothingToClaim)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "nothing to claim",
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1).Return(int64(0), nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "account not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/earn/claim", 1)
			rr := httptest.NewRecorder()

			handler.Claim(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.ClaimResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(3600), resp.ClaimedAmount)
				assert.Equal(t, int64(33600), resp.NewBalance)
				assert.Equal(t, 4, resp.ClaimStreak)
			}
		})
	}
}

func TestStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	startedAt := time.Now().Add(-30 * time.Minute)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accrual in progress",
			prepareMock: func() {
				service.EXPECT().Status(gomock.Any(), 1).Return(&earningservice.Status{
					IsEarning:        true,
					EarningStartedAt: &startedAt,
					Accrued:          1800,
					Role:             domain.RoleBase,
					RatePerHour:      3600,
					ClaimStreak:      3,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account not found",
			prepareMock: func() {
				service.EXPECT().Status(gomock.Any(), 1).Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "account not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("GET", "/api/earn/status", 1)
			rr := httptest.NewRecorder()

			handler.Status(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.EarnStatusResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.IsEarning)
				assert.Equal(t, int64(1800), resp.Accrued)
				assert.Equal(t, "BASE", resp.Role)
				assert.Equal(t, int64(3600), resp.RatePerHour)
			}
		})
	}
}
