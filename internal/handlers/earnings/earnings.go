package earnings

import (
	"context"
	"errors"
	"net/http"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/dto"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/internal/service/earningservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

//go:generate mockgen -source=earnings.go -destination=mock_earnings.go -package=earnings

type Service interface {
	StartEarning(ctx context.Context, accountID int) (*domain.Account, error)
	Claim(ctx context.Context, accountID int) (int64, *domain.Account, error)
	Status(ctx context.Context, accountID int) (*earningservice.Status, error)
}

type EarningHandler struct {
	earningService Service
}

func New(earningService Service) *EarningHandler {
	return &EarningHandler{
		earningService: earningService,
	}
}

// Start godoc
//
//	@Summary		Start the accrual timer
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StartEarningResponseDTO	"Earning started"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Account not found"
//	@Failure		409	{object}	utils.Response				"Already earning"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/earn/start [post]
func (h *EarningHandler) Start(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	account, err := h.earningService.StartEarning(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, earningservice.ErrAlreadyEarning):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StartEarningResponseDTO{
		IsEarning:        account.IsEarning,
		EarningStartedAt: account.EarningStartedAt,
	})
}

// Claim godoc
//
//	@Summary		Claim accrued earnings
//	@Description	Credits the accrued amount and resets the timer to idle.
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ClaimResponseDTO	"Earnings claimed"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		409	{object}	utils.Response			"Nothing to claim"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/earn/claim [post]
func (h *EarningHandler) Claim(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	claimed, account, err := h.earningService.Claim(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, earningservice.ErrNothingToClaim):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		ClaimedAmount: claimed,
		NewBalance:    account.Balance,
		ClaimStreak:   account.ClaimStreak,
	})
}

// Status godoc
//
//	@Summary		Current accrual state
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EarnStatusResponseDTO	"Accrual status"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Account not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/earn/status [get]
func (h *EarningHandler) Status(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	status, err := h.earningService.Status(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EarnStatusResponseDTO{
		IsEarning:        status.IsEarning,
		EarningStartedAt: status.EarningStartedAt,
		Accrued:          status.Accrued,
		Role:             string(status.Role),
		RatePerHour:      status.RatePerHour,
		ClaimStreak:      status.ClaimStreak,
		LastClaimAt:      status.LastClaimAt,
	})
}
