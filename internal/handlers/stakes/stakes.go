package stakes

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
	"github.com/tonance/tonance/internal/service/stakeservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

//go:generate mockgen -source=stakes.go -destination=mock_stakes.go -package=stakes

type Service interface {
	CreateStake(ctx context.Context, accountID int, amount int64, periodDays int) (*domain.Stake, error)
	ClaimStake(ctx context.Context, accountID, stakeID int) (*stakeservice.Payout, error)
	Unstake(ctx context.Context, accountID, stakeID int) (*stakeservice.Payout, error)
	GetActiveStakes(ctx context.Context, accountID int) ([]domain.Stake, error)
	GetClaimableStakes(ctx context.Context, accountID int) ([]domain.Stake, error)
}

type StakeHandler struct {
	stakeService Service
}

func New(stakeService Service) *StakeHandler {
	return &StakeHandler{
		stakeService: stakeService,
	}
}

// Create godoc
//
//	@Summary		Lock points in a stake
//	@Description	Debits the stake amount from the balance and opens a stake for the given period.
//	@Tags			Stakes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateStakeRequestDTO	true	"Stake payload"
//	@Success		201		{object}	dto.StakeResponseDTO		"Stake created"
//	@Failure		400		{object}	utils.Response				"Invalid amount or period"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/stakes [post]
func (h *StakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.CreateStakeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stake, err := h.stakeService.CreateStake(r.Context(), accountID, req.Amount, req.PeriodDays)
	if err != nil {
		switch {
		case errors.Is(err, stakeservice.ErrInvalidAmount), errors.Is(err, stakeservice.ErrInvalidPeriod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, stakeservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toStakeDTO(stake))
}

// Claim godoc
//
//	@Summary		Claim a matured stake
//	@Description	Returns the principal plus interest to the balance.
//	@Tags			Stakes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			stakeID	path		int							true	"Stake ID"
//	@Success		200		{object}	dto.StakePayoutResponseDTO	"Stake claimed"
//	@Failure		400		{object}	utils.Response				"Invalid stake id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Stake not found"
//	@Failure		409		{object}	utils.Response				"Stake not active or not matured"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/stakes/{stakeID}/claim [post]
func (h *StakeHandler) Claim(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	stakeID, err := strconv.Atoi(chi.URLParam(r, "stakeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid stake id")
		return
	}

	payout, err := h.stakeService.ClaimStake(r.Context(), accountID, stakeID)
	if err != nil {
		h.respondStakeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// Unstake godoc
//
//	@Summary		Close a stake early
//	@Description	Returns the principal; interest is paid only when the stake already matured.
//	@Tags			Stakes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			stakeID	path		int							true	"Stake ID"
//	@Success		200		{object}	dto.StakePayoutResponseDTO	"Stake closed"
//	@Failure		400		{object}	utils.Response				"Invalid stake id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Stake not found"
//	@Failure		409		{object}	utils.Response				"Stake not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/stakes/{stakeID}/unstake [post]
func (h *StakeHandler) Unstake(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	stakeID, err := strconv.Atoi(chi.URLParam(r, "stakeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid stake id")
		return
	}

	payout, err := h.stakeService.Unstake(r.Context(), accountID, stakeID)
	if err != nil {
		h.respondStakeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// Active godoc
//
//	@Summary		List open stakes
//	@Tags			Stakes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.StakeResponseDTO	"Active stakes"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/stakes [get]
func (h *StakeHandler) Active(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	stakes, err := h.stakeService.GetActiveStakes(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStakeDTOs(stakes))
}

// Claimable godoc
//
//	@Summary		List matured stakes ready to claim
//	@Tags			Stakes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.StakeResponseDTO	"Claimable stakes"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/stakes/claimable [get]
func (h *StakeHandler) Claimable(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	stakes, err := h.stakeService.GetClaimableStakes(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStakeDTOs(stakes))
}

func (h *StakeHandler) respondStakeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stakeservice.ErrStakeNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, stakeservice.ErrStakeNotActive), errors.Is(err, stakeservice.ErrStakeNotMatured):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, accountservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toStakeDTO(s *domain.Stake) dto.StakeResponseDTO {
	return dto.StakeResponseDTO{
		ID:           s.ID,
		Amount:       s.Amount,
		PeriodDays:   s.PeriodDays,
		InterestRate: s.InterestRate,
		Status:       s.Status,
		StartedAt:    s.StartedAt,
		MaturesAt:    s.MaturesAt,
	}
}

func toStakeDTOs(stakes []domain.Stake) []dto.StakeResponseDTO {
	response := make([]dto.StakeResponseDTO, len(stakes))
	for i := range stakes {
		response[i] = toStakeDTO(&stakes[i])
	}
	return response
}

func toPayoutDTO(p *stakeservice.Payout) dto.StakePayoutResponseDTO {
	return dto.StakePayoutResponseDTO{
		Principal:   p.Principal,
		Interest:    p.Interest,
		TotalAmount: p.Total,
	}
}
