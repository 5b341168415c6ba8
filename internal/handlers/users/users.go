package users

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/dto"
	accountservice "github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/pkg/auth"
	"github.com/tonance/tonance/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

// claimCooldown is how long the hourly-claim timer runs after a claim.
const claimCooldown = time.Hour

type Service interface {
	Register(ctx context.Context, telegramID, username, referralCode string) (*domain.Account, []domain.ReferralBonus, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	GetReferrals(ctx context.Context, id int) ([]domain.Account, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*domain.Account, error)
	SetRole(ctx context.Context, accountID int, role domain.Role, durationDays int) error
	GenerateToken(accountID int) (string, error)
	Leaderboard(ctx context.Context, limit int, role domain.Role) ([]domain.Account, error)
	Rank(ctx context.Context, accountID int) (int, error)
}

type UserHandler struct {
	accountService Service
}

func New(accountService Service) *UserHandler {
	return &UserHandler{
		accountService: accountService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an account for a telegram user, pay the signup bonus and distribute referral bonuses up the referrer chain.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.RegisterResponseDTO	"Account created"
//	@Failure		400		{object}	utils.Response			"Invalid payload or referral code"
//	@Failure		409		{object}	utils.Response			"Account already exists"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TelegramUserID == "" || req.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "telegram_user_id and username are required")
		return
	}

	account, bonuses, err := h.accountService.Register(r.Context(), req.TelegramUserID, req.Username, req.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrInvalidReferrer):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.accountService.GenerateToken(account.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	bonusDTOs := make([]dto.ReferralBonusDTO, len(bonuses))
	for i, b := range bonuses {
		bonusDTOs[i] = dto.ReferralBonusDTO{AccountID: b.AccountID, Level: b.Level, Amount: b.Amount}
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Account:     toAccountDTO(account, time.Now()),
		Token:       token,
		BonusesPaid: bonusDTOs,
	})
}

// Login godoc
//
//	@Summary		Issue a token for an existing account
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.LoginResponseDTO	"Token issued"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TelegramUserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "telegram_user_id is required")
		return
	}

	account, err := h.accountService.GetByTelegramID(r.Context(), req.TelegramUserID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.accountService.GenerateToken(account.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}

// GetDetails godoc
//
//	@Summary		Get the authenticated account
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Account details"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user [get]
func (h *UserHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account, time.Now()))
}

// GetReferrals godoc
//
//	@Summary		List accounts referred by the authenticated account
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralDTO	"Referrals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *UserHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	referrals, err := h.accountService.GetReferrals(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ReferralDTO, len(referrals))
	for i, ref := range referrals {
		response[i] = dto.ReferralDTO{Username: ref.Username, CreatedAt: ref.CreatedAt}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetRole godoc
//
//	@Summary		Assign an earnings multiplier tier to an account
//	@Description	Set a permanent role, or a time-limited one when duration_days is given.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.SetRoleRequestDTO	true	"Role payload"
//	@Success		200			{object}	utils.Response			"Role updated"
//	@Failure		400			{object}	utils.Response			"Invalid role"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/role [post]
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req dto.SetRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.accountService.SetRole(r.Context(), accountID, domain.Role(req.Role), req.DurationDays)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrInvalidRole):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "role updated"})
}

// Leaderboard godoc
//
//	@Summary		Top accounts by lifetime earnings
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			role	query		string						false	"Filter by role"
//	@Success		200		{array}		dto.LeaderboardEntryDTO		"Leaderboard"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.URL.Query().Get("role"))

	accounts, err := h.accountService.Leaderboard(r.Context(), 10, role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(accounts))
	for i, acc := range accounts {
		response[i] = dto.LeaderboardEntryDTO{
			Rank:          i + 1,
			Username:      acc.Username,
			Role:          string(acc.Role),
			TotalEarnings: acc.TotalEarnings,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Rank godoc
//
//	@Summary		The authenticated account's leaderboard position
//	@Tags			Leaderboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RankResponseDTO	"Rank"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"Account not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/leaderboard/rank [get]
func (h *UserHandler) Rank(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	rank, err := h.accountService.Rank(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RankResponseDTO{
		Rank:          rank,
		Username:      account.Username,
		TotalEarnings: account.TotalEarnings,
	})
}

func toAccountDTO(acc *domain.Account, now time.Time) dto.AccountResponseDTO {
	var secondsUntilNextClaim int64
	if acc.LastClaimAt != nil {
		remaining := claimCooldown - now.Sub(*acc.LastClaimAt)
		if remaining > 0 {
			secondsUntilNextClaim = int64(math.Ceil(remaining.Seconds()))
		}
	}
	return dto.AccountResponseDTO{
		ID:                    acc.ID,
		TelegramUserID:        acc.TelegramID,
		Username:              acc.Username,
		Role:                  string(acc.Role),
		Balance:               acc.Balance,
		TotalEarnings:         acc.TotalEarnings,
		IsEarning:             acc.IsEarning,
		ClaimStreak:           acc.ClaimStreak,
		LastClaimAt:           acc.LastClaimAt,
		SecondsUntilNextClaim: secondsUntilNextClaim,
		CreatedAt:             acc.CreatedAt,
	}
}
