package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tonance/tonance/docs"
	"github.com/tonance/tonance/internal/config"
	dailyhandlers "github.com/tonance/tonance/internal/handlers/daily"
	earninghandlers "github.com/tonance/tonance/internal/handlers/earnings"
	stakehandlers "github.com/tonance/tonance/internal/handlers/stakes"
	taskhandlers "github.com/tonance/tonance/internal/handlers/tasks"
	userhandlers "github.com/tonance/tonance/internal/handlers/users"
	"github.com/tonance/tonance/internal/service"
	"github.com/tonance/tonance/pkg/auth"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	Rank(w http.ResponseWriter, r *http.Request)
}

type EarningHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type DailyHandler interface {
	Complete(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type StakeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Unstake(w http.ResponseWriter, r *http.Request)
	Active(w http.ResponseWriter, r *http.Request)
	Claimable(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	ApplyPromo(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	CreateTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
	ListDailyTasks(w http.ResponseWriter, r *http.Request)
	CreateDailyTask(w http.ResponseWriter, r *http.Request)
	UpdateDailyTask(w http.ResponseWriter, r *http.Request)
	DeleteDailyTask(w http.ResponseWriter, r *http.Request)
	CreatePromo(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler    UserHandler
	EarningHandler EarningHandler
	DailyHandler   DailyHandler
	StakeHandler   StakeHandler
	TaskHandler    TaskHandler

	adminKeyHash string
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		UserHandler:    userhandlers.New(s.AccountService),
		EarningHandler: earninghandlers.New(s.EarningService),
		DailyHandler:   dailyhandlers.New(s.StreakService),
		StakeHandler:   stakehandlers.New(s.StakeService),
		TaskHandler:    taskhandlers.New(s.TaskService),
		adminKeyHash:   cfg.AdminKeyHash,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.UserHandler.Register)
		r.Post("/user/login", h.UserHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/user", func(r chi.Router) {
				r.Get("/", h.UserHandler.GetDetails)
				r.Get("/referrals", h.UserHandler.GetReferrals)
			})
			r.Route("/earn", func(r chi.Router) {
				r.Post("/start", h.EarningHandler.Start)
				r.Post("/claim", h.EarningHandler.Claim)
				r.Get("/status", h.EarningHandler.Status)
			})
			r.Route("/daily", func(r chi.Router) {
				r.Get("/tasks", h.TaskHandler.ListDailyTasks)
				r.Get("/streak", h.DailyHandler.Status)
				r.Get("/history", h.DailyHandler.History)
				r.Post("/{taskID}/complete", h.DailyHandler.Complete)
			})
			r.Route("/stakes", func(r chi.Router) {
				r.Post("/", h.StakeHandler.Create)
				r.Get("/", h.StakeHandler.Active)
				r.Get("/claimable", h.StakeHandler.Claimable)
				r.Post("/{stakeID}/claim", h.StakeHandler.Claim)
				r.Post("/{stakeID}/unstake", h.StakeHandler.Unstake)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.TaskHandler.List)
				r.Post("/promo", h.TaskHandler.ApplyPromo)
				r.Post("/{taskID}/complete", h.TaskHandler.Complete)
			})
			r.Route("/leaderboard", func(r chi.Router) {
				r.Get("/", h.UserHandler.Leaderboard)
				r.Get("/rank", h.UserHandler.Rank)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminMiddleware(h.adminKeyHash))

			r.Post("/accounts/{accountID}/role", h.UserHandler.SetRole)
			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.TaskHandler.CreateTask)
				r.Post("/bulk", h.TaskHandler.CreateTasks)
				r.Put("/{taskID}", h.TaskHandler.UpdateTask)
				r.Delete("/{taskID}", h.TaskHandler.DeleteTask)
			})
			r.Route("/daily-tasks", func(r chi.Router) {
				r.Post("/", h.TaskHandler.CreateDailyTask)
				r.Put("/{taskID}", h.TaskHandler.UpdateDailyTask)
				r.Delete("/{taskID}", h.TaskHandler.DeleteDailyTask)
			})
			r.Post("/promo", h.TaskHandler.CreatePromo)
		})
	})

	return r
}
