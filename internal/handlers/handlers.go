package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/finboard/docs"
	"github.com/GlebRadaev/finboard/internal/config"
	dashboardhandlers "github.com/GlebRadaev/finboard/internal/handlers/dashboard"
	expenseshandlers "github.com/GlebRadaev/finboard/internal/handlers/expenses"
	salarieshandlers "github.com/GlebRadaev/finboard/internal/handlers/salaries"
	"github.com/GlebRadaev/finboard/internal/service"
	"github.com/GlebRadaev/finboard/pkg/auth"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetTaxReport(w http.ResponseWriter, r *http.Request)
	ExportTaxReport(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	SetVisibility(w http.ResponseWriter, r *http.Request)
	Notify(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type SalaryHandler interface {
	ListSalaries(w http.ResponseWriter, r *http.Request)
	GetSalary(w http.ResponseWriter, r *http.Request)
	CreateSalary(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
	DeleteSalary(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandler interface {
	ListExpenses(w http.ResponseWriter, r *http.Request)
	GetExpense(w http.ResponseWriter, r *http.Request)
	CreateExpense(w http.ResponseWriter, r *http.Request)
	UpdateExpense(w http.ResponseWriter, r *http.Request)
	DeleteExpense(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	DashboardHandler DashboardHandler
	SalaryHandler    SalaryHandler
	ExpenseHandler   ExpenseHandler

	jwtService  auth.JWTServiceInterface
	corsOrigins []string
	notifyToken string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, cfg *config.Config) *Handlers {
	return &Handlers{
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		SalaryHandler:    salarieshandlers.New(s.SalaryService),
		ExpenseHandler:   expenseshandlers.New(s.ExpenseService),
		jwtService:       jwtService,
		corsOrigins:      cfg.CORSOrigins,
		notifyToken:      cfg.NotifyToken,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", auth.NotifyTokenHeader},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.DashboardHandler.Health)
		r.With(auth.SharedSecret(auth.NotifyTokenHeader, h.notifyToken)).Post("/notify", h.DashboardHandler.Notify)

		r.Route("/finance", func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Get("/dashboard", h.DashboardHandler.GetDashboard)
			r.Route("/taxes", func(r chi.Router) {
				r.Get("/", h.DashboardHandler.GetTaxReport)
				r.Get("/export", h.DashboardHandler.ExportTaxReport)
			})
			r.Post("/refresh", h.DashboardHandler.Refresh)
			r.Put("/visibility", h.DashboardHandler.SetVisibility)

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", h.SalaryHandler.ListSalaries)
				r.Post("/", h.SalaryHandler.CreateSalary)
				r.Get("/{id}", h.SalaryHandler.GetSalary)
				r.Put("/{id}", h.SalaryHandler.UpdateSalary)
				r.Delete("/{id}", h.SalaryHandler.DeleteSalary)
			})
			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", h.ExpenseHandler.ListExpenses)
				r.Post("/", h.ExpenseHandler.CreateExpense)
				r.Get("/{id}", h.ExpenseHandler.GetExpense)
				r.Put("/{id}", h.ExpenseHandler.UpdateExpense)
				r.Delete("/{id}", h.ExpenseHandler.DeleteExpense)
			})
		})
	})

	return r
}
