package service

import (
	"github.com/GlebRadaev/finboard/internal/handlers/dashboard"
	"github.com/GlebRadaev/finboard/internal/handlers/expenses"
	"github.com/GlebRadaev/finboard/internal/handlers/salaries"

	"github.com/GlebRadaev/finboard/internal/repo"
	dashboardservice "github.com/GlebRadaev/finboard/internal/service/dashboardservice"
	expenseservice "github.com/GlebRadaev/finboard/internal/service/expenseservice"
	salaryservice "github.com/GlebRadaev/finboard/internal/service/salaryservice"
)

type Services struct {
	DashboardService dashboard.Service
	SalaryService    salaries.Service
	ExpenseService   expenses.Service
}

// New builds the services on top of the repositories. Mutations notify the
// coordinator so the dashboard picks them up on the next refresh.
func New(repo *repo.Repositories, coordinator dashboardservice.Coordinator) *Services {
	return &Services{
		DashboardService: dashboardservice.New(coordinator),
		SalaryService:    salaryservice.New(repo.SalaryRepo, coordinator),
		ExpenseService:   expenseservice.New(repo.ExpenseRepo, coordinator),
	}
}
