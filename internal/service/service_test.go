package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finboard/internal/repo"
	"github.com/GlebRadaev/finboard/internal/service/dashboardservice"
	"github.com/GlebRadaev/finboard/internal/service/expenseservice"
	"github.com/GlebRadaev/finboard/internal/service/salaryservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		SalaryRepo:  salaryservice.NewMockRepo(ctrl),
		ExpenseRepo: expenseservice.NewMockRepo(ctrl),
	}

	services := New(repos, dashboardservice.NewMockCoordinator(ctrl))

	assert.NotNil(t, services.DashboardService)
	assert.NotNil(t, services.SalaryService)
	assert.NotNil(t, services.ExpenseService)
	assert.IsType(t, &salaryservice.Service{}, services.SalaryService)
	assert.IsType(t, &expenseservice.Service{}, services.ExpenseService)
}
