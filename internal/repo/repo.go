package repo

import (
	"github.com/GlebRadaev/finboard/internal/pg"
	expenserepo "github.com/GlebRadaev/finboard/internal/repo/expense-repo"
	salaryrepo "github.com/GlebRadaev/finboard/internal/repo/salary-repo"
	"github.com/GlebRadaev/finboard/internal/service/expenseservice"
	"github.com/GlebRadaev/finboard/internal/service/salaryservice"
)

type Repositories struct {
	SalaryRepo  salaryservice.Repo
	ExpenseRepo expenseservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		SalaryRepo:  salaryrepo.New(conn, txManager),
		ExpenseRepo: expenserepo.New(conn, txManager),
	}
}
