package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finboard/internal/pg"
	expenserepo "github.com/GlebRadaev/finboard/internal/repo/expense-repo"
	salaryrepo "github.com/GlebRadaev/finboard/internal/repo/salary-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	mockTxManager := pg.NewMockTXManager(ctrl)

	return New(mockDB, mockTxManager), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.SalaryRepo)
	assert.NotNil(t, repo.ExpenseRepo)

	assert.IsType(t, &salaryrepo.Repository{}, repo.SalaryRepo)
	assert.IsType(t, &expenserepo.Repository{}, repo.ExpenseRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
