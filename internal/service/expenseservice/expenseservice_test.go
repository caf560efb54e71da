package expenseservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/refresh"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(repo, notifier)
	service.now = func() time.Time { return now }
	return service, repo, notifier
}

func validExpense() *domain.Expense {
	return &domain.Expense{
		Type:        " Vehicle ",
		RecipientID: "v1",
		Amount:      domain.NewAmount(150),
		Category:    "fuel",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(e *domain.Expense)
		expectErr bool
	}{
		{name: "Valid", mutate: func(*domain.Expense) {}},
		{name: "Employee type", mutate: func(e *domain.Expense) { e.Type = "employee" }},
		{name: "Missing type", mutate: func(e *domain.Expense) { e.Type = "" }, expectErr: true},
		{name: "Unknown type", mutate: func(e *domain.Expense) { e.Type = "office" }, expectErr: true},
		{name: "Missing recipient", mutate: func(e *domain.Expense) { e.RecipientID = " " }, expectErr: true},
		{name: "Missing amount", mutate: func(e *domain.Expense) { e.Amount = domain.Amount{} }, expectErr: true},
		{name: "Negative amount", mutate: func(e *domain.Expense) { e.Amount = domain.NewAmount(-3) }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := validExpense()
			tt.mutate(expense)

			err := Validate(expense)

			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidExpense)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	service, repo, notifier := NewMock(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Trigger(refresh.TriggerMutation)

	expense, err := service.Create(context.Background(), validExpense())

	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, domain.ExpenseTypeVehicle, expense.Type)
	assert.Equal(t, now, expense.CreatedAt)
	assert.Equal(t, now, expense.Date.Time)
}

func TestService_CreateKeepsDate(t *testing.T) {
	service, repo, notifier := NewMock(t)
	date := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Trigger(refresh.TriggerMutation)

	input := validExpense()
	input.Date = domain.NewTimestamp(date)
	expense, err := service.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, date, expense.Date.Time)
}

func TestService_CreateErrors(t *testing.T) {
	service, repo, _ := NewMock(t)

	invalidInput := validExpense()
	invalidInput.Type = "office"
	_, err := service.Create(context.Background(), invalidInput)
	assert.ErrorIs(t, err, ErrInvalidExpense)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	_, err = service.Create(context.Background(), validExpense())
	assert.EqualError(t, err, "db down")
}

func TestService_GetAndList(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
	repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrExpenseNotFound)

	_, err = service.List(context.Background())
	assert.Error(t, err)
}

func TestService_Update(t *testing.T) {
	service, repo, notifier := NewMock(t)
	expense := validExpense()
	expense.ID = "x1"

	repo.EXPECT().Update(gomock.Any(), expense).Return(true, nil)
	notifier.EXPECT().Trigger(refresh.TriggerMutation)
	repo.EXPECT().FindByID(gomock.Any(), "x1").Return(expense, nil)

	updated, err := service.Update(context.Background(), expense)

	require.NoError(t, err)
	assert.Equal(t, "x1", updated.ID)
}

func TestService_UpdateNotFound(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := service.Update(context.Background(), validExpense())

	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestService_Delete(t *testing.T) {
	service, repo, notifier := NewMock(t)

	repo.EXPECT().Delete(gomock.Any(), "x1").Return(true, nil)
	notifier.EXPECT().Trigger(refresh.TriggerMutation)
	repo.EXPECT().Delete(gomock.Any(), "x2").Return(false, errors.New("db down"))

	assert.NoError(t, service.Delete(context.Background(), "x1"))
	assert.Error(t, service.Delete(context.Background(), "x2"))
}
