package salaryservice

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

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	return New(repo, notifier), repo, notifier
}

func validSalary() *domain.Salary {
	return &domain.Salary{
		Employee:      domain.EmployeeRef{ID: " e1 ", Name: "Ann"},
		BaseAmount:    domain.NewAmount(1000),
		Currency:      "usd",
		EffectiveFrom: domain.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Components: []domain.Component{
			{Type: domain.ComponentEarning, Name: "bonus", Amount: domain.NewAmount(100)},
			{Type: domain.ComponentDeduction, Name: "pf", Percentage: domain.NewAmount(12)},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *domain.Salary)
		expectErr bool
	}{
		{name: "Valid", mutate: func(*domain.Salary) {}},
		{name: "Missing employee", mutate: func(s *domain.Salary) { s.Employee.ID = "  " }, expectErr: true},
		{name: "Missing base amount", mutate: func(s *domain.Salary) { s.BaseAmount = domain.Amount{} }, expectErr: true},
		{name: "Negative base amount", mutate: func(s *domain.Salary) { s.BaseAmount = domain.NewAmount(-1) }, expectErr: true},
		{name: "Missing effective from", mutate: func(s *domain.Salary) { s.EffectiveFrom = domain.Timestamp{} }, expectErr: true},
		{
			name: "Effective to before from",
			mutate: func(s *domain.Salary) {
				s.EffectiveTo = domain.NewTimestamp(s.EffectiveFrom.AddDate(0, 0, -1))
			},
			expectErr: true,
		},
		{name: "Unknown component type", mutate: func(s *domain.Salary) { s.Components[0].Type = "perk" }, expectErr: true},
		{
			name: "Component without value",
			mutate: func(s *domain.Salary) {
				s.Components[1].Percentage = domain.Amount{}
			},
			expectErr: true,
		},
		{name: "Negative component", mutate: func(s *domain.Salary) { s.Components[0].Amount = domain.NewAmount(-5) }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary := validSalary()
			tt.mutate(salary)

			err := Validate(salary)

			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidSalary)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "e1", salary.Employee.ID)
				assert.Equal(t, "USD", salary.Currency)
			}
		})
	}
}

func TestValidate_DefaultCurrency(t *testing.T) {
	salary := validSalary()
	salary.Currency = ""

	require.NoError(t, Validate(salary))
	assert.Equal(t, DefaultCurrency, salary.Currency)
}

func TestService_Create(t *testing.T) {
	service, repo, notifier := NewMock(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Trigger(refresh.TriggerMutation)

	salary, err := service.Create(context.Background(), validSalary())

	require.NoError(t, err)
	assert.NotEmpty(t, salary.ID)
	assert.False(t, salary.CreatedAt.IsZero())
}

func TestService_CreateInvalid(t *testing.T) {
	service, _, _ := NewMock(t)
	salary := validSalary()
	salary.Employee.ID = ""

	_, err := service.Create(context.Background(), salary)

	assert.ErrorIs(t, err, ErrInvalidSalary)
}

func TestService_CreateRepoError(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	salary, err := service.Create(context.Background(), validSalary())

	assert.EqualError(t, err, "db down")
	assert.Nil(t, salary)
}

func TestService_Get(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), "s1").Return(&domain.Salary{ID: "s1"}, nil)
	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

	salary, err := service.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", salary.ID)

	_, err = service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSalaryNotFound)
}

func TestService_List(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Salary{{ID: "s1"}, {ID: "s2"}}, nil)

	salaries, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, salaries, 2)
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, notifier *MockNotifier)
		expectedErr error
	}{
		{
			name: "Updated",
			prepareMock: func(repo *MockRepo, notifier *MockNotifier) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)
				notifier.EXPECT().Trigger(refresh.TriggerMutation)
				repo.EXPECT().FindByID(gomock.Any(), "s1").Return(&domain.Salary{ID: "s1"}, nil)
			},
		},
		{
			name: "Not found",
			prepareMock: func(repo *MockRepo, _ *MockNotifier) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrSalaryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, notifier := NewMock(t)
			tt.prepareMock(repo, notifier)
			salary := validSalary()
			salary.ID = "s1"

			updated, err := service.Update(context.Background(), salary)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "s1", updated.ID)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	service, repo, notifier := NewMock(t)

	repo.EXPECT().Delete(gomock.Any(), "s1").Return(true, nil)
	notifier.EXPECT().Trigger(refresh.TriggerMutation)
	repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

	assert.NoError(t, service.Delete(context.Background(), "s1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "missing"), ErrSalaryNotFound)
}
