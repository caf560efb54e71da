package salaryservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/refresh"
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Salary, error)
	FindByID(ctx context.Context, id string) (*domain.Salary, error)
	Create(ctx context.Context, salary *domain.Salary) error
	Update(ctx context.Context, salary *domain.Salary) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Notifier interface {
	Trigger(t refresh.Trigger)
}

type Service struct {
	repo     Repo
	notifier Notifier
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

const DefaultCurrency = "INR"

var (
	ErrInvalidSalary  = errors.New("invalid salary")
	ErrSalaryNotFound = errors.New("salary not found")
)

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSalary, reason)
}

// Validate normalises salary in place and rejects records the ledger
// cannot hold.
func Validate(salary *domain.Salary) error {
	salary.Employee.ID = strings.TrimSpace(salary.Employee.ID)
	salary.Currency = strings.ToUpper(strings.TrimSpace(salary.Currency))
	if salary.Currency == "" {
		salary.Currency = DefaultCurrency
	}

	if salary.Employee.ID == "" {
		return invalid("employee is required")
	}
	if !salary.BaseAmount.Valid {
		return invalid("base amount is required")
	}
	if salary.BaseAmount.Value < 0 {
		return invalid("base amount must not be negative")
	}
	if salary.EffectiveFrom.IsZero() {
		return invalid("effective from date is required")
	}
	if !salary.EffectiveTo.IsZero() && salary.EffectiveTo.Before(salary.EffectiveFrom.Time) {
		return invalid("effective to date is before effective from date")
	}
	for i, c := range salary.Components {
		if c.Type != domain.ComponentEarning && c.Type != domain.ComponentDeduction {
			return invalid(fmt.Sprintf("component %d has unknown type %q", i, c.Type))
		}
		if !c.Amount.Valid && !c.Percentage.Valid {
			return invalid(fmt.Sprintf("component %d needs an amount or a percentage", i))
		}
		if c.Amount.Value < 0 || c.Percentage.Value < 0 {
			return invalid(fmt.Sprintf("component %d must not be negative", i))
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Salary, error) {
	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get salaries", zap.Error(err))
		return nil, err
	}
	return salaries, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Salary, error) {
	salary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if salary == nil {
		return nil, ErrSalaryNotFound
	}
	return salary, nil
}

func (s *Service) Create(ctx context.Context, salary *domain.Salary) (*domain.Salary, error) {
	if err := Validate(salary); err != nil {
		zap.L().Info("rejected salary", zap.Error(err))
		return nil, err
	}
	salary.ID = uuid.NewString()
	salary.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, salary); err != nil {
		zap.L().Error("can't save salary", zap.Error(err))
		return nil, err
	}
	s.notifier.Trigger(refresh.TriggerMutation)
	return salary, nil
}

func (s *Service) Update(ctx context.Context, salary *domain.Salary) (*domain.Salary, error) {
	if err := Validate(salary); err != nil {
		zap.L().Info("rejected salary", zap.String("id", salary.ID), zap.Error(err))
		return nil, err
	}
	updated, err := s.repo.Update(ctx, salary)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrSalaryNotFound
	}
	s.notifier.Trigger(refresh.TriggerMutation)
	return s.Get(ctx, salary.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSalaryNotFound
	}
	s.notifier.Trigger(refresh.TriggerMutation)
	return nil
}
