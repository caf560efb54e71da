package expenseservice

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
	FindAll(ctx context.Context) ([]domain.Expense, error)
	FindByID(ctx context.Context, id string) (*domain.Expense, error)
	Create(ctx context.Context, expense *domain.Expense) error
	Update(ctx context.Context, expense *domain.Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Notifier interface {
	Trigger(t refresh.Trigger)
}

type Service struct {
	repo     Repo
	notifier Notifier
	now      func() time.Time
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

var (
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrExpenseNotFound = errors.New("expense not found")
)

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidExpense, reason)
}

func Validate(expense *domain.Expense) error {
	expense.Type = strings.ToLower(strings.TrimSpace(expense.Type))
	expense.RecipientID = strings.TrimSpace(expense.RecipientID)
	expense.Category = strings.TrimSpace(expense.Category)

	switch expense.Type {
	case domain.ExpenseTypeVehicle, domain.ExpenseTypeEmployee:
	case "":
		return invalid("type is required")
	default:
		return invalid(fmt.Sprintf("unknown type %q", expense.Type))
	}
	if expense.RecipientID == "" {
		return invalid("recipient is required")
	}
	if !expense.Amount.Valid {
		return invalid("amount is required")
	}
	if expense.Amount.Value < 0 {
		return invalid("amount must not be negative")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get expenses", zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// Create stores a new expense. A missing date defaults to the creation time.
func (s *Service) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if err := Validate(expense); err != nil {
		zap.L().Info("rejected expense", zap.Error(err))
		return nil, err
	}
	expense.ID = uuid.NewString()
	expense.CreatedAt = s.now()
	if expense.Date.IsZero() {
		expense.Date = domain.NewTimestamp(expense.CreatedAt)
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		zap.L().Error("can't save expense", zap.Error(err))
		return nil, err
	}
	s.notifier.Trigger(refresh.TriggerMutation)
	return expense, nil
}

func (s *Service) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if err := Validate(expense); err != nil {
		zap.L().Info("rejected expense", zap.String("id", expense.ID), zap.Error(err))
		return nil, err
	}
	updated, err := s.repo.Update(ctx, expense)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrExpenseNotFound
	}
	s.notifier.Trigger(refresh.TriggerMutation)
	return s.Get(ctx, expense.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	s.notifier.Trigger(refresh.TriggerMutation)
	return nil
}
