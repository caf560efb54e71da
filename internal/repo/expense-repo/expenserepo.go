package expenserepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (domain.Expense, error) {
	var (
		expense domain.Expense
		amount  float64
		date    *time.Time
	)
	err := row.Scan(
		&expense.ID,
		&expense.Type,
		&expense.RecipientID,
		&expense.RecipientName,
		&amount,
		&expense.Category,
		&expense.Description,
		&date,
		&expense.CreatedAt,
	)
	if err != nil {
		return domain.Expense{}, err
	}
	expense.Amount = domain.NewAmount(amount)
	if date != nil {
		expense.Date = domain.NewTimestamp(*date)
	}
	return expense, nil
}

func expenseDate(e *domain.Expense) *time.Time {
	if e.Date.IsZero() {
		return nil
	}
	t := e.Date.Time
	return &t
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	query := `
        SELECT id, type, recipient_id, recipient_name, amount, category, description, date, created_at
        FROM expenses
        ORDER BY date DESC NULLS LAST, created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get expenses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			zap.L().Error("can't scan expense row", zap.Error(err))
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate expenses", zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Expense, error) {
	query := `
        SELECT id, type, recipient_id, recipient_name, amount, category, description, date, created_at
        FROM expenses
        WHERE id = $1
    `
	expense, err := scanExpense(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find expense", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &expense, nil
}

func (r *Repository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
        INSERT INTO expenses (id, type, recipient_id, recipient_name, amount, category, description, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			expense.ID,
			expense.Type,
			expense.RecipientID,
			expense.RecipientName,
			expense.Amount.Float(),
			expense.Category,
			expense.Description,
			expenseDate(expense),
			expense.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save expense", zap.Error(err))
			return err
		}
		return nil
	})
}

// Update reports false when no expense has the given id.
func (r *Repository) Update(ctx context.Context, expense *domain.Expense) (bool, error) {
	query := `
        UPDATE expenses
        SET type = $1, recipient_id = $2, recipient_name = $3, amount = $4, category = $5,
            description = $6, date = $7
        WHERE id = $8
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			expense.Type,
			expense.RecipientID,
			expense.RecipientName,
			expense.Amount.Float(),
			expense.Category,
			expense.Description,
			expenseDate(expense),
			expense.ID,
		)
		if err != nil {
			zap.L().Error("failed to update expense", zap.String("id", expense.ID), zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// Delete reports false when no expense has the given id.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete expense", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
