package salaryrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

func scanSalary(row scanner) (domain.Salary, error) {
	var (
		salary     domain.Salary
		base       float64
		components []byte
		from       time.Time
		to         *time.Time
	)
	err := row.Scan(
		&salary.ID,
		&salary.Employee.ID,
		&salary.Employee.Name,
		&salary.Employee.Type,
		&base,
		&salary.Currency,
		&components,
		&from,
		&to,
		&salary.CreatedAt,
	)
	if err != nil {
		return domain.Salary{}, err
	}
	salary.BaseAmount = domain.NewAmount(base)
	salary.EffectiveFrom = domain.NewTimestamp(from)
	if to != nil {
		salary.EffectiveTo = domain.NewTimestamp(*to)
	}
	if len(components) > 0 {
		if err := json.Unmarshal(components, &salary.Components); err != nil {
			return domain.Salary{}, fmt.Errorf("can't decode components of salary %s: %w", salary.ID, err)
		}
	}
	return salary, nil
}

func effectiveTo(s *domain.Salary) *time.Time {
	if s.EffectiveTo.IsZero() {
		return nil
	}
	t := s.EffectiveTo.Time
	return &t
}

func encodeComponents(s *domain.Salary) ([]byte, error) {
	if s.Components == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Components)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Salary, error) {
	query := `
        SELECT id, employee_id, employee_name, employee_type, base_amount, currency, components, effective_from, effective_to, created_at
        FROM salaries
        ORDER BY effective_from DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get salaries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	salaries := make([]domain.Salary, 0)
	for rows.Next() {
		salary, err := scanSalary(rows)
		if err != nil {
			zap.L().Error("can't scan salary row", zap.Error(err))
			return nil, err
		}
		salaries = append(salaries, salary)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate salaries", zap.Error(err))
		return nil, err
	}
	return salaries, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Salary, error) {
	query := `
        SELECT id, employee_id, employee_name, employee_type, base_amount, currency, components, effective_from, effective_to, created_at
        FROM salaries
        WHERE id = $1
    `
	salary, err := scanSalary(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find salary", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &salary, nil
}

func (r *Repository) Create(ctx context.Context, salary *domain.Salary) error {
	query := `
        INSERT INTO salaries (id, employee_id, employee_name, employee_type, base_amount, currency, components, effective_from, effective_to, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	components, err := encodeComponents(salary)
	if err != nil {
		return fmt.Errorf("can't encode components: %w", err)
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			salary.ID,
			salary.Employee.ID,
			salary.Employee.Name,
			salary.Employee.Type,
			salary.BaseAmount.Float(),
			salary.Currency,
			components,
			salary.EffectiveFrom.Time,
			effectiveTo(salary),
			salary.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save salary", zap.Error(err))
			return err
		}
		return nil
	})
}

// Update reports false when no salary has the given id.
func (r *Repository) Update(ctx context.Context, salary *domain.Salary) (bool, error) {
	query := `
        UPDATE salaries
        SET employee_id = $1, employee_name = $2, employee_type = $3, base_amount = $4, currency = $5,
            components = $6, effective_from = $7, effective_to = $8
        WHERE id = $9
    `
	components, err := encodeComponents(salary)
	if err != nil {
		return false, fmt.Errorf("can't encode components: %w", err)
	}
	var updated bool
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			salary.Employee.ID,
			salary.Employee.Name,
			salary.Employee.Type,
			salary.BaseAmount.Float(),
			salary.Currency,
			components,
			salary.EffectiveFrom.Time,
			effectiveTo(salary),
			salary.ID,
		)
		if err != nil {
			zap.L().Error("failed to update salary", zap.String("id", salary.ID), zap.Error(err))
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

// Delete reports false when no salary has the given id.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete salary", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
