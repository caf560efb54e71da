package dto

import (
	"time"

	"github.com/GlebRadaev/finboard/internal/domain"
)

type ExpenseRequestDTO struct {
	Type          string           `json:"type" example:"vehicle"`
	RecipientID   string           `json:"recipientId" example:"veh-3"`
	RecipientName string           `json:"recipientName" example:"Tempo Traveller (KA-01-1234)"`
	Amount        *float64         `json:"amount" example:"4200"`
	Category      string           `json:"category" example:"fuel"`
	Description   string           `json:"description" example:"Diesel, Mysore trip"`
	Date          domain.Timestamp `json:"date" swaggertype:"string" example:"2024-05-03"`
}

type ExpenseResponseDTO struct {
	ID            string     `json:"id" example:"0b8a6c52-1d7e-4f0b-8c3a-6a5d2e9f7c41"`
	Type          string     `json:"type" example:"vehicle"`
	RecipientID   string     `json:"recipientId" example:"veh-3"`
	RecipientName string     `json:"recipientName,omitempty" example:"Tempo Traveller (KA-01-1234)"`
	Amount        float64    `json:"amount" example:"4200"`
	Category      string     `json:"category,omitempty" example:"fuel"`
	Description   string     `json:"description,omitempty" example:"Diesel, Mysore trip"`
	Date          *time.Time `json:"date,omitempty" example:"2024-05-03T00:00:00Z"`
	CreatedAt     time.Time  `json:"createdAt" example:"2024-05-03T18:20:00Z"`
}

func (r ExpenseRequestDTO) ToDomain() *domain.Expense {
	return &domain.Expense{
		Type:          r.Type,
		RecipientID:   r.RecipientID,
		RecipientName: r.RecipientName,
		Amount:        domain.AmountPtr(r.Amount),
		Category:      r.Category,
		Description:   r.Description,
		Date:          r.Date,
	}
}

func NewExpenseResponse(e domain.Expense) ExpenseResponseDTO {
	resp := ExpenseResponseDTO{
		ID:            e.ID,
		Type:          e.Type,
		RecipientID:   e.RecipientID,
		RecipientName: e.RecipientName,
		Amount:        e.Amount.Float(),
		Category:      e.Category,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
	if !e.Date.IsZero() {
		date := e.Date.Time
		resp.Date = &date
	}
	return resp
}
