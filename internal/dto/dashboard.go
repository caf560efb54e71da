package dto

import (
	"time"

	"github.com/GlebRadaev/finboard/internal/finance"
)

type StatusDTO struct {
	Ready       bool       `json:"ready" example:"true"`
	Seq         uint64     `json:"seq" example:"42"`
	Trigger     string     `json:"trigger,omitempty" example:"timer"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty" example:"2024-05-01T12:00:00Z"`
	Error       string     `json:"error,omitempty" example:"failed to fetch bookings: unexpected status code 502"`
	ErrorAt     *time.Time `json:"errorAt,omitempty" example:"2024-05-01T12:00:03Z"`
	Visible     bool       `json:"visible" example:"true"`
}

type DashboardResponseDTO struct {
	Status             StatusDTO             `json:"status"`
	Totals             finance.Totals        `json:"totals"`
	RecentTransactions []finance.Transaction `json:"recentTransactions"`
	RecentTaxRecords   []finance.TaxRecord   `json:"recentTaxRecords"`
	Monthly            []finance.MonthlyRow  `json:"monthly"`
}

type TaxReportResponseDTO struct {
	Status  StatusDTO           `json:"status"`
	Query   string              `json:"query" example:"safari"`
	Records []finance.TaxRecord `json:"records"`
	Totals  finance.TaxTotals   `json:"totals"`
}

type VisibilityRequestDTO struct {
	Visible *bool `json:"visible" example:"false"`
}

type NotifyResponseDTO struct {
	Triggered bool `json:"triggered" example:"true"`
}

type NotifyRequestDTO struct {
	Type   string `json:"type" example:"booking.confirmed"`
	ID     string `json:"id,omitempty" example:"64f0c2a1e4b0a1b2c3d4e5f6"`
	Source string `json:"source,omitempty" example:"booking-service"`
}
