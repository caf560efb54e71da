package dto

import (
	"time"

	"github.com/GlebRadaev/finboard/internal/domain"
	"github.com/GlebRadaev/finboard/internal/finance"
)

type ComponentDTO struct {
	Type       string   `json:"type" example:"earning"`
	Name       string   `json:"name" example:"Night shift bonus"`
	Amount     *float64 `json:"amount,omitempty" example:"2500"`
	Percentage *float64 `json:"percentage,omitempty" example:"12"`
}

type SalaryRequestDTO struct {
	EmployeeID    string           `json:"employeeId" example:"emp-17"`
	EmployeeName  string           `json:"employeeName" example:"Ravi Kumar"`
	EmployeeType  string           `json:"employeeType" example:"driver"`
	BaseAmount    *float64         `json:"baseAmount" example:"30000"`
	Currency      string           `json:"currency" example:"INR"`
	Components    []ComponentDTO   `json:"components"`
	EffectiveFrom domain.Timestamp `json:"effectiveFrom" swaggertype:"string" example:"2024-04-01"`
	EffectiveTo   domain.Timestamp `json:"effectiveTo" swaggertype:"string" example:"2025-03-31"`
}

type SalaryResponseDTO struct {
	ID            string         `json:"id" example:"6f1c1b7e-3f8a-4d0e-9a55-0c5c7d7d9b11"`
	EmployeeID    string         `json:"employeeId" example:"emp-17"`
	EmployeeName  string         `json:"employeeName,omitempty" example:"Ravi Kumar"`
	EmployeeType  string         `json:"employeeType,omitempty" example:"driver"`
	BaseAmount    float64        `json:"baseAmount" example:"30000"`
	NetAmount     float64        `json:"netAmount" example:"28900"`
	PayrollTax    float64        `json:"payrollTax" example:"2312"`
	Currency      string         `json:"currency" example:"INR"`
	Components    []ComponentDTO `json:"components"`
	EffectiveFrom time.Time      `json:"effectiveFrom" example:"2024-04-01T00:00:00Z"`
	EffectiveTo   *time.Time     `json:"effectiveTo,omitempty" example:"2025-03-31T00:00:00Z"`
	CreatedAt     time.Time      `json:"createdAt" example:"2024-04-02T09:30:00Z"`
}

func (r SalaryRequestDTO) ToDomain() *domain.Salary {
	components := make([]domain.Component, 0, len(r.Components))
	for _, c := range r.Components {
		components = append(components, domain.Component{
			Type:       c.Type,
			Name:       c.Name,
			Amount:     domain.AmountPtr(c.Amount),
			Percentage: domain.AmountPtr(c.Percentage),
		})
	}
	return &domain.Salary{
		Employee: domain.EmployeeRef{
			ID:   r.EmployeeID,
			Name: r.EmployeeName,
			Type: r.EmployeeType,
		},
		BaseAmount:    domain.AmountPtr(r.BaseAmount),
		Currency:      r.Currency,
		Components:    components,
		EffectiveFrom: r.EffectiveFrom,
		EffectiveTo:   r.EffectiveTo,
	}
}

func NewSalaryResponse(s domain.Salary) SalaryResponseDTO {
	components := make([]ComponentDTO, 0, len(s.Components))
	for _, c := range s.Components {
		components = append(components, ComponentDTO{
			Type:       c.Type,
			Name:       c.Name,
			Amount:     c.Amount.Ptr(),
			Percentage: c.Percentage.Ptr(),
		})
	}
	resp := SalaryResponseDTO{
		ID:            s.ID,
		EmployeeID:    s.Employee.ID,
		EmployeeName:  s.Employee.Name,
		EmployeeType:  s.Employee.Type,
		BaseAmount:    s.BaseAmount.Float(),
		NetAmount:     finance.NetSalary(s),
		PayrollTax:    finance.SalaryTax(s).Total,
		Currency:      s.Currency,
		Components:    components,
		EffectiveFrom: s.EffectiveFrom.Time,
		CreatedAt:     s.CreatedAt,
	}
	if !s.EffectiveTo.IsZero() {
		to := s.EffectiveTo.Time
		resp.EffectiveTo = &to
	}
	return resp
}
