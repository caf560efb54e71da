package finance

import "github.com/GlebRadaev/finboard/internal/domain"

const (
	ServiceTaxRate = 0.18
	IncomeTaxRate  = 0.10
	BookingTaxRate = 0.28
	PayrollTaxRate = 0.08
)

type BookingTaxBreakdown struct {
	Amount     float64 `json:"amount"`
	ServiceTax float64 `json:"serviceTax"`
	IncomeTax  float64 `json:"incomeTax"`
	Total      float64 `json:"total"`
}

// BookingTax is computed on pricing.total only, not on the resolved amount.
// Total uses the combined rate rather than the sum of the two parts.
func BookingTax(b domain.Booking) BookingTaxBreakdown {
	a := b.Pricing.Total.Float()
	return BookingTaxBreakdown{
		Amount:     a,
		ServiceTax: a * ServiceTaxRate,
		IncomeTax:  a * IncomeTaxRate,
		Total:      a * BookingTaxRate,
	}
}

// PayrollTaxBreakdown applies to net salaries and vehicle expenses.
// SocialSecurity is always zero.
type PayrollTaxBreakdown struct {
	Amount         float64 `json:"amount"`
	PayrollTax     float64 `json:"payrollTax"`
	SocialSecurity float64 `json:"socialSecurity"`
	Total          float64 `json:"total"`
}

func PayrollTax(amount float64) PayrollTaxBreakdown {
	tax := amount * PayrollTaxRate
	return PayrollTaxBreakdown{
		Amount:     amount,
		PayrollTax: tax,
		Total:      tax,
	}
}

func SalaryTax(s domain.Salary) PayrollTaxBreakdown {
	return PayrollTax(NetSalary(s))
}

func VehicleExpenseTax(e domain.Expense) PayrollTaxBreakdown {
	return PayrollTax(e.Amount.Float())
}

// VehicleExpenses keeps vehicle-typed expenses in input order.
func VehicleExpenses(expenses []domain.Expense) []domain.Expense {
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Type == domain.ExpenseTypeVehicle {
			out = append(out, e)
		}
	}
	return out
}

type TaxTotals struct {
	ServiceTax float64 `json:"serviceTax"`
	IncomeTax  float64 `json:"incomeTax"`
	BookingTax float64 `json:"bookingTax"`
	SalaryTax  float64 `json:"salaryTax"`
	VehicleTax float64 `json:"vehicleTax"`
	// PayrollTax covers salaries and vehicle expenses, summed in that order.
	PayrollTax float64 `json:"payrollTax"`
	Liability  float64 `json:"liability"`
}

// Taxes sums booking tax over revenue-bearing bookings and payroll tax over
// all salaries plus vehicle expenses.
func Taxes(bookings []domain.Booking, salaries []domain.Salary, expenses []domain.Expense) TaxTotals {
	var t TaxTotals
	for _, b := range RevenueBearing(bookings) {
		tax := BookingTax(b)
		t.ServiceTax += tax.ServiceTax
		t.IncomeTax += tax.IncomeTax
		t.BookingTax += tax.Total
	}
	for _, s := range salaries {
		tax := SalaryTax(s).Total
		t.SalaryTax += tax
		t.PayrollTax += tax
	}
	for _, e := range VehicleExpenses(expenses) {
		tax := VehicleExpenseTax(e).Total
		t.VehicleTax += tax
		t.PayrollTax += tax
	}
	t.Liability = t.BookingTax + t.PayrollTax
	return t
}
