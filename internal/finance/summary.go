package finance

import "github.com/GlebRadaev/finboard/internal/domain"

// Display caps used by the dashboard and the tax report.
const (
	RecentTransactionsLimit = 5
	DashboardTaxLimit       = 10
	TaxReportLimit          = 15
)

// Input is one refresh worth of records.
type Input struct {
	Bookings []domain.Booking
	Salaries []domain.Salary
	Expenses []domain.Expense
	Vehicles []domain.Vehicle
}

type Totals struct {
	TotalIncome       float64   `json:"totalIncome"`
	PayrollTotal      float64   `json:"payrollTotal"`
	TotalExpenses     float64   `json:"totalExpenses"`
	TotalBalance      float64   `json:"totalBalance"`
	OperatingExpenses float64   `json:"operatingExpenses"`
	Taxes             TaxTotals `json:"taxes"`
	TotalTaxLiability float64   `json:"totalTaxLiability"`
	NetIncomeAfterTax float64   `json:"netIncomeAfterTax"`
	Bookings          int       `json:"bookings"`
	ConfirmedBookings int       `json:"confirmedBookings"`
	Salaries          int       `json:"salaries"`
	Expenses          int       `json:"expenses"`
	Vehicles          int       `json:"vehicles"`
}

type Summary struct {
	Totals             Totals        `json:"totals"`
	RecentTransactions []Transaction `json:"recentTransactions"`
	RecentTaxRecords   []TaxRecord   `json:"recentTaxRecords"`
	TaxReport          []TaxRecord   `json:"taxReport"`
	Monthly            []MonthlyRow  `json:"monthly"`
}

// Compute rebuilds the whole view-model from in.
func Compute(in Input) Summary {
	income := TotalIncome(in.Bookings)
	payroll := PayrollTotal(in.Salaries)
	taxes := Taxes(in.Bookings, in.Salaries, in.Expenses)

	totals := Totals{
		TotalIncome:       income,
		PayrollTotal:      payroll,
		TotalExpenses:     payroll,
		TotalBalance:      income - payroll,
		OperatingExpenses: ExpenseTotal(in.Expenses),
		Taxes:             taxes,
		TotalTaxLiability: taxes.Liability,
		NetIncomeAfterTax: income - taxes.Liability,
		Bookings:          len(in.Bookings),
		ConfirmedBookings: len(RevenueBearing(in.Bookings)),
		Salaries:          len(in.Salaries),
		Expenses:          len(in.Expenses),
		Vehicles:          len(in.Vehicles),
	}

	records := TaxRecords(in)
	report := Latest(records, TaxReportLimit)

	return Summary{
		Totals:             totals,
		RecentTransactions: Latest(Transactions(in), RecentTransactionsLimit),
		RecentTaxRecords:   Latest(records, DashboardTaxLimit),
		TaxReport:          report,
		Monthly:            MonthlyRollup(report),
	}
}
