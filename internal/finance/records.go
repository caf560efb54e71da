package finance

import (
	"slices"
	"sort"
	"time"

	"github.com/GlebRadaev/finboard/internal/domain"
)

type Kind string

const (
	KindBooking Kind = "booking"
	KindSalary  Kind = "salary"
	KindVehicle Kind = "vehicle"
	KindExpense Kind = "expense"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// TaxRecord is one row of the tax report. Kind tells which source it came
// from; the tax fields that do not apply to that kind stay zero.
type TaxRecord struct {
	Kind           Kind      `json:"kind"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Customer       string    `json:"customer,omitempty"`
	Status         string    `json:"status,omitempty"`
	Category       string    `json:"category,omitempty"`
	Date           time.Time `json:"date"`
	Amount         float64   `json:"amount"`
	ServiceTax     float64   `json:"serviceTax"`
	IncomeTax      float64   `json:"incomeTax"`
	PayrollTax     float64   `json:"payrollTax"`
	SocialSecurity float64   `json:"socialSecurity"`
	TotalTax       float64   `json:"totalTax"`
}

func (r TaxRecord) When() time.Time { return r.Date }

// Transaction is one row of the recent activity feed.
type Transaction struct {
	Kind      Kind      `json:"kind"`
	Direction Direction `json:"direction"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Customer  string    `json:"customer,omitempty"`
	Status    string    `json:"status,omitempty"`
	Category  string    `json:"category,omitempty"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
}

func (t Transaction) When() time.Time { return t.Date }

type dated interface {
	When() time.Time
}

// Latest sorts newest first, keeping input order for equal dates, and keeps
// at most n items. The input is not modified.
func Latest[T dated](items []T, n int) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When().After(out[j].When())
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TaxRecords merges booking, salary and vehicle tax rows in that order,
// unsorted.
func TaxRecords(in Input) []TaxRecord {
	vehicles := vehicleIndex(in.Vehicles)
	records := make([]TaxRecord, 0, len(in.Bookings)+len(in.Salaries)+len(in.Expenses))

	for _, b := range RevenueBearing(in.Bookings) {
		tax := BookingTax(b)
		records = append(records, TaxRecord{
			Kind:       KindBooking,
			ID:         b.ID,
			Name:       bookingName(b),
			Type:       "Booking",
			Customer:   bookingCustomer(b),
			Status:     b.Status,
			Date:       b.CreatedAt.Time,
			Amount:     tax.Amount,
			ServiceTax: tax.ServiceTax,
			IncomeTax:  tax.IncomeTax,
			TotalTax:   tax.Total,
		})
	}

	for _, s := range in.Salaries {
		tax := SalaryTax(s)
		typ := s.Employee.Type
		if typ == "" {
			typ = "Salary"
		}
		records = append(records, TaxRecord{
			Kind:           KindSalary,
			ID:             s.ID,
			Name:           salaryName(s),
			Type:           typ,
			Date:           s.EffectiveFrom.Time,
			Amount:         tax.Amount,
			PayrollTax:     tax.PayrollTax,
			SocialSecurity: tax.SocialSecurity,
			TotalTax:       tax.Total,
		})
	}

	for _, e := range VehicleExpenses(in.Expenses) {
		tax := VehicleExpenseTax(e)
		records = append(records, TaxRecord{
			Kind:           KindVehicle,
			ID:             e.ID,
			Name:           expenseName(e, vehicles),
			Type:           "Vehicle",
			Category:       e.Category,
			Date:           e.Date.Time,
			Amount:         tax.Amount,
			PayrollTax:     tax.PayrollTax,
			SocialSecurity: tax.SocialSecurity,
			TotalTax:       tax.Total,
		})
	}

	return records
}

// Transactions merges revenue-bearing bookings, salaries and every expense
// into one unsorted feed.
func Transactions(in Input) []Transaction {
	vehicles := vehicleIndex(in.Vehicles)
	feed := make([]Transaction, 0, len(in.Bookings)+len(in.Salaries)+len(in.Expenses))

	for _, b := range RevenueBearing(in.Bookings) {
		feed = append(feed, Transaction{
			Kind:      KindBooking,
			Direction: DirectionIn,
			ID:        b.ID,
			Name:      bookingName(b),
			Customer:  bookingCustomer(b),
			Status:    b.Status,
			Date:      b.CreatedAt.Time,
			Amount:    BookingAmount(b),
		})
	}
	for _, s := range in.Salaries {
		feed = append(feed, Transaction{
			Kind:      KindSalary,
			Direction: DirectionOut,
			ID:        s.ID,
			Name:      salaryName(s),
			Date:      s.EffectiveFrom.Time,
			Amount:    NetSalary(s),
		})
	}
	for _, e := range in.Expenses {
		kind := KindExpense
		if e.Type == domain.ExpenseTypeVehicle {
			kind = KindVehicle
		}
		feed = append(feed, Transaction{
			Kind:      kind,
			Direction: DirectionOut,
			ID:        e.ID,
			Name:      expenseName(e, vehicles),
			Category:  e.Category,
			Date:      e.Date.Time,
			Amount:    e.Amount.Float(),
		})
	}

	return feed
}
