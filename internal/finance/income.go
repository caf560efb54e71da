// Package finance derives the dashboard view-model from raw bookings,
// salaries and expenses. Everything here is pure: no I/O, inputs are never
// modified and malformed values contribute zero.
package finance

import "github.com/GlebRadaev/finboard/internal/domain"

// bookingAmountSources is the fixed lookup order for a booking's price.
var bookingAmountSources = []func(domain.Booking) domain.Amount{
	func(b domain.Booking) domain.Amount { return b.Pricing.Total },
	func(b domain.Booking) domain.Amount { return b.Total },
	func(b domain.Booking) domain.Amount { return b.Amount },
	func(b domain.Booking) domain.Amount { return b.Price },
	func(b domain.Booking) domain.Amount { return b.Pricing.Subtotal },
	func(b domain.Booking) domain.Amount { return b.Pricing.GrandTotal },
}

// BookingAmount returns the first present source, or 0.
func BookingAmount(b domain.Booking) float64 {
	for _, source := range bookingAmountSources {
		if a := source(b); a.Valid {
			return a.Value
		}
	}
	return 0
}

// TotalIncome sums every booking regardless of status.
func TotalIncome(bookings []domain.Booking) float64 {
	var total float64
	for _, b := range bookings {
		total += BookingAmount(b)
	}
	return total
}

func IsRevenueBearing(status string) bool {
	return status == domain.BookingStatusConfirmed || status == domain.BookingStatusCreated
}

// RevenueBearing keeps confirmed and created bookings in input order.
func RevenueBearing(bookings []domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if IsRevenueBearing(b.Status) {
			out = append(out, b)
		}
	}
	return out
}

func bookingName(b domain.Booking) string {
	switch {
	case b.PackageName != "":
		return b.PackageName
	case b.Package.Name != "":
		return b.Package.Name
	case b.Package.Title != "":
		return b.Package.Title
	}
	return "Booking"
}

func bookingCustomer(b domain.Booking) string {
	switch {
	case b.CustomerName != "":
		return b.CustomerName
	case b.Customer.Name != "":
		return b.Customer.Name
	case b.Customer.FullName() != "":
		return b.Customer.FullName()
	}
	return "Guest"
}
