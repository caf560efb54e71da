package finance

import "github.com/GlebRadaev/finboard/internal/domain"

// ComponentValue prefers the fixed amount over the percentage of base.
func ComponentValue(c domain.Component, base float64) float64 {
	if c.Amount.Valid {
		return c.Amount.Value
	}
	if c.Percentage.Valid {
		return base * c.Percentage.Value / 100
	}
	return 0
}

// NetSalary is base plus earnings minus everything else.
func NetSalary(s domain.Salary) float64 {
	base := s.BaseAmount.Float()
	net := base
	for _, c := range s.Components {
		v := ComponentValue(c, base)
		if c.Type == domain.ComponentEarning {
			net += v
		} else {
			net -= v
		}
	}
	return net
}

// PayrollTotal has no date filter: every loaded salary counts.
func PayrollTotal(salaries []domain.Salary) float64 {
	var total float64
	for _, s := range salaries {
		total += NetSalary(s)
	}
	return total
}

// ExpenseTotal sums every expense record regardless of type.
func ExpenseTotal(expenses []domain.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount.Float()
	}
	return total
}

func salaryName(s domain.Salary) string {
	if s.Employee.Name != "" {
		return s.Employee.Name
	}
	return s.Employee.ID
}

func vehicleIndex(vehicles []domain.Vehicle) map[string]domain.Vehicle {
	index := make(map[string]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		if _, ok := index[v.ID]; !ok {
			index[v.ID] = v
		}
	}
	return index
}

func expenseName(e domain.Expense, vehicles map[string]domain.Vehicle) string {
	if e.RecipientName != "" {
		return e.RecipientName
	}
	if v, ok := vehicles[e.RecipientID]; ok && e.Type == domain.ExpenseTypeVehicle {
		return v.DisplayName()
	}
	return e.RecipientID
}
