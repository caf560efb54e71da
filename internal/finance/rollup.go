package finance

import (
	"strconv"
	"strings"
	"time"
)

// MaxMonths caps the monthly chart.
const MaxMonths = 6

// UnknownMonth labels records without a usable date.
const UnknownMonth = "N/A"

type MonthlyRow struct {
	Month  string  `json:"month"`
	Tax    float64 `json:"tax"`
	Income float64 `json:"income"`
}

func monthLabel(t time.Time) string {
	if t.IsZero() {
		return UnknownMonth
	}
	return t.UTC().Month().String()[:3]
}

// MonthlyRollup groups already sorted records by month abbreviation in
// first-seen order. Records of a month beyond the first MaxMonths are
// dropped; records of an earlier month keep accumulating.
func MonthlyRollup(records []TaxRecord) []MonthlyRow {
	rows := make([]MonthlyRow, 0, MaxMonths)
	index := make(map[string]int, MaxMonths)
	for _, r := range records {
		month := monthLabel(r.Date)
		i, ok := index[month]
		if !ok {
			if len(rows) == MaxMonths {
				continue
			}
			i = len(rows)
			index[month] = i
			rows = append(rows, MonthlyRow{Month: month})
		}
		rows[i].Tax += r.TotalTax
		rows[i].Income += r.Amount
	}
	return rows
}

// Search matches query case-insensitively against the text fields and the
// printed amount and total tax. An empty query returns records as is.
func Search(records []TaxRecord, query string) []TaxRecord {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)
	out := make([]TaxRecord, 0, len(records))
	for _, r := range records {
		fields := [...]string{
			r.Name,
			r.Type,
			r.Customer,
			r.Status,
			r.Category,
			formatNumber(r.Amount),
			formatNumber(r.TotalTax),
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
