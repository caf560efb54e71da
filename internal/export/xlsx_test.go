package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/GlebRadaev/finboard/internal/finance"
)

func TestTaxReport(t *testing.T) {
	records := []finance.TaxRecord{
		{
			Kind:       finance.KindBooking,
			Name:       "Safari",
			Type:       "Booking",
			Customer:   "Ann",
			Status:     "confirmed",
			Date:       time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Amount:     1000,
			ServiceTax: 180,
			IncomeTax:  100,
			TotalTax:   280,
		},
		{Kind: finance.KindSalary, Name: "Bob", Type: "Salary", Amount: 500, PayrollTax: 40, TotalTax: 40},
	}
	totals := finance.TaxTotals{BookingTax: 280, PayrollTax: 40, Liability: 320}

	data, err := TaxReport(records, totals)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ReportSheet, TotalsSheet}, f.GetSheetList())

	rows, err := f.GetRows(ReportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, reportHeaders, rows[0])
	assert.Equal(t, "booking", rows[1][0])
	assert.Equal(t, "Safari", rows[1][1])
	assert.Equal(t, "2024-03-05", rows[1][6])
	assert.Equal(t, "1000", rows[1][7])
	assert.Equal(t, "280", rows[1][12])
	assert.Equal(t, "N/A", rows[2][6])

	liability, err := f.GetCellValue(TotalsSheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "320", liability)
}

func TestTaxReport_Empty(t *testing.T) {
	data, err := TaxReport(nil, finance.TaxTotals{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ReportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
