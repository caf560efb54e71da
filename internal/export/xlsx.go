// Package export renders the tax report as a spreadsheet.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/GlebRadaev/finboard/internal/finance"
)

const (
	ReportSheet  = "Tax report"
	TotalsSheet  = "Totals"
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout   = "2006-01-02"
	emptyDateTag = "N/A"
)

var reportHeaders = []string{
	"Kind", "Name", "Type", "Customer", "Status", "Category", "Date",
	"Amount", "Service tax", "Income tax", "Payroll tax", "Social security", "Total tax",
}

// TaxReport writes records and the tax totals into an XLSX workbook.
func TaxReport(records []finance.TaxRecord, totals finance.TaxTotals) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ReportSheet)
	if err != nil {
		return nil, fmt.Errorf("can't create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("can't delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeRow(f, ReportSheet, 1, toCells(reportHeaders)); err != nil {
		return nil, err
	}
	for i, r := range records {
		date := emptyDateTag
		if !r.Date.IsZero() {
			date = r.Date.UTC().Format(dateLayout)
		}
		row := []any{
			string(r.Kind), r.Name, r.Type, r.Customer, r.Status, r.Category, date,
			r.Amount, r.ServiceTax, r.IncomeTax, r.PayrollTax, r.SocialSecurity, r.TotalTax,
		}
		if err := writeRow(f, ReportSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(TotalsSheet); err != nil {
		return nil, fmt.Errorf("can't create sheet: %w", err)
	}
	summary := [][]any{
		{"Service tax", totals.ServiceTax},
		{"Income tax", totals.IncomeTax},
		{"Booking tax", totals.BookingTax},
		{"Salary tax", totals.SalaryTax},
		{"Vehicle tax", totals.VehicleTax},
		{"Payroll tax", totals.PayrollTax},
		{"Total liability", totals.Liability},
	}
	for i, row := range summary {
		if err := writeRow(f, TotalsSheet, i+1, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("can't write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("can't write row %d of %s: %w", row, sheet, err)
	}
	return nil
}
