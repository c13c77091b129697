package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"mortgage-engine/domain"
)

// BuildScheduleXLSX renders a workbook with the full schedule and a
// summary sheet.
func BuildScheduleXLSX(input domain.LoanInput, result domain.ScheduleResult) ([]byte, error) {
	f := excelize.NewFile()
	scheduleSheet := "Schedule"
	summarySheet := "Summary"
	f.SetSheetName("Sheet1", scheduleSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	for col, name := range ScheduleColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(scheduleSheet, cell, name)
	}
	for i, rec := range result.Schedule {
		row := i + 2
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("A%d", row), rec.Month)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("B%d", row), rec.Payment)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("C%d", row), rec.PrincipalPaid)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("D%d", row), rec.InterestPaid)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("E%d", row), rec.TaxPaid)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("F%d", row), rec.InsurancePaid)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("G%d", row), rec.ExtraPaid)
		_ = f.SetCellValue(scheduleSheet, fmt.Sprintf("H%d", row), rec.Balance)
	}

	summary := result.Summary
	downPayment := input.HomePrice * input.DownPaymentPct / 100

	_ = f.SetCellValue(summarySheet, "A1", "Metric")
	_ = f.SetCellValue(summarySheet, "B1", "Value")
	rows := []struct {
		metric string
		value  interface{}
	}{
		{"Loan Amount", input.HomePrice},
		{"Down Payment", downPayment},
		{"Principal", summary.Principal},
		{"Interest Rate", fmt.Sprintf("%g%%", input.AnnualRatePct)},
		{"Term (Years)", summary.TermYears},
		{"Monthly Payment", summary.MonthlyPayment},
		{"Total Paid", summary.TotalPaid},
		{"Total Interest", summary.TotalInterest},
		{"Extra Payments Impact", extraImpact(input, summary)},
	}
	for i, r := range rows {
		row := i + 2
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), r.metric)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), r.value)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extraImpact(input domain.LoanInput, summary domain.Summary) string {
	if !input.HasExtras() {
		return "N/A"
	}
	return fmt.Sprintf("Saves %.1f years & $%.0f interest", summary.YearsSaved, summary.InterestSaved)
}
