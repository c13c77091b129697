package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"mortgage-engine/domain"
)

// BuildSchedulePDF renders a summary block followed by the full schedule
// table.
func BuildSchedulePDF(input domain.LoanInput, result domain.ScheduleResult) ([]byte, error) {
	summary := result.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Mortgage Amortization Schedule")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Principal: %.2f", summary.Principal))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Interest Rate: %g%%", input.AnnualRatePct))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Term: %d years (%d payments)", summary.TermYears, summary.NominalPayments))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Monthly Payment (P&I): %.2f", summary.MonthlyPayment))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Paid: %.2f", summary.TotalPaid))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Interest: %.2f", summary.TotalInterest))
	pdf.Ln(5)
	if input.HasExtras() {
		pdf.Cell(0, 6, fmt.Sprintf("Payoff: %d payments, saves %.1f years & %.0f interest",
			summary.ActualPayments, summary.YearsSaved, summary.InterestSaved))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	widths := []float64{12, 26, 26, 26, 20, 22, 21, 27}

	pdf.SetFont("Arial", "B", 9)
	for i, name := range ScheduleColumns {
		pdf.CellFormat(widths[i], 6, name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, rec := range result.Schedule {
		cells := []string{
			fmt.Sprintf("%d", rec.Month),
			fmt.Sprintf("%.2f", rec.Payment),
			fmt.Sprintf("%.2f", rec.PrincipalPaid),
			fmt.Sprintf("%.2f", rec.InterestPaid),
			fmt.Sprintf("%.2f", rec.TaxPaid),
			fmt.Sprintf("%.2f", rec.InsurancePaid),
			fmt.Sprintf("%.2f", rec.ExtraPaid),
			fmt.Sprintf("%.2f", rec.Balance),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 5, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
