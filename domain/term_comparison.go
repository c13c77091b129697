package domain

// TermOption is one supported loan term evaluated against the same
// principal and rate.
type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	MonthlyTotal   float64 `json:"monthly_total"`
	TotalInterest  float64 `json:"total_interest"`
}

// TermComparisonResult lists every supported term, shortest first.
type TermComparisonResult struct {
	Options []TermOption `json:"options"`
}
