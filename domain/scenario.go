package domain

// ScenarioComparison contrasts the contractual schedule with the
// extra-payment schedule for the same loan.
type ScenarioComparison struct {
	Standard    Summary `json:"standard"`
	Accelerated Summary `json:"accelerated"`
	Savings     Savings `json:"savings"`
	Explanation string  `json:"explanation,omitempty"`
}

// Savings quantifies what the extra payments buy.
type Savings struct {
	InterestSaved float64 `json:"interest_saved"`
	MonthsSaved   int     `json:"months_saved"`
	YearsSaved    float64 `json:"years_saved"`
}
