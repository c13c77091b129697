package domain

// LoanInput holds the parameters of a single mortgage calculation.
// Tax, insurance and extra payments are optional and default to zero.
type LoanInput struct {
	HomePrice         float64 `json:"home_price"`
	DownPaymentPct    float64 `json:"down_payment_pct"`
	AnnualRatePct     float64 `json:"annual_rate_pct"`
	TermYears         int     `json:"term_years"`
	AnnualPropertyTax float64 `json:"annual_property_tax,omitempty"`
	AnnualInsurance   float64 `json:"annual_insurance,omitempty"`
	ExtraMonthly      float64 `json:"extra_monthly,omitempty"`
	ExtraOneTime      float64 `json:"extra_one_time,omitempty"`
	ExtraOneTimeMonth int     `json:"extra_one_time_month,omitempty"`
}

// Principal is the financed amount after the down payment.
func (in LoanInput) Principal() float64 {
	return in.HomePrice * (1 - in.DownPaymentPct/100)
}

// MonthlyRate converts the annual percentage rate to a monthly fraction.
func (in LoanInput) MonthlyRate() float64 {
	return in.AnnualRatePct / 100 / 12
}

// NominalPayments is the contractual number of monthly payments.
func (in LoanInput) NominalPayments() int {
	return in.TermYears * 12
}

// HasExtras reports whether any voluntary extra payment is configured.
func (in LoanInput) HasExtras() bool {
	return in.ExtraMonthly > 0 || in.ExtraOneTime > 0
}

// WithoutExtras returns a copy of the input with all extra payments removed.
func (in LoanInput) WithoutExtras() LoanInput {
	in.ExtraMonthly = 0
	in.ExtraOneTime = 0
	in.ExtraOneTimeMonth = 0
	return in
}

// PaymentRecord is one month of the amortization schedule.
// Payment is the full cash outflow for the month (P&I + tax + insurance +
// extra); Balance is the remaining principal after the payment, clamped at 0.
type PaymentRecord struct {
	Month         int     `json:"month"`
	Payment       float64 `json:"payment"`
	PrincipalPaid float64 `json:"principal"`
	InterestPaid  float64 `json:"interest"`
	TaxPaid       float64 `json:"tax"`
	InsurancePaid float64 `json:"insurance"`
	ExtraPaid     float64 `json:"extra"`
	Balance       float64 `json:"balance"`
}

// Summary aggregates a computed schedule.
//
// MonthlyPayment is the contractual P&I payment; MonthlyTotal adds the
// tax and insurance pass-throughs (PITI). StandardTotalPaid and
// StandardTotalInterest come from the closed-form no-extras schedule,
// TotalPaid and TotalInterest from the materialized schedule, so the
// two pairs diverge exactly when extra payments shorten the payoff.
type Summary struct {
	Principal             float64 `json:"principal"`
	MonthlyPayment        float64 `json:"monthly_payment"`
	MonthlyTax            float64 `json:"monthly_tax"`
	MonthlyInsurance      float64 `json:"monthly_insurance"`
	MonthlyTotal          float64 `json:"monthly_total"`
	TermYears             int     `json:"term_years"`
	NominalPayments       int     `json:"nominal_payments"`
	ActualPayments        int     `json:"actual_payments"`
	TotalPaid             float64 `json:"total_paid"`
	TotalInterest         float64 `json:"total_interest"`
	StandardTotalPaid     float64 `json:"standard_total_paid"`
	StandardTotalInterest float64 `json:"standard_total_interest"`
	YearsSaved            float64 `json:"years_saved"`
	InterestSaved         float64 `json:"interest_saved"`
}

// ScheduleResult is the full output of one calculation: the aggregate
// summary plus the ordered month-by-month schedule.
type ScheduleResult struct {
	Summary  Summary         `json:"summary"`
	Schedule []PaymentRecord `json:"schedule"`
}
