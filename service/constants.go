package service

import "time"

const (
	MaxHomePrice      = 1_000_000_000.0 // 1 billion
	MaxDownPaymentPct = 80.0
	MaxAnnualRatePct  = 100.0 // 0% is valid (straight-line amortization)

	// SafetyLimitFactor bounds the extra-payment simulation at a multiple
	// of the nominal payment count so a payment that never covers the
	// accruing interest cannot loop forever.
	SafetyLimitFactor = 2

	MonthsPerYear = 12

	DefaultCacheTTL = time.Hour
)

// SupportedTermYears are the loan terms the engine accepts, shortest first.
var SupportedTermYears = []int{15, 20, 30, 40, 50}
