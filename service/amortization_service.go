package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

// AmortizationService computes mortgage amortization schedules. Each
// calculation is a pure function of its input; the optional cache only
// avoids recomputing identical requests.
type AmortizationService struct {
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

// NewAmortizationService creates the service. cache may be nil to disable
// result caching; a non-positive ttl falls back to DefaultCacheTTL.
func NewAmortizationService(cache repository.CacheRepository, cacheTTL time.Duration) *AmortizationService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &AmortizationService{cache: cache, cacheTTL: cacheTTL}
}

// Calculate validates the input and produces the full schedule plus
// aggregate summary. Either a complete, internally consistent result is
// returned or an error; never a partial schedule.
func (s *AmortizationService) Calculate(
	ctx context.Context,
	input domain.LoanInput,
) (domain.ScheduleResult, error) {

	if err := validateInput(input); err != nil {
		return domain.ScheduleResult{}, err
	}

	key := cacheKey(input)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached domain.ScheduleResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err := compute(input)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	// Caching is best-effort; a failure must not fail the calculation.
	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
				log.Printf("Warning: failed to cache schedule result: %v", err)
			}
		}
	}

	return result, nil
}

func compute(input domain.LoanInput) (domain.ScheduleResult, error) {
	principal := input.Principal()
	monthlyRate := input.MonthlyRate()
	nominal := input.NominalPayments()
	monthlyTax := input.AnnualPropertyTax / MonthsPerYear
	monthlyInsurance := input.AnnualInsurance / MonthsPerYear

	basePayment := BasePayment(principal, monthlyRate, nominal)
	standardPaid, standardInterest := StandardTotals(principal, basePayment, nominal)

	var schedule []domain.PaymentRecord
	if input.HasExtras() {
		var err error
		schedule, err = BuildScheduleWithExtras(
			principal,
			monthlyRate,
			basePayment,
			input.ExtraMonthly,
			input.ExtraOneTime,
			input.ExtraOneTimeMonth,
			monthlyTax,
			monthlyInsurance,
			SafetyLimitFactor*nominal,
		)
		if err != nil {
			return domain.ScheduleResult{}, err
		}
	} else {
		schedule = BuildStandardSchedule(principal, monthlyRate, basePayment, monthlyTax, monthlyInsurance, nominal)
	}

	totalPaid := 0.0
	totalInterest := 0.0
	for _, rec := range schedule {
		totalPaid += rec.Payment
		totalInterest += rec.InterestPaid
	}

	summary := domain.Summary{
		Principal:             principal,
		MonthlyPayment:        basePayment,
		MonthlyTax:            monthlyTax,
		MonthlyInsurance:      monthlyInsurance,
		MonthlyTotal:          basePayment + monthlyTax + monthlyInsurance,
		TermYears:             input.TermYears,
		NominalPayments:       nominal,
		ActualPayments:        len(schedule),
		TotalPaid:             totalPaid,
		TotalInterest:         totalInterest,
		StandardTotalPaid:     standardPaid,
		StandardTotalInterest: standardInterest,
	}
	if input.HasExtras() {
		summary.YearsSaved = float64(nominal-len(schedule)) / MonthsPerYear
		summary.InterestSaved = standardInterest - totalInterest
	}

	return domain.ScheduleResult{Summary: summary, Schedule: schedule}, nil
}

// BasePayment is the fixed monthly P&I payment from the annuity formula.
// A zero monthly rate degenerates to straight-line amortization.
func BasePayment(principal, monthlyRate float64, numPayments int) float64 {
	if numPayments <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(numPayments)
	}
	growth := math.Pow(1+monthlyRate, float64(numPayments))
	return principal * monthlyRate * growth / (growth - 1)
}

// StandardTotals returns the lifetime cash and interest totals for the
// no-extras schedule in closed form.
func StandardTotals(principal, payment float64, numPayments int) (totalPaid, totalInterest float64) {
	totalPaid = payment * float64(numPayments)
	totalInterest = totalPaid - principal
	return totalPaid, totalInterest
}

// BuildStandardSchedule materializes the contractual schedule: exactly
// numPayments records, balance clamped at zero on the final one.
func BuildStandardSchedule(
	principal, monthlyRate, basePayment, monthlyTax, monthlyInsurance float64,
	numPayments int,
) []domain.PaymentRecord {

	schedule := make([]domain.PaymentRecord, 0, numPayments)
	balance := principal

	for month := 1; month <= numPayments; month++ {
		interest := balance * monthlyRate
		principalPaid := basePayment - interest
		balance = math.Max(0, balance-principalPaid)

		schedule = append(schedule, domain.PaymentRecord{
			Month:         month,
			Payment:       basePayment + monthlyTax + monthlyInsurance,
			PrincipalPaid: principalPaid,
			InterestPaid:  interest,
			TaxPaid:       monthlyTax,
			InsurancePaid: monthlyInsurance,
			Balance:       balance,
		})
	}

	return schedule
}

// BuildScheduleWithExtras simulates the schedule month by month applying
// extra principal payments. The one-time extra fires at most once, at its
// absolute month index; if the loan pays off earlier it is never applied.
// The final period overpays and clamps the balance to zero rather than
// truncating the last payment. Returns ErrCannotAmortize if the balance
// is still positive after safetyLimitMonths iterations.
func BuildScheduleWithExtras(
	principal, monthlyRate, basePayment, extraMonthly, extraOneTime float64,
	extraOneTimeMonth int,
	monthlyTax, monthlyInsurance float64,
	safetyLimitMonths int,
) ([]domain.PaymentRecord, error) {

	schedule := []domain.PaymentRecord{}
	balance := principal
	month := 0

	for balance > 0 && month < safetyLimitMonths {
		month++
		interest := balance * monthlyRate

		extraThisMonth := extraMonthly
		if extraOneTime > 0 && month == extraOneTimeMonth {
			extraThisMonth += extraOneTime
			extraOneTime = 0 // applied exactly once
		}

		principalPaid := basePayment - interest + extraThisMonth
		balance = math.Max(0, balance-principalPaid)

		schedule = append(schedule, domain.PaymentRecord{
			Month:         month,
			Payment:       basePayment + monthlyTax + monthlyInsurance + extraThisMonth,
			PrincipalPaid: principalPaid,
			InterestPaid:  interest,
			TaxPaid:       monthlyTax,
			InsurancePaid: monthlyInsurance,
			ExtraPaid:     extraThisMonth,
			Balance:       balance,
		})
	}

	if balance > 0 {
		return nil, fmt.Errorf("balance %.2f remains after %d months: %w", balance, month, domain.ErrCannotAmortize)
	}

	return schedule, nil
}

func validateInput(in domain.LoanInput) error {
	if in.HomePrice < 0 {
		return &domain.InvalidInputError{Field: "home_price", Reason: "must be non-negative"}
	}
	if in.HomePrice > MaxHomePrice {
		return &domain.InvalidInputError{Field: "home_price", Reason: fmt.Sprintf("exceeds maximum of %.0f", float64(MaxHomePrice))}
	}
	if in.DownPaymentPct < 0 || in.DownPaymentPct > MaxDownPaymentPct {
		return &domain.InvalidInputError{Field: "down_payment_pct", Reason: fmt.Sprintf("must be between 0 and %.0f", float64(MaxDownPaymentPct))}
	}
	if in.AnnualRatePct < 0 || in.AnnualRatePct > MaxAnnualRatePct {
		return &domain.InvalidInputError{Field: "annual_rate_pct", Reason: fmt.Sprintf("must be between 0 and %.0f", float64(MaxAnnualRatePct))}
	}
	if !isSupportedTerm(in.TermYears) {
		return &domain.InvalidInputError{Field: "term_years", Reason: fmt.Sprintf("must be one of %v", SupportedTermYears)}
	}
	if in.AnnualPropertyTax < 0 {
		return &domain.InvalidInputError{Field: "annual_property_tax", Reason: "must be non-negative"}
	}
	if in.AnnualInsurance < 0 {
		return &domain.InvalidInputError{Field: "annual_insurance", Reason: "must be non-negative"}
	}
	if in.ExtraMonthly < 0 {
		return &domain.InvalidInputError{Field: "extra_monthly", Reason: "must be non-negative"}
	}
	if in.ExtraOneTime < 0 {
		return &domain.InvalidInputError{Field: "extra_one_time", Reason: "must be non-negative"}
	}
	if in.ExtraOneTime > 0 && in.ExtraOneTimeMonth < 1 {
		return &domain.InvalidInputError{Field: "extra_one_time_month", Reason: "must be at least 1"}
	}
	return nil
}

func isSupportedTerm(years int) bool {
	for _, t := range SupportedTermYears {
		if t == years {
			return true
		}
	}
	return false
}

func cacheKey(in domain.LoanInput) string {
	data, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return "mortgage:schedule:" + hex.EncodeToString(sum[:])
}
