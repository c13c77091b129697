package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

// The reference loan from the calculator's defaults: $400k home, 20% down,
// 6.75% over 30 years.
func referenceInput() domain.LoanInput {
	return domain.LoanInput{
		HomePrice:      400000,
		DownPaymentPct: 20,
		AnnualRatePct:  6.75,
		TermYears:      30,
	}
}

func TestBasePayment_PinnedExample(t *testing.T) {
	in := referenceInput()

	payment := BasePayment(in.Principal(), in.MonthlyRate(), in.NominalPayments())

	assert.InDelta(t, 2075.513909, payment, 1e-5)
}

func TestBasePayment_ZeroRate(t *testing.T) {
	payment := BasePayment(360000, 0, 360)

	assert.Equal(t, 1000.0, payment)
}

func TestStandardTotals_PinnedExample(t *testing.T) {
	in := referenceInput()
	payment := BasePayment(in.Principal(), in.MonthlyRate(), in.NominalPayments())

	totalPaid, totalInterest := StandardTotals(in.Principal(), payment, in.NominalPayments())

	assert.InDelta(t, 747185.007247, totalPaid, 1e-3)
	assert.InDelta(t, 427185.007247, totalInterest, 1e-3)
}

func TestCalculate_StandardSchedule(t *testing.T) {
	svc := NewAmortizationService(nil, 0)

	result, err := svc.Calculate(context.Background(), referenceInput())
	require.NoError(t, err)

	summary := result.Summary
	assert.Equal(t, 320000.0, summary.Principal)
	assert.Equal(t, 360, summary.NominalPayments)
	assert.Equal(t, 360, summary.ActualPayments)
	assert.Len(t, result.Schedule, 360)
	assert.Zero(t, summary.YearsSaved)
	assert.Zero(t, summary.InterestSaved)

	// Simulation agrees with the closed form.
	last := result.Schedule[len(result.Schedule)-1]
	assert.InDelta(t, 0, last.Balance, 1e-6)
	assert.InDelta(t, summary.StandardTotalInterest, summary.TotalInterest, 1e-4)

	// First-month split.
	first := result.Schedule[0]
	assert.InDelta(t, 1800.0, first.InterestPaid, 1e-9)
	assert.InDelta(t, summary.MonthlyPayment-1800.0, first.PrincipalPaid, 1e-9)
}

func TestCalculate_BalanceAndInterestInvariants(t *testing.T) {
	svc := NewAmortizationService(nil, 0)
	in := referenceInput()
	in.ExtraMonthly = 150

	result, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)

	monthlyRate := in.MonthlyRate()
	prevBalance := in.Principal()
	for i, rec := range result.Schedule {
		assert.Equal(t, i+1, rec.Month)
		assert.Equal(t, prevBalance*monthlyRate, rec.InterestPaid, "month %d", rec.Month)
		assert.LessOrEqual(t, rec.Balance, prevBalance, "month %d", rec.Month)
		prevBalance = rec.Balance
	}
	assert.Zero(t, prevBalance)
}

func TestCalculate_ZeroRateStraightLine(t *testing.T) {
	svc := NewAmortizationService(nil, 0)
	in := domain.LoanInput{
		HomePrice:      360000,
		DownPaymentPct: 0,
		AnnualRatePct:  0,
		TermYears:      30,
	}

	result, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.Summary.MonthlyPayment)
	assert.Zero(t, result.Summary.StandardTotalInterest)
	require.Len(t, result.Schedule, 360)
	for _, rec := range result.Schedule {
		assert.Zero(t, rec.InterestPaid)
	}
	assert.Zero(t, result.Schedule[359].Balance)
}

func TestCalculate_ExtraMonthlyAcceleratesPayoff(t *testing.T) {
	svc := NewAmortizationService(nil, 0)
	in := referenceInput()
	in.ExtraMonthly = 200

	result, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)

	summary := result.Summary
	assert.Equal(t, 280, summary.ActualPayments)
	assert.InDelta(t, 315107.29, summary.TotalInterest, 0.01)
	assert.InDelta(t, float64(360-280)/12, summary.YearsSaved, 1e-9)
	assert.Less(t, summary.TotalInterest, summary.StandardTotalInterest)
	assert.Greater(t, summary.InterestSaved, 0.0)
}

func TestCalculate_ExtrasNeverLengthenPayoff(t *testing.T) {
	svc := NewAmortizationService(nil, 0)

	for _, extra := range []float64{25, 200, 1000, 5000} {
		in := referenceInput()
		in.ExtraMonthly = extra

		result, err := svc.Calculate(context.Background(), in)
		require.NoError(t, err)

		assert.LessOrEqual(t, result.Summary.ActualPayments, 360, "extra %.0f", extra)
		assert.GreaterOrEqual(t, result.Summary.YearsSaved, 0.0, "extra %.0f", extra)
	}
}

func TestCalculate_OneTimeExtraAppliedOnce(t *testing.T) {
	svc := NewAmortizationService(nil, 0)
	in := referenceInput()
	in.ExtraMonthly = 100
	in.ExtraOneTime = 10000
	in.ExtraOneTimeMonth = 12

	result, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)

	boosted := 0
	for _, rec := range result.Schedule {
		if rec.Month == 12 {
			assert.Equal(t, 10100.0, rec.ExtraPaid)
			boosted++
		} else {
			assert.Equal(t, 100.0, rec.ExtraPaid, "month %d", rec.Month)
		}
	}
	assert.Equal(t, 1, boosted)
}

func TestCalculate_OneTimeExtraAfterPayoffNeverApplied(t *testing.T) {
	svc := NewAmortizationService(nil, 0)
	in := referenceInput()
	in.ExtraMonthly = 50000
	in.ExtraOneTime = 1000
	in.ExtraOneTimeMonth = 200

	result, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)

	assert.Less(t, result.Summary.ActualPayments, 200)
	for _, rec := range result.Schedule {
		assert.Equal(t, 50000.0, rec.ExtraPaid, "month %d", rec.Month)
	}
}

func TestCalculate_TaxAndInsurancePassThrough(t *testing.T) {
	svc := NewAmortizationService(nil, 0)
	in := referenceInput()
	in.AnnualPropertyTax = 2400
	in.AnnualInsurance = 1200

	result, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)

	summary := result.Summary
	assert.Equal(t, 200.0, summary.MonthlyTax)
	assert.Equal(t, 100.0, summary.MonthlyInsurance)
	assert.InDelta(t, summary.MonthlyPayment+300.0, summary.MonthlyTotal, 1e-9)

	// Add-ons never touch the amortizing balance: interest matches the
	// tax-free reference loan exactly.
	reference, err := svc.Calculate(context.Background(), referenceInput())
	require.NoError(t, err)
	assert.Equal(t, reference.Summary.TotalInterest, summary.TotalInterest)

	for _, rec := range result.Schedule {
		assert.Equal(t, 200.0, rec.TaxPaid)
		assert.Equal(t, 100.0, rec.InsurancePaid)
		assert.Equal(t, summary.MonthlyTotal, rec.Payment)
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	svc := NewAmortizationService(nil, 0)

	tests := []struct {
		name   string
		mutate func(*domain.LoanInput)
		field  string
	}{
		{"negative home price", func(in *domain.LoanInput) { in.HomePrice = -1 }, "home_price"},
		{"down payment too high", func(in *domain.LoanInput) { in.DownPaymentPct = 90 }, "down_payment_pct"},
		{"negative down payment", func(in *domain.LoanInput) { in.DownPaymentPct = -5 }, "down_payment_pct"},
		{"negative rate", func(in *domain.LoanInput) { in.AnnualRatePct = -0.5 }, "annual_rate_pct"},
		{"rate too high", func(in *domain.LoanInput) { in.AnnualRatePct = 101 }, "annual_rate_pct"},
		{"unsupported term", func(in *domain.LoanInput) { in.TermYears = 17 }, "term_years"},
		{"zero term", func(in *domain.LoanInput) { in.TermYears = 0 }, "term_years"},
		{"negative tax", func(in *domain.LoanInput) { in.AnnualPropertyTax = -1 }, "annual_property_tax"},
		{"negative insurance", func(in *domain.LoanInput) { in.AnnualInsurance = -1 }, "annual_insurance"},
		{"negative extra", func(in *domain.LoanInput) { in.ExtraMonthly = -1 }, "extra_monthly"},
		{"negative one-time", func(in *domain.LoanInput) { in.ExtraOneTime = -1 }, "extra_one_time"},
		{"one-time month missing", func(in *domain.LoanInput) { in.ExtraOneTime = 500; in.ExtraOneTimeMonth = 0 }, "extra_one_time_month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInput()
			tt.mutate(&in)

			_, err := svc.Calculate(context.Background(), in)

			var invalid *domain.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestBuildScheduleWithExtras_SafetyLimit(t *testing.T) {
	// A base payment below the accruing interest can never amortize.
	schedule, err := BuildScheduleWithExtras(1000, 0.05, 10, 0, 0, 0, 0, 0, 24)

	require.ErrorIs(t, err, domain.ErrCannotAmortize)
	assert.Nil(t, schedule)
}

func TestCalculate_CacheRoundTrip(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := NewAmortizationService(cache, time.Minute)
	in := referenceInput()
	in.ExtraMonthly = 200

	first, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}
