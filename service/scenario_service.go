package service

import (
	"context"

	"mortgage-engine/domain"
)

// ScenarioService compares the contractual schedule against the
// extra-payment schedule for the same loan.
type ScenarioService struct {
	amortization *AmortizationService
	explanations *ExplanationService
}

func NewScenarioService(amortization *AmortizationService) *ScenarioService {
	return &ScenarioService{
		amortization: amortization,
		explanations: NewExplanationService(),
	}
}

// Compare runs the loan with and without its extra payments and reports
// the savings delta. The input must carry at least one extra payment,
// otherwise both scenarios would be identical.
func (s *ScenarioService) Compare(
	ctx context.Context,
	input domain.LoanInput,
) (domain.ScenarioComparison, error) {

	if !input.HasExtras() {
		return domain.ScenarioComparison{}, &domain.InvalidInputError{
			Field:  "extra_monthly",
			Reason: "at least one extra payment is required for a comparison",
		}
	}

	accelerated, err := s.amortization.Calculate(ctx, input)
	if err != nil {
		return domain.ScenarioComparison{}, err
	}

	standard, err := s.amortization.Calculate(ctx, input.WithoutExtras())
	if err != nil {
		return domain.ScenarioComparison{}, err
	}

	monthsSaved := standard.Summary.ActualPayments - accelerated.Summary.ActualPayments
	savings := domain.Savings{
		InterestSaved: standard.Summary.TotalInterest - accelerated.Summary.TotalInterest,
		MonthsSaved:   monthsSaved,
		YearsSaved:    float64(monthsSaved) / MonthsPerYear,
	}

	return domain.ScenarioComparison{
		Standard:    standard.Summary,
		Accelerated: accelerated.Summary,
		Savings:     savings,
		Explanation: s.explanations.PayoffExplanation(accelerated.Summary, savings),
	}, nil
}
