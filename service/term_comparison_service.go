package service

import (
	"context"

	"mortgage-engine/domain"
)

// TermComparisonService evaluates the same loan across every supported
// term so a caller can weigh monthly payment against lifetime interest.
type TermComparisonService struct {
	amortization *AmortizationService
}

func NewTermComparisonService(amortization *AmortizationService) *TermComparisonService {
	return &TermComparisonService{amortization: amortization}
}

// Compare computes the contractual payment and lifetime interest for each
// supported term. Extra payments are stripped so the options reflect the
// base loan only.
func (s *TermComparisonService) Compare(
	ctx context.Context,
	input domain.LoanInput,
) (domain.TermComparisonResult, error) {

	base := input.WithoutExtras()

	options := make([]domain.TermOption, 0, len(SupportedTermYears))
	for _, term := range SupportedTermYears {
		candidate := base
		candidate.TermYears = term

		result, err := s.amortization.Calculate(ctx, candidate)
		if err != nil {
			return domain.TermComparisonResult{}, err
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: result.Summary.MonthlyPayment,
			MonthlyTotal:   result.Summary.MonthlyTotal,
			TotalInterest:  result.Summary.StandardTotalInterest,
		})
	}

	return domain.TermComparisonResult{Options: options}, nil
}
