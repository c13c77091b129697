package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
)

func TestScenarioCompare_ExtraMonthly(t *testing.T) {
	svc := NewScenarioService(NewAmortizationService(nil, 0))
	in := referenceInput()
	in.ExtraMonthly = 200

	result, err := svc.Compare(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 360, result.Standard.ActualPayments)
	assert.Equal(t, 280, result.Accelerated.ActualPayments)
	assert.Equal(t, 80, result.Savings.MonthsSaved)
	assert.InDelta(t, 80.0/12, result.Savings.YearsSaved, 1e-9)
	assert.InDelta(t, 112077.71, result.Savings.InterestSaved, 0.05)
	assert.NotEmpty(t, result.Explanation)
}

func TestScenarioCompare_RequiresExtras(t *testing.T) {
	svc := NewScenarioService(NewAmortizationService(nil, 0))

	_, err := svc.Compare(context.Background(), referenceInput())

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestScenarioCompare_InvalidInputPropagates(t *testing.T) {
	svc := NewScenarioService(NewAmortizationService(nil, 0))
	in := referenceInput()
	in.ExtraMonthly = 200
	in.TermYears = 13

	_, err := svc.Compare(context.Background(), in)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "term_years", invalid.Field)
}
