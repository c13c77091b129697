package domain

import (
	"errors"
	"fmt"
)

// ErrCannotAmortize is returned when the schedule simulation reaches its
// safety bound before the balance hits zero, meaning the configured
// payment cannot cover the accruing interest.
var ErrCannotAmortize = errors.New("payments cannot amortize the balance")

// InvalidInputError reports a loan parameter outside its declared domain.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
