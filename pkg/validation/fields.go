package validation

import (
	"fmt"
	"math"
)

// Finite checks that a numeric field is a finite number (not NaN or Inf).
func Finite(field string, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("field %s must be a number, got NaN", field)
	}
	if math.IsInf(value, 0) {
		return fmt.Errorf("field %s must be finite, got %v", field, value)
	}
	return nil
}

// FiniteNonNegative checks that a numeric field is finite and not negative.
func FiniteNonNegative(field string, value float64) error {
	if err := Finite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("field %s must not be negative, got %v", field, value)
	}
	return nil
}

// FinitePositive checks that a numeric field is finite and strictly positive.
func FinitePositive(field string, value float64) error {
	if err := Finite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("field %s must be positive, got %v", field, value)
	}
	return nil
}
