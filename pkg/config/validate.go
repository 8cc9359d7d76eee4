package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration validates that a duration is greater than zero.
//
// Example:
//
//	if err := ValidatePositiveDuration(timeout); err != nil {
//	    return fmt.Errorf("invalid timeout: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidatePositiveInt64 validates that n is greater than zero.
func ValidatePositiveInt64(n int64) error {
	if n <= 0 {
		return fmt.Errorf("value must be positive, got %d", n)
	}
	return nil
}

// ValidateFloatRange validates that f lies within [min, max].
func ValidateFloatRange(f, min, max float64) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	// NaN fails both comparisons, so test for membership rather than exclusion
	if !(f >= min && f <= max) {
		return fmt.Errorf("value %v is outside [%v, %v]", f, min, max)
	}
	return nil
}
