package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration reports an error naming key when d is zero or negative.
func ValidatePositiveDuration(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return nil
}
