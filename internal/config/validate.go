package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Validation errors.
var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrInvalidServiceName = errors.New("service name contains invalid characters")
	ErrServiceNameTooLong = errors.New("service name exceeds maximum length")
	ErrEmptyCommand       = errors.New("service command cannot be empty")
	ErrNegativeInterval   = errors.New("interval cannot be negative")
)

// MaxServiceNameLength is the maximum service name length.
const MaxServiceNameLength = 64

// validServiceNameRegex matches valid service names:
// must start alphanumeric; dash, underscore, dot, and space allowed after.
var validServiceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._ -]*$`)

// ValidationError wraps a validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateServiceName checks that a service name is usable as an identity.
func ValidateServiceName(name string) error {
	if name == "" {
		return ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return ErrServiceNameTooLong
	}
	if !validServiceNameRegex.MatchString(name) {
		return ErrInvalidServiceName
	}
	return nil
}

// Validate checks every service definition in the config.
func (c *Config) Validate() error {
	for name, sc := range c.Services {
		if err := ValidateServiceName(name); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("services.%s", name),
				Message: err.Error(),
				Err:     err,
			}
		}
		if sc.Command == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("services.%s.command", name),
				Message: ErrEmptyCommand.Error(),
				Err:     ErrEmptyCommand,
			}
		}
		for field, d := range map[string]Duration{
			"sleep":         sc.Sleep,
			"poll-interval": sc.PollInterval,
			"cycle-timeout": sc.CycleTimeout,
		} {
			if d < 0 {
				return &ValidationError{
					Field:   fmt.Sprintf("services.%s.%s", name, field),
					Message: ErrNegativeInterval.Error(),
					Err:     ErrNegativeInterval,
				}
			}
		}
	}
	return nil
}
