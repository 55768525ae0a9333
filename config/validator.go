package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/on-the-ground/allsums/configkeys"
	"github.com/on-the-ground/allsums/log"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "allsums.step")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if c.N < 0 {
		errs = append(errs, ValidationError{
			Field:   configkeys.ConfigTarget,
			Value:   c.N,
			Message: "must be non-negative",
		})
	}
	if c.Step < 1 {
		errs = append(errs, ValidationError{
			Field:   configkeys.ConfigStep,
			Value:   c.Step,
			Message: "must be at least 1",
		})
	}
	if c.MaxN < 0 {
		errs = append(errs, ValidationError{
			Field:   configkeys.ConfigMaxN,
			Value:   c.MaxN,
			Message: "must be non-negative, 0 disables the limit",
		})
	}

	if !slices.Contains(ValidTables(), c.Table.Backend) {
		errs = append(errs, ValidationError{
			Field:   configkeys.ConfigTableBackend,
			Value:   c.Table.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidTables(), ", ")),
		})
	}
	if c.Table.Backend == TableTiered && c.Table.HotEntries < 1 {
		errs = append(errs, ValidationError{
			Field:   configkeys.ConfigTableHotEntries,
			Value:   c.Table.HotEntries,
			Message: "must be at least 1 for the tiered backend",
		})
	}

	if _, err := log.LogLevel(c.Log.Level).ZapLevel(); err != nil {
		errs = append(errs, ValidationError{
			Field:   configkeys.ConfigLogLevel,
			Value:   c.Log.Level,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	return errs
}
