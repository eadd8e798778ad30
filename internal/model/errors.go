package model

import (
	"fmt"
	"strings"
)

// ValidationError marks a comparable whose required transaction data is
// missing or malformed. The comparable is excluded from the run with a
// recorded reason; the analysis itself continues.
type ValidationError struct {
	Comparable string
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("comparable %s: field %s: %s", e.Comparable, e.Field, e.Reason)
}

// UnrecognizedValueError marks a categorical value outside its configured
// ordinal scale. Fatal for the affected comparable only.
type UnrecognizedValueError struct {
	Scale   string
	Value   string
	Allowed []string
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q (allowed: %s)",
		e.Scale, e.Value, strings.Join(e.Allowed, ", "))
}

// ConfigurationError marks invalid shared market parameters. Fatal for the
// whole run.
type ConfigurationError struct {
	Parameter string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("market parameter %s: %s", e.Parameter, e.Reason)
}

// InsufficientDataError is returned by the reconciler when no comparable
// survives validation and weighting.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return "insufficient data: " + e.Reason
}
