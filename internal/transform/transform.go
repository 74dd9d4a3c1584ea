package transform

import (
	"fmt"

	"github.com/rgehrsitz/finhealth/internal/domain"
)

// Transform is one what-if change to a snapshot. Transforms compose: each
// receives the output of the previous one and never mutates its input.
type Transform interface {
	// Apply returns a modified copy of base
	Apply(base domain.FinancialData) (domain.FinancialData, error)

	// Name returns a short identifier such as "scale_expense"
	Name() string

	// Description returns a human-readable summary of the change
	Description() string

	// Validate checks the parameters against base without applying them
	Validate(base domain.FinancialData) error
}

// ApplyTransforms applies transforms in order. Each is validated against the
// output of the one before it.
func ApplyTransforms(base domain.FinancialData, transforms []Transform) (domain.FinancialData, error) {
	current := base
	for i, t := range transforms {
		if t == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError describes a transform that could not be built or applied
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
