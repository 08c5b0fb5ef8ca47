package guardkit

import (
	"errors"
	"fmt"
)

// Error classification sentinels. Use errors.Is against these, or errors.As
// against the concrete error types, to branch on failure class.
var (
	// ErrValidation marks rejections of bad input by a registered predicate.
	ErrValidation = errors.New("guardkit: validation failed")

	// ErrConfig marks authoring defects: a panicking predicate, a nil
	// predicate, or an unresolvable identity. Non-retryable.
	ErrConfig = errors.New("guardkit: invalid guard configuration")
)

// ValidationError is returned when a registered predicate rejects a value.
// It carries the rendered message and the identity of the failing member for
// diagnostics.
type ValidationError struct {
	// Identity names the member whose guard rejected the value.
	Identity Identity
	// Message is the failure message rendered from the entry's template.
	Message string
	// Value is the rejected value, untouched.
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Identity, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match without losing the concrete type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigError is returned for defects in guard authoring rather than bad
// input: a predicate that panicked, a nil predicate, or an identity that
// cannot serve as a stable key. It indicates a programming mistake and is
// never worth retrying.
type ConfigError struct {
	Identity Identity
	Reason   string
	// Recovered holds the recovered panic value when the defect is a
	// panicking predicate, nil otherwise.
	Recovered any
}

func (e *ConfigError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("guard configuration error at %s: %s (panic: %v)", e.Identity, e.Reason, e.Recovered)
	}
	return fmt.Sprintf("guard configuration error at %s: %s", e.Identity, e.Reason)
}

// Is lets errors.Is(err, ErrConfig) match without losing the concrete type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// IsValidationError reports whether err is (or wraps) a validation
// rejection, as opposed to a configuration defect or an unrelated error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ExtractValidationError returns the underlying *ValidationError, or nil if
// err does not carry one.
func ExtractValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsConfigError reports whether err is (or wraps) a guard configuration
// defect.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
