// Package fault defines the error markers shared by the plan-building
// packages and the helpers that attach operation context to them.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPrecondition reports an operation attempted before the command has an owner.
	ErrPrecondition = errors.New("precondition failed")
	// ErrValidation reports a missing or malformed argument, a wrong settings
	// role, or a command that is not registered with its owner.
	ErrValidation = errors.New("validation error")
	// ErrRange reports an index-based lookup outside the current bounds.
	ErrRange = errors.New("index out of range")
	// ErrConfiguration reports a filter graph whose arities do not line up.
	ErrConfiguration = errors.New("configuration error")
	// ErrProbe reports a failed metadata probe.
	ErrProbe = errors.New("probe failed")
)

// Wrap builds an error message that includes operation context while tagging
// it with marker for later classification. marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind classifies err by marker. It returns "" for unmarked errors.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPrecondition):
		return "precondition"
	case errors.Is(err, ErrRange):
		return "range"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrProbe):
		return "probe"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return ""
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "plan failure"
	}
	return strings.Join(parts, ": ")
}
