package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks fatal setup problems: bad arguments, an invalid
	// media kind, a missing external tool. Nothing is processed after one.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalTool marks a subprocess failure. Recoverable per file.
	ErrExternalTool = errors.New("external tool error")
	// ErrMetadata marks a file whose probe data is insufficient to decide
	// anything. Recoverable per file.
	ErrMetadata = errors.New("insufficient metadata")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err should abort the run rather than skip the file.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
