package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/YumizSui/pairmap/internal/matrix"
	"github.com/YumizSui/pairmap/internal/pairmap"
)

// ErrorFormatter provides user-friendly error formatting.
type ErrorFormatter struct {
	verbose bool
}

// NewErrorFormatter creates a new error formatter.
func NewErrorFormatter(verbose bool) *ErrorFormatter {
	return &ErrorFormatter{verbose: verbose}
}

// Format converts an error to a user-friendly message.
func (e *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, pairmap.ErrNoPathFound) {
		return "No path connects the source and target at the current thresholds.\n" +
			"Hint: lower --min-score-threshold or raise --max-optimal-path-length."
	}

	var shapeErr *matrix.ShapeError
	if errors.As(err, &shapeErr) {
		return fmt.Sprintf("The score matrix has the wrong shape: %s.\n"+
			"Hint: the matrix must be square with one row per intermediate.", shapeErr)
	}

	var invalidErr *pairmap.InvalidGraphError
	if errors.As(err, &invalidErr) {
		return fmt.Sprintf("Internal graph consistency failure (%s stage). "+
			"This indicates a bug; please report it with your inputs.", invalidErr.Stage)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Generation timed out. Try increasing the timeout with the --timeout flag."
	}

	if e.verbose {
		return fmt.Sprintf("Error: %s", err.Error())
	}

	// For non-verbose mode, surface the most specific part of a wrapped
	// error chain.
	errStr := err.Error()
	if parts := strings.Split(errStr, ":"); len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return errStr
}
