// Package errors provides sentinel errors and error types for the rules engine.
// Every failure the engine can report maps onto one sentinel, so callers branch
// with errors.Is() and recover context with errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds of the engine.
var (
	// ErrParse indicates malformed board text, compact board or move notation.
	ErrParse = errors.New("parse failure")

	// ErrOutOfBounds indicates a square outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrPieceState indicates a missing piece, a piece of the wrong side, or a
	// missing king.
	ErrPieceState = errors.New("invalid piece state")

	// ErrIllegalMove indicates a move that is not among the legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingPromotion indicates a promoting pawn move without a promotion choice.
	ErrMissingPromotion = errors.New("missing promotion")

	// ErrAmbiguousNotation indicates notation that matches more than one piece.
	ErrAmbiguousNotation = errors.New("ambiguous notation")

	// ErrNoMatch indicates notation that matches no piece.
	ErrNoMatch = errors.New("no matching piece")
)

// ParseError represents a parsing error with location context.
// It's used for board text, compact boards and move notation.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // What was being parsed ("board", "compact board", "notation", ...)
	Line     int    // Line or rank number (1-based, 0 if not applicable)
	Column   int    // Column number (1-based, 0 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := e.Input
		if e.Line > 0 {
			loc += fmt.Sprintf(" line %d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(" column %d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with the move being validated or decoded.
type MoveError struct {
	Err      error  // The underlying error
	Notation string // Move notation (if the move came from text)
	From     string // Origin square name (if known)
	To       string // Destination square name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		context = "move"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
