package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstruction is wrapped by all errors returned from
	// constructors that refuse to build an invalid object.
	ErrInvalidConstruction = errors.New("invalid construction")
	// ErrIndexOutOfRange is wrapped by [IndexError].
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ConstructionError describes a violated construction constraint.
type ConstructionError struct {
	// Func is the name of the constructor.
	Func string
	// Constraint describes what was violated, for example "len(knots) == degree+len(points)+1".
	Constraint string
	Want       int
	Got        int
}

func (e *ConstructionError) Error() string {
	if e.Want == 0 && e.Got == 0 {
		return fmt.Sprintf("spline: %s: %s", e.Func, e.Constraint)
	}
	return fmt.Sprintf("spline: %s: %s: want %d, got %d", e.Func, e.Constraint, e.Want, e.Got)
}

func (e *ConstructionError) Unwrap() error { return ErrInvalidConstruction }

// IndexError reports an index outside of the valid range [0, Len).
//
// Fixed-size containers panic with an *IndexError, mirroring Go's array
// indexing; spline accessors whose range depends on the number of control
// points return it as an error.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("spline: %s index %d out of range [0, %d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
