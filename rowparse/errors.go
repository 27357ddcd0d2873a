package rowparse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShapeMismatch          = errors.New("shape mismatch")
	ErrMalformedCounterPrefix = errors.New("malformed counter prefix")
	ErrSchemaAmbiguous        = errors.New("schema declares more than one variable-width field")
	ErrFillIndex              = errors.New("fill index out of range")
)

// ShapeError reports a token count the schema cannot absorb.
type ShapeError struct {
	Expected int
	Got      int
	// Elastic is set when Expected is a lower bound.
	Elastic bool
}

func (e *ShapeError) Error() string {
	if e.Elastic {
		return fmt.Sprintf("shape mismatch: want at least %d tokens, got %d", e.Expected, e.Got)
	}

	return fmt.Sprintf("shape mismatch: want %d tokens, got %d", e.Expected, e.Got)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

type CounterError struct {
	Tokens Tokens
	Reason string
}

func (e *CounterError) Error() string {
	return fmt.Sprintf("malformed counter prefix in [%s]: %s", strings.Join(e.Tokens, " | "), e.Reason)
}

func (e *CounterError) Unwrap() error {
	return ErrMalformedCounterPrefix
}

// Stage is the last state a row reached before it failed.
type Stage int

const (
	StageShape Stage = iota
	StageParse
)

func (s Stage) String() string {
	switch s {
	case StageShape:
		return "shape"
	case StageParse:
		return "parse"
	default:
		return "unknown"
	}
}

type RowError struct {
	Row   int
	Stage Stage
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Stage, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
