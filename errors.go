package chroma

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion engine. Structured errors returned by
// the package match these via errors.Is.
var (
	// ErrMalformedHex reports a hex payload that is not exactly six hex
	// digits after stripping an optional leading '#'.
	ErrMalformedHex = errors.New("chroma: malformed hex color")

	// ErrChannelRange reports a numeric field outside its model's interval.
	ErrChannelRange = errors.New("chroma: channel out of range")

	// ErrInvalidModel reports a color whose model tag is not one of the
	// five supported models.
	ErrInvalidModel = errors.New("chroma: invalid color model")

	// ErrUnsupportedTarget reports a conversion target that is not one of
	// the five supported models.
	ErrUnsupportedTarget = errors.New("chroma: unsupported target model")
)

// HexError describes a malformed hex payload. It matches
// [ErrMalformedHex] via errors.Is.
type HexError struct {
	Input  Hex    // the offending payload, as supplied
	Reason string // what is wrong with it
}

func (e *HexError) Error() string {
	return fmt.Sprintf("chroma: malformed hex color %q: %s", string(e.Input), e.Reason)
}

// Is reports whether e matches target.
func (e *HexError) Is(target error) bool {
	return target == ErrMalformedHex
}

// RangeError describes a numeric field outside its model's valid interval.
// It matches [ErrChannelRange] via errors.Is.
type RangeError struct {
	Model Model  // model the value belongs to
	Field string // field name, e.g. "red" or "lightness"
	Value int    // the offending value
	Min   int    // inclusive lower bound
	Max   int    // inclusive upper bound
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("chroma: %s %s = %d out of range [%d, %d]",
		e.Model, e.Field, e.Value, e.Min, e.Max)
}

// Is reports whether e matches target.
func (e *RangeError) Is(target error) bool {
	return target == ErrChannelRange
}
