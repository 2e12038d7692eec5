// Package chroma converts colors between the HEX, RGB, HSL, HWB and HSV
// color models.
//
// # Overview
//
// chroma is a pure Go color-model conversion library. RGB is the hub of the
// conversion graph: every other model has a direct formula to and from RGB,
// and conversions between two non-RGB models route through RGB. All
// operations are pure functions; there is no mutable state, no I/O, and
// every function is safe for concurrent use.
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	// Convert a hex string to RGB
//	rgb, err := chroma.HexToRGB("#406273")
//
//	// Convert any color to any model
//	c, err := chroma.Convert(chroma.HSL{H: 200, S: 28, L: 35}, chroma.ModelHWB)
//
//	// All five representations of one color
//	all, err := chroma.AllModels(chroma.RGB{R: 64, G: 98, B: 115})
//
// # Validation
//
// Every entry point validates its input before computing. Out-of-range
// channels, malformed hex strings and unknown model tags are reported as
// typed errors; no function clamps invalid input into range. Use
// [errors.Is] with [ErrMalformedHex], [ErrChannelRange], [ErrInvalidModel]
// and [ErrUnsupportedTarget], or [errors.As] with [RangeError] and
// [HexError] to inspect failures.
//
// # Rounding
//
// HSL, HWB and HSV components are rounded to the nearest integer at the end
// of a conversion, never per intermediate step. Hue is reduced mod 360 so
// results always lie in [0, 360).
//
// # Architecture
//
// The library is a single flat package:
//   - Value types: Hex, RGB, HSL, HWB, HSV (all implement Color and
//     image/color.Color)
//   - Direct conversions: HexToRGB, RGBToHex, RGBToHSL, HSLToRGB,
//     RGBToHWB, HWBToRGB, RGBToHSV, HSVToRGB
//   - Dispatch: Normalize, Convert, AllModels
package chroma

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
