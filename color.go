package chroma

import "fmt"

// Color is a color value tagged with the model it represents. It is
// implemented by exactly [Hex], [RGB], [HSL], [HWB] and [HSV]; the
// conversion engine dispatches over this closed set and rejects anything
// else with [ErrInvalidModel].
type Color interface {
	// Model returns the model tag of the value.
	Model() Model

	// Validate checks the value's invariants and returns a typed error
	// naming the violated field when they do not hold.
	Validate() error
}

// Hex is a color encoded as six hexadecimal digits, two per RGB channel,
// with an optional leading '#'.
type Hex string

// Model returns ModelHex.
func (h Hex) Model() Model { return ModelHex }

// Validate checks that h is exactly six hex digits after stripping an
// optional leading '#'.
func (h Hex) Validate() error {
	s := h.payload()
	if len(s) != 6 {
		return &HexError{Input: h, Reason: fmt.Sprintf("need 6 hex digits, got %d", len(s))}
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return &HexError{Input: h, Reason: fmt.Sprintf("invalid digit %q at position %d", s[i], i)}
		}
	}
	return nil
}

// String returns the payload with a leading '#'.
func (h Hex) String() string {
	return "#" + h.payload()
}

// RGBA implements image/color.Color. A malformed payload renders as
// opaque black.
func (h Hex) RGBA() (r, g, b, a uint32) {
	c, err := HexToRGB(h)
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return c.RGBA()
}

// payload returns the hex digits without the optional leading '#'.
func (h Hex) payload() string {
	s := string(h)
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// RGB is an additive color with integer channels in [0, 255]. Channels are
// int rather than uint8 so that out-of-range input stays representable and
// is rejected by Validate instead of silently truncated.
type RGB struct {
	R int // red [0, 255]
	G int // green [0, 255]
	B int // blue [0, 255]
}

// Model returns ModelRGB.
func (c RGB) Model() Model { return ModelRGB }

// Validate checks that all three channels lie in [0, 255].
func (c RGB) Validate() error {
	for _, ch := range []struct {
		name string
		v    int
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return &RangeError{Model: ModelRGB, Field: ch.name, Value: ch.v, Min: 0, Max: 255}
		}
	}
	return nil
}

// String returns the CSS functional notation, e.g. "rgb(64, 98, 115)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. Out-of-range channels render as
// opaque black.
func (c RGB) RGBA() (r, g, b, a uint32) {
	if err := c.Validate(); err != nil {
		return 0, 0, 0, 0xffff
	}
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// HSL is a hue/saturation/lightness color. Hue is in degrees,
// saturation and lightness in percent.
type HSL struct {
	H int // hue [0, 360)
	S int // saturation [0, 100]
	L int // lightness [0, 100]
}

// Model returns ModelHSL.
func (c HSL) Model() Model { return ModelHSL }

// Validate checks hue against [0, 360) and the percentages against [0, 100].
func (c HSL) Validate() error {
	return validateCylindrical(ModelHSL, c.H, "saturation", c.S, "lightness", c.L)
}

// String returns the CSS functional notation, e.g. "hsl(200, 28%, 35%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGBA implements image/color.Color. Out-of-range fields render as
// opaque black.
func (c HSL) RGBA() (r, g, b, a uint32) {
	rgb, err := HSLToRGB(c)
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return rgb.RGBA()
}

// HWB is a hue/whiteness/blackness color, an alternate parameterization of
// HSL's chroma plane. Whiteness and blackness may sum past 100; such
// colors are achromatic gray.
type HWB struct {
	H int // hue [0, 360)
	W int // whiteness [0, 100]
	B int // blackness [0, 100]
}

// Model returns ModelHWB.
func (c HWB) Model() Model { return ModelHWB }

// Validate checks hue against [0, 360) and the percentages against [0, 100].
func (c HWB) Validate() error {
	return validateCylindrical(ModelHWB, c.H, "whiteness", c.W, "blackness", c.B)
}

// String returns the CSS functional notation, e.g. "hwb(200 20% 55%)".
func (c HWB) String() string {
	return fmt.Sprintf("hwb(%d %d%% %d%%)", c.H, c.W, c.B)
}

// RGBA implements image/color.Color. Out-of-range fields render as
// opaque black.
func (c HWB) RGBA() (r, g, b, a uint32) {
	rgb, err := HWBToRGB(c)
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return rgb.RGBA()
}

// HSV is a hue/saturation/value (brightness) color. Hue is in degrees,
// saturation and value in percent.
type HSV struct {
	H int // hue [0, 360)
	S int // saturation [0, 100]
	V int // value [0, 100]
}

// Model returns ModelHSV.
func (c HSV) Model() Model { return ModelHSV }

// Validate checks hue against [0, 360) and the percentages against [0, 100].
func (c HSV) Validate() error {
	return validateCylindrical(ModelHSV, c.H, "saturation", c.S, "value", c.V)
}

// String returns the functional notation, e.g. "hsv(200, 44%, 45%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

// RGBA implements image/color.Color. Out-of-range fields render as
// opaque black.
func (c HSV) RGBA() (r, g, b, a uint32) {
	rgb, err := HSVToRGB(c)
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return rgb.RGBA()
}

// validateCylindrical checks the shared hue-plus-two-percentages shape of
// HSL, HWB and HSV. Hue's interval is half-open, so 360 itself is invalid.
func validateCylindrical(m Model, hue int, aName string, a int, bName string, b int) error {
	if hue < 0 || hue > 359 {
		return &RangeError{Model: m, Field: "hue", Value: hue, Min: 0, Max: 359}
	}
	if a < 0 || a > 100 {
		return &RangeError{Model: m, Field: aName, Value: a, Min: 0, Max: 100}
	}
	if b < 0 || b > 100 {
		return &RangeError{Model: m, Field: bName, Value: b, Min: 0, Max: 100}
	}
	return nil
}
