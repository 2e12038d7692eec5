package chroma

import (
	"fmt"
	"math"
	"strconv"
)

// HexToRGB splits the hex payload into three 2-digit groups and parses each
// as a base-16 channel. Fails with [ErrMalformedHex] when the stripped
// payload is not exactly six hex digits.
func HexToRGB(h Hex) (RGB, error) {
	if err := h.Validate(); err != nil {
		return RGB{}, err
	}
	s := h.payload()
	r, _ := strconv.ParseInt(s[0:2], 16, 32)
	g, _ := strconv.ParseInt(s[2:4], 16, 32)
	b, _ := strconv.ParseInt(s[4:6], 16, 32)
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToHex zero-pads each channel to two lowercase hex digits and prefixes
// the result with '#'.
func RGBToHex(c RGB) (Hex, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return Hex(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

// RGBToHSL converts via the normalized min/max/delta formula. Achromatic
// input (max == min) yields hue 0 and saturation 0; this branch doubles as
// the divide-by-zero guard. All components are rounded once, at the end.
func RGBToHSL(c RGB) (HSL, error) {
	if err := c.Validate(); err != nil {
		return HSL{}, err
	}
	r, g, b := normalize3(c)
	max, min := maxMin3(r, g, b)
	delta := max - min

	l := (max + min) / 2
	var h, s float64
	if delta != 0 {
		if l > 0.5 {
			s = delta / (2 - max - min)
		} else {
			s = delta / (max + min)
		}
		h = hueDegrees(r, g, b, max, delta)
	}
	return HSL{H: roundHue(h), S: round(s * 100), L: round(l * 100)}, nil
}

// HSLToRGB reconstructs the channels from the chroma/hue-segment
// decomposition. Zero saturation short-circuits to gray.
func HSLToRGB(c HSL) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	h := float64(c.H) / 360
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	if s == 0 {
		v := round(l * 255)
		return RGB{R: v, G: v, B: v}, nil
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: round(hueSegment(p, q, h+1.0/3) * 255),
		G: round(hueSegment(p, q, h) * 255),
		B: round(hueSegment(p, q, h-1.0/3) * 255),
	}, nil
}

// RGBToHWB takes whiteness from the minimum channel and blackness from the
// complement of the maximum; hue is the same computation HSL uses.
func RGBToHWB(c RGB) (HWB, error) {
	if err := c.Validate(); err != nil {
		return HWB{}, err
	}
	r, g, b := normalize3(c)
	max, min := maxMin3(r, g, b)

	var h float64
	if delta := max - min; delta != 0 {
		h = hueDegrees(r, g, b, max, delta)
	}
	return HWB{H: roundHue(h), W: round(min * 100), B: round((1 - max) * 100)}, nil
}

// HWBToRGB blends a fully saturated color at the given hue with the
// whiteness and blackness levels. When whiteness and blackness sum to one
// or more the hue no longer matters and the color is the gray
// whiteness/(whiteness+blackness).
func HWBToRGB(c HWB) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	w := float64(c.W) / 100
	b := float64(c.B) / 100

	if w+b >= 1 {
		gray := round(w / (w + b) * 255)
		return RGB{R: gray, G: gray, B: gray}, nil
	}

	// Fully saturated HSL at this hue: lightness 1/2 makes p=0, q=1.
	h := float64(c.H) / 360
	scale := 1 - w - b
	blend := func(t float64) int {
		return round((hueSegment(0, 1, t)*scale + w) * 255)
	}
	return RGB{
		R: blend(h + 1.0/3),
		G: blend(h),
		B: blend(h - 1.0/3),
	}, nil
}

// RGBToHSV takes value from the maximum channel and saturation from the
// min/max ratio; a zero maximum (black) fixes saturation at 0 to avoid the
// division. Hue is the same computation HSL uses.
func RGBToHSV(c RGB) (HSV, error) {
	if err := c.Validate(); err != nil {
		return HSV{}, err
	}
	r, g, b := normalize3(c)
	max, min := maxMin3(r, g, b)

	var h, s float64
	if max != 0 {
		s = 1 - min/max
	}
	if delta := max - min; delta != 0 {
		h = hueDegrees(r, g, b, max, delta)
	}
	return HSV{H: roundHue(h), S: round(s * 100), V: round(max * 100)}, nil
}

// HSVToRGB decomposes the hue into one of six segments and reconstructs
// the channels from the chroma and two intermediates.
func HSVToRGB(c HSV) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	s := float64(c.S) / 100
	v := float64(c.V) / 100

	h6 := float64(c.H) / 60
	i := int(math.Floor(h6)) % 6
	f := h6 - math.Floor(h6)

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return RGB{R: round(r * 255), G: round(g * 255), B: round(b * 255)}, nil
}

// normalize3 scales the channels of a valid RGB to [0, 1].
func normalize3(c RGB) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func maxMin3(r, g, b float64) (max, min float64) {
	max = math.Max(r, math.Max(g, b))
	min = math.Min(r, math.Min(g, b))
	return max, min
}

// hueDegrees selects the hue by whichever channel is the maximum and
// returns it in degrees [0, 360). delta must be non-zero; achromatic
// colors are handled by the callers.
func hueDegrees(r, g, b, max, delta float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return math.Mod(h*60, 360)
}

// hueSegment is the piecewise HSL channel reconstruction, with t the
// channel's hue offset as a fraction of a full turn.
func hueSegment(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// round is the end-of-conversion rounding policy: nearest integer, halves
// away from zero.
func round(x float64) int {
	return int(math.Round(x))
}

// roundHue rounds a hue in degrees and keeps the result inside [0, 360).
func roundHue(h float64) int {
	return round(h) % 360
}
