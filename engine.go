package chroma

import "fmt"

// Models bundles the five representations of a single color, as produced
// by [AllModels].
type Models struct {
	Hex Hex
	RGB RGB
	HSL HSL
	HWB HWB
	HSV HSV
}

// Normalize converts any supported color to RGB using the matching direct
// formula. A nil color or a value outside the five supported types fails
// with [ErrInvalidModel].
func Normalize(c Color) (RGB, error) {
	switch v := c.(type) {
	case Hex:
		return HexToRGB(v)
	case RGB:
		if err := v.Validate(); err != nil {
			return RGB{}, err
		}
		return v, nil
	case HSL:
		return HSLToRGB(v)
	case HWB:
		return HWBToRGB(v)
	case HSV:
		return HSVToRGB(v)
	default:
		return RGB{}, fmt.Errorf("%w: %T", ErrInvalidModel, c)
	}
}

// Convert converts a color to the target model. Pairs with a direct
// formula (hex↔rgb, rgb↔hsl, rgb↔hwb, rgb↔hsv) take it; every other pair
// routes through RGB. Converting a color to its own model validates it and
// returns it unchanged. Fails with [ErrUnsupportedTarget] when target is
// not one of the five models.
func Convert(c Color, target Model) (Color, error) {
	if !target.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
	}
	if c != nil && c.Model() == target {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	rgb, err := Normalize(c)
	if err != nil {
		return nil, err
	}
	out, err := convertRGB(rgb, target)
	if err != nil {
		return nil, err
	}
	Logger().Debug("chroma: convert", "from", c.Model(), "to", target, "result", out)
	return out, nil
}

// AllModels projects a color into all five models with a single
// normalization pass.
func AllModels(c Color) (Models, error) {
	rgb, err := Normalize(c)
	if err != nil {
		return Models{}, err
	}

	hex, err := RGBToHex(rgb)
	if err != nil {
		return Models{}, err
	}
	hsl, err := RGBToHSL(rgb)
	if err != nil {
		return Models{}, err
	}
	hwb, err := RGBToHWB(rgb)
	if err != nil {
		return Models{}, err
	}
	hsv, err := RGBToHSV(rgb)
	if err != nil {
		return Models{}, err
	}
	return Models{Hex: hex, RGB: rgb, HSL: hsl, HWB: hwb, HSV: hsv}, nil
}

// convertRGB applies the direct RGB→target formula. rgb must already be
// valid.
func convertRGB(rgb RGB, target Model) (Color, error) {
	switch target {
	case ModelHex:
		hex, err := RGBToHex(rgb)
		return hex, err
	case ModelRGB:
		return rgb, nil
	case ModelHSL:
		hsl, err := RGBToHSL(rgb)
		return hsl, err
	case ModelHWB:
		hwb, err := RGBToHWB(rgb)
		return hwb, err
	case ModelHSV:
		hsv, err := RGBToHSV(rgb)
		return hsv, err
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
	}
}
