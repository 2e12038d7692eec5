package chroma

import (
	"fmt"
	"strings"
)

// Model identifies one of the five supported color models.
type Model uint8

const (
	// ModelHex is a 6-digit hexadecimal string, two digits per RGB channel.
	ModelHex Model = iota

	// ModelRGB is additive red/green/blue with integer channels in [0, 255].
	ModelRGB

	// ModelHSL is the hue/saturation/lightness cylindrical model.
	ModelHSL

	// ModelHWB is the hue/whiteness/blackness model.
	ModelHWB

	// ModelHSV is the hue/saturation/value cylindrical model.
	ModelHSV

	numModels
)

// String returns the model name.
func (m Model) String() string {
	switch m {
	case ModelHex:
		return "hex"
	case ModelRGB:
		return "rgb"
	case ModelHSL:
		return "hsl"
	case ModelHWB:
		return "hwb"
	case ModelHSV:
		return "hsv"
	default:
		return fmt.Sprintf("model(%d)", uint8(m))
	}
}

// valid reports whether m is one of the five supported models.
func (m Model) valid() bool {
	return m < numModels
}

// ParseModel maps a model name ("hex", "rgb", "hsl", "hwb", "hsv",
// case-insensitive) to its Model. Unknown names fail with
// [ErrInvalidModel].
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "hex":
		return ModelHex, nil
	case "rgb":
		return ModelRGB, nil
	case "hsl":
		return ModelHSL, nil
	case "hwb":
		return ModelHWB, nil
	case "hsv":
		return ModelHSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidModel, s)
	}
}

// ModelList returns the five supported models in conversion-table order.
func ModelList() []Model {
	return []Model{ModelHex, ModelRGB, ModelHSL, ModelHWB, ModelHSV}
}
