package chroma

import (
	"errors"
	"strings"
	"testing"
)

func TestHexError(t *testing.T) {
	err := Hex("ZZZZZZ").Validate()
	var he *HexError
	if !errors.As(err, &he) {
		t.Fatalf("Validate error = %T, want *HexError", err)
	}
	if he.Input != "ZZZZZZ" {
		t.Errorf("HexError.Input = %q, want %q", he.Input, "ZZZZZZ")
	}
	if !errors.Is(err, ErrMalformedHex) {
		t.Error("HexError does not match ErrMalformedHex")
	}
	if errors.Is(err, ErrChannelRange) {
		t.Error("HexError must not match ErrChannelRange")
	}
	if !strings.Contains(err.Error(), "ZZZZZZ") {
		t.Errorf("error message %q does not name the offending input", err)
	}
}

func TestRangeError(t *testing.T) {
	err := RGB{300, 0, 0}.Validate()
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("Validate error = %T, want *RangeError", err)
	}
	if re.Model != ModelRGB || re.Field != "red" || re.Value != 300 {
		t.Errorf("RangeError = %+v, want rgb/red/300", re)
	}
	if re.Min != 0 || re.Max != 255 {
		t.Errorf("RangeError bounds = [%d, %d], want [0, 255]", re.Min, re.Max)
	}
	msg := err.Error()
	for _, part := range []string{"rgb", "red", "300"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message %q missing %q", msg, part)
		}
	}
	if !errors.Is(err, ErrChannelRange) {
		t.Error("RangeError does not match ErrChannelRange")
	}
}

func TestModelErrors(t *testing.T) {
	if _, err := ParseModel("cmyk"); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("ParseModel(cmyk) error = %v, want ErrInvalidModel", err)
	}
	if _, err := Convert(RGB{0, 0, 0}, Model(7)); !errors.Is(err, ErrUnsupportedTarget) {
		t.Errorf("Convert to model(7) error = %v, want ErrUnsupportedTarget", err)
	}
}
