package chroma

import (
	"errors"
	"testing"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		in      string
		want    Model
		wantErr bool
	}{
		{in: "hex", want: ModelHex},
		{in: "rgb", want: ModelRGB},
		{in: "hsl", want: ModelHSL},
		{in: "hwb", want: ModelHWB},
		{in: "hsv", want: ModelHSV},
		{in: "HSL", want: ModelHSL},
		{in: "cmyk", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidModel) {
					t.Fatalf("ParseModel(%q) error = %v, want ErrInvalidModel", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseModel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModelString(t *testing.T) {
	for _, m := range ModelList() {
		if _, err := ParseModel(m.String()); err != nil {
			t.Errorf("ParseModel(%q) should round-trip the model name", m.String())
		}
	}
	if got := Model(99).String(); got != "model(99)" {
		t.Errorf("Model(99).String() = %q, want %q", got, "model(99)")
	}
}

func TestModels(t *testing.T) {
	ms := ModelList()
	if len(ms) != 5 {
		t.Fatalf("Models() returned %d models, want 5", len(ms))
	}
	for _, m := range ms {
		if !m.valid() {
			t.Errorf("Models() contains invalid model %v", m)
		}
	}
}
