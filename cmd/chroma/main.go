// Command chroma converts a color between the hex, rgb, hsl, hwb and hsv
// models.
//
// The color argument uses the model's own notation:
//
//	chroma "#406273"
//	chroma "rgb(64, 98, 115)"
//	chroma -to hwb "hsl(200, 28%, 35%)"
//
// Without -to, the color is printed in all five models next to a terminal
// swatch.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/chroma"
)

func main() {
	var (
		to      = flag.String("to", "", "target model (hex, rgb, hsl, hwb, hsv); empty prints all")
		verbose = flag.Bool("v", false, "log conversions to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-to model] [-v] <color>\n", os.Args[0])
		os.Exit(2)
	}

	if *verbose {
		chroma.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := parseColor(flag.Arg(0))
	if err != nil {
		log.Fatalf("Bad color: %v", err)
	}

	if *to != "" {
		target, err := chroma.ParseModel(*to)
		if err != nil {
			log.Fatalf("Bad target: %v", err)
		}
		out, err := chroma.Convert(c, target)
		if err != nil {
			log.Fatalf("Conversion failed: %v", err)
		}
		fmt.Println(out)
		return
	}

	all, err := chroma.AllModels(c)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
	printAll(all)
}

// parseColor reads a color in its model's own notation: "#rrggbb" (or bare
// "rrggbb") for hex, otherwise "model(a, b, c)" with optional % signs and
// either comma or space separators.
func parseColor(s string) (chroma.Color, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return chroma.Hex(s), nil
	}
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("missing closing parenthesis in %q", s)
	}

	model, err := chroma.ParseModel(strings.TrimSpace(s[:open]))
	if err != nil {
		return nil, err
	}
	if model == chroma.ModelHex {
		return nil, fmt.Errorf("hex colors are written #rrggbb, not hex(...)")
	}

	parts := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) != 3 {
		return nil, fmt.Errorf("%s needs 3 components, got %d", model, len(parts))
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSuffix(p, "%"))
		if err != nil {
			return nil, fmt.Errorf("bad %s component %q", model, p)
		}
		n[i] = v
	}

	switch model {
	case chroma.ModelRGB:
		return chroma.RGB{R: n[0], G: n[1], B: n[2]}, nil
	case chroma.ModelHSL:
		return chroma.HSL{H: n[0], S: n[1], L: n[2]}, nil
	case chroma.ModelHWB:
		return chroma.HWB{H: n[0], W: n[1], B: n[2]}, nil
	default:
		return chroma.HSV{H: n[0], S: n[1], V: n[2]}, nil
	}
}

// printAll renders a swatch and the five representations.
func printAll(all chroma.Models) {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(all.Hex.String())).
		Render(strings.Repeat(" ", 10))
	label := lipgloss.NewStyle().Bold(true).Width(5)

	fmt.Println(swatch)
	fmt.Println(label.Render("hex"), all.Hex)
	fmt.Println(label.Render("rgb"), all.RGB)
	fmt.Println(label.Render("hsl"), all.HSL)
	fmt.Println(label.Render("hwb"), all.HWB)
	fmt.Println(label.Render("hsv"), all.HSV)
}
