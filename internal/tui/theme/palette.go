package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Header      lipgloss.Color
	HeaderText  lipgloss.Color
	Cell        lipgloss.Color
	CellAlt     lipgloss.Color
	Warning     lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	cellAlt := t.CellAlt
	if cellAlt == "" {
		if isLightTheme(t.Bg) {
			cellAlt = blendColors(t.Cell, "#000000", 0.10)
		} else {
			cellAlt = blendColors(t.Cell, "#ffffff", 0.12)
		}
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Header:      lipgloss.Color(t.Header),
		HeaderText:  lipgloss.Color(t.HeaderText),
		Cell:        lipgloss.Color(t.Cell),
		CellAlt:     lipgloss.Color(cellAlt),
		Warning:     lipgloss.Color(t.Warning),
	}
}

// Fade blends hex toward the theme background by 1-opacity. opacity 1 returns
// the color unchanged, opacity 0 returns the background; this is how the
// terminal renders the positioner's opacity channel.
func (p *Palette) Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return lipgloss.Color(blendColors(string(c), string(p.Bg), 1-opacity))
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// blendColors mixes hex toward other by ratio (0 keeps hex, 1 yields other).
func blendColors(hex, other string, ratio float64) string {
	r1, g1, b1, ok1 := parseHexColor(hex)
	r2, g2, b2, ok2 := parseHexColor(other)
	if !ok1 || !ok2 {
		return hex
	}

	r := int(math.Round(float64(r1)*(1-ratio) + float64(r2)*ratio))
	g := int(math.Round(float64(g1)*(1-ratio) + float64(g2)*ratio))
	b := int(math.Round(float64(b1)*(1-ratio) + float64(b2)*ratio))

	return formatHexColor(r, g, b)
}

// relativeLuminance computes perceived brightness in [0,1] for a hex color.
func relativeLuminance(hex string) float64 {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return 0
	}
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// parseHexColor parses "#rrggbb" into components.
func parseHexColor(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	if !parseHexByte(hex[1:3], &r) || !parseHexByte(hex[3:5], &g) || !parseHexByte(hex[5:7], &b) {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

func parseHexByte(s string, v *int) bool {
	val := 0
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			val += int(c-'A') + 10
		default:
			return false
		}
	}
	*v = val
	return true
}

func formatHexColor(r, g, b int) string {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	const digits = "0123456789abcdef"
	r, g, b = clamp(r), clamp(g), clamp(b)
	return string([]byte{
		'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}
