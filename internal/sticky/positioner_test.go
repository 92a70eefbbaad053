package sticky

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

// newTestPositioner builds a strip of n cells named "c0".."cN-1" with string
// headers on the given indexes (header payload = the cell id).
func newTestPositioner(t *testing.T, n int, headerAt ...int) *Positioner[string] {
	t.Helper()

	ids := make([]string, n)
	for i := range ids {
		ids[i] = "c" + string(rune('0'+i))
	}
	headers := make(map[string]string, len(headerAt))
	for _, i := range headerAt {
		headers[ids[i]] = ids[i]
	}

	p, err := New(ids, headers)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]string{"a", "b", "a"}, map[string]string{})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("New() error = %v, want ErrDuplicateID", err)
	}
}

func TestNoHeadersLayoutIsEmpty(t *testing.T) {
	p := newTestPositioner(t, 4)

	p.ReportCellMoved("c0", -300)
	p.ReportCellMoved("c3", 42)
	p.Recompute()

	if got := p.HeaderLayout(); len(got) != 0 {
		t.Fatalf("HeaderLayout() = %v, want empty", got)
	}
}

func TestSingleHeaderClampsToLeadingEdge(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		wantOffset float64
	}{
		{"far right", 250, 250},
		{"at edge", 0, 0},
		{"just left of edge", -1, 0}, // natural clamp, width default keeps it pinned
		{"negative far", -500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPositioner(t, 3, 1)
			p.ReportCellMoved("c1", tt.x)

			layout := p.HeaderLayout()
			if len(layout) != 1 {
				t.Fatalf("HeaderLayout() has %d entries, want 1", len(layout))
			}
			if !almostEqual(layout[0].Offset, tt.wantOffset) {
				t.Errorf("Offset = %v, want %v", layout[0].Offset, tt.wantOffset)
			}
			if layout[0].Offset >= 0 && !almostEqual(layout[0].Opacity, 1.0) {
				t.Errorf("Opacity = %v, want 1.0 for non-negative offset", layout[0].Opacity)
			}
		})
	}
}

func TestCollisionPushesPredecessorLeft(t *testing.T) {
	// H0 width 100 at natural 0, H1 at natural 50: H0's right edge would sit
	// at 100 > 50, so H0 is pushed to 50-100 = -50 and fades to 0.5.
	p := newTestPositioner(t, 2, 0, 1)
	if err := p.ReportHeaderWidth("c0", 100); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}
	if err := p.ReportHeaderWidth("c1", 100); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}
	p.ReportCellMoved("c0", -20)
	p.ReportCellMoved("c1", 50)

	layout := p.HeaderLayout()
	if !almostEqual(layout[0].Offset, -50) {
		t.Errorf("H0 Offset = %v, want -50", layout[0].Offset)
	}
	if !almostEqual(layout[0].Opacity, 0.5) {
		t.Errorf("H0 Opacity = %v, want 0.5", layout[0].Opacity)
	}
	if !almostEqual(layout[1].Offset, 50) {
		t.Errorf("H1 Offset = %v, want 50", layout[1].Offset)
	}
	if !almostEqual(layout[1].Opacity, 1.0) {
		t.Errorf("H1 Opacity = %v, want 1.0", layout[1].Opacity)
	}
}

func TestOpacityFadesLinearly(t *testing.T) {
	const width = 80.0

	p := newTestPositioner(t, 2, 0, 1)
	if err := p.ReportHeaderWidth("c0", width); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}
	if err := p.ReportHeaderWidth("c1", width); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}

	// Keep the successor far away so only the fade is in play. The push
	// against c1's natural slot is what drags c0's offset negative.
	p.ReportCellMoved("c0", -1000)

	prev := 1.1
	for nextX := width; nextX >= -width; nextX -= 8 {
		p.ReportCellMoved("c1", nextX)

		// c0 offset = nextNatural - width
		wantOffset := math.Max(0, nextX) - width
		wantOpacity := math.Max(0, (width+wantOffset)/width)

		layout := p.HeaderLayout()
		if !almostEqual(layout[0].Offset, wantOffset) {
			t.Fatalf("at nextX=%v: Offset = %v, want %v", nextX, layout[0].Offset, wantOffset)
		}
		if !almostEqual(layout[0].Opacity, wantOpacity) {
			t.Fatalf("at nextX=%v: Opacity = %v, want %v", nextX, layout[0].Opacity, wantOpacity)
		}
		if layout[0].Opacity > prev+epsilon {
			t.Fatalf("at nextX=%v: opacity %v increased from %v while scrolling out", nextX, layout[0].Opacity, prev)
		}
		prev = layout[0].Opacity
	}

	// Fully pushed past the edge: opacity bottoms out at zero.
	p.ReportCellMoved("c1", 0)
	if got := p.HeaderLayout()[0].Opacity; !almostEqual(got, 0) {
		t.Errorf("fully pushed out: Opacity = %v, want 0", got)
	}
}

func TestCollisionDoesNotCascade(t *testing.T) {
	// Three headers compressed at once. H0 reacts to H1's natural slot only,
	// never to H1's own pushed offset, so H0 and H1 may still overlap. The
	// push is deliberately single-pass; this test pins that down.
	p := newTestPositioner(t, 3, 0, 1, 2)
	for _, id := range []string{"c0", "c1", "c2"} {
		if err := p.ReportHeaderWidth(id, 100); err != nil {
			t.Fatalf("ReportHeaderWidth(%q) error = %v", id, err)
		}
	}
	p.ReportCellMoved("c0", 0)
	p.ReportCellMoved("c1", 50)
	p.ReportCellMoved("c2", 90)

	layout := p.HeaderLayout()
	// H1 pushed by H2's natural 90: 90-100 = -10.
	if !almostEqual(layout[1].Offset, -10) {
		t.Errorf("H1 Offset = %v, want -10", layout[1].Offset)
	}
	// H0 pushed by H1's NATURAL 50 (not its final -10): 50-100 = -50.
	if !almostEqual(layout[0].Offset, -50) {
		t.Errorf("H0 Offset = %v, want -50 (push must use the successor's natural position)", layout[0].Offset)
	}
	if !almostEqual(layout[2].Offset, 90) {
		t.Errorf("H2 Offset = %v, want 90", layout[2].Offset)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	p := newTestPositioner(t, 5, 0, 2, 4)
	if err := p.ReportHeaderWidth("c0", 60); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}
	p.ReportCellMoved("c0", -30)
	p.ReportCellMoved("c2", 25)
	p.ReportCellMoved("c4", 300)

	first := p.HeaderLayout()
	p.Recompute()
	p.Recompute()
	second := p.HeaderLayout()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("layout changed across recomputes:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestHeaderLayoutPreservesItemOrder(t *testing.T) {
	p := newTestPositioner(t, 4, 0, 1, 3)

	// Report geometry out of order; layout order must follow item order.
	p.ReportCellMoved("c3", 10)
	p.ReportCellMoved("c0", 500)
	p.ReportCellMoved("c1", -80)

	layout := p.HeaderLayout()
	want := []string{"c0", "c1", "c3"}
	if len(layout) != len(want) {
		t.Fatalf("HeaderLayout() has %d entries, want %d", len(layout), len(want))
	}
	for i, placement := range layout {
		if placement.Header != want[i] {
			t.Errorf("layout[%d].Header = %q, want %q", i, placement.Header, want[i])
		}
	}
}

func TestUnknownIDMoveIsIgnored(t *testing.T) {
	p := newTestPositioner(t, 2, 0)
	p.ReportCellMoved("c0", 33)
	before := p.HeaderLayout()

	p.ReportCellMoved("nonexistent", 42)

	if after := p.HeaderLayout(); !reflect.DeepEqual(before, after) {
		t.Errorf("layout changed after unknown-id move:\nbefore: %v\nafter:  %v", before, after)
	}
}

func TestWidthReportRequiresHeader(t *testing.T) {
	p := newTestPositioner(t, 3, 0)
	p.ReportCellMoved("c0", 15)
	before := p.HeaderLayout()

	tests := []struct {
		name    string
		id      string
		width   float64
		wantErr error
	}{
		{"headerless cell", "c1", 80, ErrNoHeader},
		{"unknown id", "ghost", 80, ErrNoHeader},
		{"negative width", "c0", -1, ErrNegativeWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.ReportHeaderWidth(tt.id, tt.width); !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReportHeaderWidth(%q, %v) error = %v, want %v", tt.id, tt.width, err, tt.wantErr)
			}
			if after := p.HeaderLayout(); !reflect.DeepEqual(before, after) {
				t.Errorf("state changed after failed width report")
			}
		})
	}
}

func TestDefaultWidthUntilMeasured(t *testing.T) {
	p := newTestPositioner(t, 1, 0)

	if got := p.HeaderLayout()[0].Width; !almostEqual(got, DefaultHeaderWidth) {
		t.Fatalf("unmeasured Width = %v, want %v", got, DefaultHeaderWidth)
	}
	if err := p.ReportHeaderWidth("c0", 37); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}
	if got := p.HeaderLayout()[0].Width; !almostEqual(got, 37) {
		t.Errorf("measured Width = %v, want 37", got)
	}
}

func TestPlaceholderWidthOption(t *testing.T) {
	p, err := New([]string{"c0"}, map[string]string{"c0": "H0"},
		WithPlaceholderWidth[string](7))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := p.HeaderLayout()[0].Width; !almostEqual(got, 7) {
		t.Errorf("placeholder Width = %v, want 7", got)
	}
}

func TestZeroWidthHeaderNeverOverlaps(t *testing.T) {
	// A zero-width header cannot collide with its successor, so it stays at
	// its natural clamp and keeps full opacity even when fully compressed.
	p := newTestPositioner(t, 2, 0, 1)
	if err := p.ReportHeaderWidth("c0", 0); err != nil {
		t.Fatalf("ReportHeaderWidth() error = %v", err)
	}
	p.ReportCellMoved("c0", -10)
	p.ReportCellMoved("c1", 0)

	layout := p.HeaderLayout()
	if !almostEqual(layout[0].Offset, 0) {
		t.Errorf("Offset = %v, want 0", layout[0].Offset)
	}
	if !almostEqual(layout[0].Opacity, 1.0) {
		t.Errorf("Opacity = %v, want 1.0", layout[0].Opacity)
	}
}
