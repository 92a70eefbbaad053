// Package sticky computes sticky header positions for a horizontally
// scrolling strip of cells. Headers pin to the leading edge of the viewport
// and are pushed off-screen by the next header, fading out as they go.
//
// The positioner is framework-agnostic: the host reports cell positions and
// measured header widths, and reads the resulting layout back with
// HeaderLayout. All coordinates are relative to the viewport's leading edge
// (0 = pinned position, negative = scrolled past it).
package sticky

import (
	"errors"
	"fmt"
	"math"
)

// Positioner errors.
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrNoHeader      = errors.New("cell has no header")
	ErrNegativeWidth = errors.New("header width must be non-negative")
)

// DefaultHeaderWidth is the placeholder width assigned to every header until
// the host measures the rendered header and reports its real width.
const DefaultHeaderWidth = 120.0

// cell tracks one item of the strip. Identity, order, and header membership
// are fixed at construction; only xPosition and width change afterwards, and
// stickyOffset/opacity are derived from them on every recompute.
type cell[H any] struct {
	id           string
	position     int
	header       *H
	width        float64
	xPosition    float64
	stickyOffset float64
	opacity      float64
}

// HeaderPlacement is the computed layout for one header, in item order.
// This is everything a rendering layer needs to draw the header lane.
type HeaderPlacement[H any] struct {
	Header  H
	Offset  float64
	Opacity float64
	Width   float64
}

// Positioner holds the cell list and computes header placements from the
// reported geometry. It is not safe for concurrent use; confine all calls to
// one event loop.
type Positioner[H any] struct {
	cells       []cell[H]
	byID        map[string]int
	headerIdx   []int // indexes into cells, item order, fixed at construction
	placeholder float64
}

// Option configures a Positioner at construction time.
type Option[H any] func(*Positioner[H])

// WithPlaceholderWidth overrides DefaultHeaderWidth for headers that have not
// been measured yet. Negative values are ignored.
func WithPlaceholderWidth[H any](w float64) Option[H] {
	return func(p *Positioner[H]) {
		if w >= 0 {
			p.placeholder = w
		}
	}
}

// New builds a Positioner for the given item ids, in order. headerOf is a
// sparse mapping from item id to header payload; items without an entry take
// part in the strip but never in header computation.
// Returns ErrDuplicateID if ids contains the same identifier twice.
func New[H any](ids []string, headerOf map[string]H, opts ...Option[H]) (*Positioner[H], error) {
	p := &Positioner[H]{
		cells:       make([]cell[H], 0, len(ids)),
		byID:        make(map[string]int, len(ids)),
		placeholder: DefaultHeaderWidth,
	}
	for _, opt := range opts {
		opt(p)
	}

	for i, id := range ids {
		if _, seen := p.byID[id]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		c := cell[H]{
			id:       id,
			position: i,
			width:    p.placeholder,
			opacity:  1.0,
		}
		if h, ok := headerOf[id]; ok {
			hc := h
			c.header = &hc
			p.headerIdx = append(p.headerIdx, i)
		}
		p.byID[id] = i
		p.cells = append(p.cells, c)
	}

	p.Recompute()
	return p, nil
}

// Len returns the number of cells in the strip.
func (p *Positioner[H]) Len() int {
	return len(p.cells)
}

// HeaderCount returns the number of cells that carry a header.
func (p *Positioner[H]) HeaderCount() int {
	return len(p.headerIdx)
}

// ReportCellMoved records a new leading-edge coordinate for the cell with the
// given id and recomputes all header placements. Unknown ids are silently
// ignored: geometry callbacks can straggle in after an item set change, and
// that is not the host's fault.
func (p *Positioner[H]) ReportCellMoved(id string, x float64) {
	i, ok := p.byID[id]
	if !ok {
		return
	}
	p.cells[i].xPosition = x
	p.Recompute()
}

// ReportHeaderWidth records the measured width of the header owned by id and
// recomputes all header placements. Unlike movement reports, a width report
// for a cell without a header means the host's measurement wiring disagrees
// with the header map, so it fails with ErrNoHeader rather than being
// dropped. No state changes on failure.
func (p *Positioner[H]) ReportHeaderWidth(id string, width float64) error {
	if width < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeWidth, width)
	}
	i, ok := p.byID[id]
	if !ok || p.cells[i].header == nil {
		return fmt.Errorf("%w: %q", ErrNoHeader, id)
	}
	p.cells[i].width = width
	p.Recompute()
	return nil
}

// Recompute derives stickyOffset and opacity for every headered cell from
// the current xPosition/width values. It is deterministic and idempotent, and
// it never touches headerless cells. The two report methods call it
// automatically; it is exported so a host doing batch geometry updates can
// defer it.
//
// Each header's natural position is its cell position clamped to the leading
// edge. A header whose natural slot would overlap its successor's natural
// slot is pushed left just far enough for their edges to touch. The push
// compares against the successor's natural position, not its final one, so
// three or more simultaneously compressed headers are not chained.
func (p *Positioner[H]) Recompute() {
	n := len(p.headerIdx)
	if n == 0 {
		return
	}

	natural := make([]float64, n)
	for k, ci := range p.headerIdx {
		natural[k] = math.Max(0, p.cells[ci].xPosition)
	}

	for k, ci := range p.headerIdx {
		c := &p.cells[ci]
		offset := natural[k]
		if k+1 < n && offset+c.width > natural[k+1] {
			offset = natural[k+1] - c.width
		}

		c.stickyOffset = offset
		switch {
		case offset >= 0:
			c.opacity = 1.0
		case c.width <= 0:
			c.opacity = 0.0
		default:
			c.opacity = math.Max(0, (c.width+offset)/c.width)
		}
	}
}

// HeaderLayout returns the placement of every header, in item order. The
// returned slice is freshly allocated on each call.
func (p *Positioner[H]) HeaderLayout() []HeaderPlacement[H] {
	out := make([]HeaderPlacement[H], 0, len(p.headerIdx))
	for _, ci := range p.headerIdx {
		c := &p.cells[ci]
		out = append(out, HeaderPlacement[H]{
			Header:  *c.header,
			Offset:  c.stickyOffset,
			Opacity: c.opacity,
			Width:   c.width,
		})
	}
	return out
}
