package tui

// LayoutCache stores layout dimensions derived from the window size and the
// catalog, so the view and the scroll handlers agree on geometry.
type LayoutCache struct {
	InnerW int // usable columns inside the app frame
	InnerH int

	LaneW     int // width of the header and cell lanes
	ContentW  int // total strip width in content coordinates
	MaxScroll int // largest valid scrollX
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	frameW, frameV := m.styles.AppStyle.GetFrameSize()
	innerW := width - frameW
	innerH := height - frameV

	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	contentW := m.contentWidth()
	maxScroll := contentW - innerW
	if maxScroll < 0 {
		maxScroll = 0
	}

	return LayoutCache{
		InnerW:    innerW,
		InnerH:    innerH,
		LaneW:     innerW,
		ContentW:  contentW,
		MaxScroll: maxScroll,
	}
}

// contentWidth returns the total width of the strip in content coordinates.
func (m Model) contentWidth() int {
	n := len(m.items)
	if n == 0 {
		return 0
	}
	return n*m.config.Strip.CellWidth + (n-1)*m.config.Strip.CellGap
}

// contentX returns the leading-edge content coordinate of cell i.
func (m Model) contentX(i int) int {
	return i * (m.config.Strip.CellWidth + m.config.Strip.CellGap)
}
