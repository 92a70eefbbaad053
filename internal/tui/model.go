package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/nivekalunya/stickystrip/internal/config"
	"github.com/nivekalunya/stickystrip/internal/item"
	"github.com/nivekalunya/stickystrip/internal/sticky"
	"github.com/nivekalunya/stickystrip/internal/tui/commands"
	"github.com/nivekalunya/stickystrip/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeJump        // Typing a section name to jump to
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   item.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Catalog
	items   []*item.Item
	headers map[string]item.Header

	// The positioner owns all sticky geometry; the model only feeds it
	// viewport-relative cell positions and measured header widths.
	pos *sticky.Positioner[item.Header]

	// Scroll state, in columns from the content origin
	scrollX int

	// Interaction state
	mode     Mode
	jump     textinput.Model
	showHelp bool
	loading  bool

	// Terminal dimensions and layout
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg  string
	statusWarn bool

	// Error state
	err error
}

// New creates a new TUI model.
func New(repo item.Repository, cfg *config.Config) *Model {
	jump := textinput.New()
	jump.Placeholder = "section name"
	jump.CharLimit = 64
	jump.Width = 24

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	m := &Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  NewStyles(t),
		jump:    jump,
		mode:    ModeNormal,
		loading: true,
	}
	m.layout = m.buildLayoutCache(0, 0)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadCatalog(m.repo)
}

// setCatalog installs a freshly loaded catalog and rebuilds the positioner.
func (m *Model) setCatalog(items []*item.Item, headers map[string]item.Header) error {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	pos, err := sticky.New(ids, headers,
		sticky.WithPlaceholderWidth[item.Header](float64(m.config.Strip.PlaceholderWidth)))
	if err != nil {
		return fmt.Errorf("building positioner: %w", err)
	}

	m.items = items
	m.headers = headers
	m.pos = pos
	m.scrollX = 0
	m.layout = m.buildLayoutCache(m.width, m.height)

	m.measureHeaders()
	m.reportPositions()
	return nil
}

// headerLabel is the text a header is rendered with; its measured width is
// what gets reported to the positioner.
func headerLabel(h item.Header) string {
	return " " + h.Title + " "
}

// measureHeaders reports the rendered width of every header. In a terminal
// the "measurement" is the display cell count of the label, available as soon
// as the label text is known.
func (m *Model) measureHeaders() {
	if m.pos == nil {
		return
	}
	for id, h := range m.headers {
		w := runewidth.StringWidth(headerLabel(h))
		if err := m.pos.ReportHeaderWidth(id, float64(w)); err != nil {
			// A binding for a missing item; skip it rather than fail the UI.
			logEvent("measure_skip", map[string]any{"id": id, "err": err.Error()})
		}
	}
}

// reportPositions feeds every cell's viewport-relative leading edge to the
// positioner for the current scroll offset.
func (m *Model) reportPositions() {
	if m.pos == nil {
		return
	}
	for i, it := range m.items {
		m.pos.ReportCellMoved(it.ID, float64(m.contentX(i)-m.scrollX))
	}
}

// scrollTo clamps and applies a new scroll offset.
func (m *Model) scrollTo(x int) {
	if x > m.layout.MaxScroll {
		x = m.layout.MaxScroll
	}
	if x < 0 {
		x = 0
	}
	if x == m.scrollX {
		return
	}
	m.scrollX = x
	m.reportPositions()
	logEvent("scroll", map[string]any{"x": x})
}

func (m *Model) scrollBy(dx int) {
	m.scrollTo(m.scrollX + dx)
}

// jumpToSection scrolls the first item of the named section to the leading
// edge. Matching is case-insensitive on section name prefixes.
func (m *Model) jumpToSection(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for i, it := range m.items {
		if strings.HasPrefix(strings.ToLower(it.Section), name) {
			m.scrollTo(m.contentX(i))
			return true
		}
	}
	return false
}

// setStatus shows a transient footer message.
func (m *Model) setStatus(msg string, warn bool) {
	m.statusMsg = msg
	m.statusWarn = warn
}

// applyTheme switches to the named theme and re-measures headers, since a
// theme change can change how labels are rendered.
func (m *Model) applyTheme(name string) error {
	t, err := theme.Load(name)
	if err != nil {
		return err
	}
	m.theme = t
	m.styles = NewStyles(t)
	m.layout = m.buildLayoutCache(m.width, m.height)
	m.measureHeaders()
	m.reportPositions()
	return nil
}

// formatLayout renders the current header layout as a plain-text table, used
// for the clipboard copy and the debug log.
func (m Model) formatLayout() string {
	if m.pos == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "scrollX=%d\n", m.scrollX)
	for _, pl := range m.pos.HeaderLayout() {
		fmt.Fprintf(&b, "%-16s offset=%7.1f opacity=%.2f width=%.0f\n",
			pl.Header.Title, pl.Offset, pl.Opacity, pl.Width)
	}
	return b.String()
}

// roundOffset converts a positioner offset to a terminal column.
func roundOffset(offset float64) int {
	return int(math.Round(offset))
}

// Run starts the TUI.
func Run(repo item.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo item.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	ownsRepo := repo == nil
	if repo == nil {
		opened, err := OpenRepo(cfg)
		if err != nil {
			return err
		}
		repo = opened
	}

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	if ownsRepo {
		_ = repo.Close()
	}
	return err
}
