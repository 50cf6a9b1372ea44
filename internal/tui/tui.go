// Package tui is a terminal front end for the Life grid.
package tui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"toroid/internal/core"
	"toroid/internal/render"
	"toroid/pkg/sims/life"
)

const (
	cellWidth    = 2
	statusLines  = 1
	chartHeight  = 6
	chartLines   = chartHeight + 2
	historyLimit = 512
)

// Options configures the terminal front end.
type Options struct {
	FPS     int
	TPS     int
	Paused  bool
	Palette render.Palette
}

type frameMsg time.Time

// Model is the bubbletea model driving a grid.
type Model struct {
	session *core.Session
	grid    *life.Grid
	frame   time.Duration

	showChart bool

	width, height int

	rows    []string
	styles  [4]lipgloss.Style
	history []float64
}

// New wraps g. The grid keeps its size until the first WindowSizeMsg.
func New(g *life.Grid, opts Options) *Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	m := &Model{
		session: core.NewSession(g, opts.TPS, opts.Paused),
		grid:    g,
		frame:   time.Second / time.Duration(fps),
	}
	for _, s := range life.States() {
		m.styles[s] = lipgloss.NewStyle().Background(lipgloss.Color(hex6(opts.Palette.Color(s))))
	}
	m.refresh()
	return m
}

// Run starts the program on the alternate screen with mouse support.
func Run(g *life.Grid, opts Options) error {
	p := tea.NewProgram(New(g, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init schedules the first frame.
func (m *Model) Init() tea.Cmd { return tick(m.frame) }

// Update handles input, resizes and frames.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fit()
	case frameMsg:
		m.advance(time.Time(msg))
		return m, tick(m.frame)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case " ":
		m.session.TogglePause()
	case "n":
		m.session.RequestStep()
	case "r":
		m.session.Reset()
		m.history = m.history[:0]
		m.refresh()
	case "g":
		m.showChart = !m.showChart
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	row, col := msg.Y, msg.X/cellWidth
	if row >= m.visibleRows() {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.session.Paint(row, col, true)
	case tea.MouseButtonRight:
		m.session.Paint(row, col, false)
	}
}

// fit resizes the grid to the terminal area above the status line. The
// chart is drawn over the bottom rows instead of shrinking the grid.
func (m *Model) fit() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	w := max(m.width/cellWidth, 1)
	h := max(m.height-statusLines, 1)
	if err := m.session.Resize(w, h); err != nil {
		slog.Error("resize failed", "width", w, "height", h, "err", err)
		return
	}
	m.refresh()
}

func (m *Model) advance(now time.Time) {
	if m.session.Frame(now) {
		m.history = append(m.history, float64(m.grid.Population()))
		if len(m.history) > historyLimit {
			m.history = m.history[len(m.history)-historyLimit:]
		}
	}
	m.refresh()
}

// refresh re-renders the rows that contain dirty cells.
func (m *Model) refresh() {
	w, h := m.grid.Dimensions()
	dirty := m.grid.ChangedCells()
	if len(m.rows) != h {
		m.rows = make([]string, h)
		for row := range m.rows {
			m.rows[row] = m.renderRow(row, w)
		}
		return
	}
	seen := make(map[int]bool)
	for c := range dirty {
		if seen[c.Row] {
			continue
		}
		seen[c.Row] = true
		m.rows[c.Row] = m.renderRow(c.Row, w)
	}
}

// renderRow styles runs of equal states together.
func (m *Model) renderRow(row, w int) string {
	var b strings.Builder
	runStart := 0
	var runState life.CellState
	for col := 0; col <= w; col++ {
		var s life.CellState
		if col < w {
			s, _ = m.grid.CellState(row, col)
		}
		if col == 0 {
			runState = s
			continue
		}
		if col < w && s == runState {
			continue
		}
		b.WriteString(m.styles[runState].Render(strings.Repeat(" ", (col-runStart)*cellWidth)))
		runStart, runState = col, s
	}
	return b.String()
}

// View draws the grid, the status line and the optional chart.
func (m *Model) View() string {
	var b strings.Builder
	if n := m.visibleRows(); n > 0 {
		b.WriteString(strings.Join(m.rows[:n], "\n"))
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	if m.chartShown() {
		b.WriteByte('\n')
		b.WriteString(m.chart())
	}
	return b.String()
}

func (m *Model) chartShown() bool { return m.showChart && len(m.history) > 0 }

// visibleRows is the number of grid rows not covered by the chart.
func (m *Model) visibleRows() int {
	n := len(m.rows)
	if m.chartShown() && m.height > 0 {
		n = min(n, max(m.height-statusLines-chartLines, 0))
	}
	return n
}

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	runStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
)

func (m *Model) status() string {
	w, h := m.grid.Dimensions()
	state := runStyle.Render("RUNNING")
	if m.session.Paused() {
		state = pausedStyle.Render("PAUSED")
	}
	parts := []string{
		labelStyle.Render("gen ") + valueStyle.Render(fmt.Sprint(m.grid.Generation())),
		labelStyle.Render("pop ") + valueStyle.Render(fmt.Sprint(m.grid.Population())),
		valueStyle.Render(fmt.Sprintf("%dx%d", w, h)),
		state,
		labelStyle.Render("space run/pause  n step  r clear  g chart  q quit"),
	}
	return strings.Join(parts, "  ")
}

func (m *Model) chart() string {
	data := m.history
	if limit := m.width - 12; limit > 0 && len(data) > limit {
		data = data[len(data)-limit:]
	}
	return asciigraph.Plot(data, asciigraph.Height(chartHeight), asciigraph.Caption("population"))
}

func hex6(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
