//go:build ebiten

// Package app is the windowed front end, built on ebiten.
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toroid/internal/config"
	"toroid/internal/core"
	"toroid/internal/render"
	"toroid/internal/ui"
	"toroid/pkg/sims/life"
)

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	grid    *life.Grid
	overlay *ui.Overlay

	palette    render.Palette
	background color.RGBA
	lineColor  color.RGBA
	tileSize   int
	gridLine   int

	layout  render.Layout
	canvas  *ebiten.Image
	repaint bool
}

// New constructs a Game for g using the window settings from cfg.
func New(g *life.Grid, cfg *config.Config) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return &Game{
		session:    core.NewSession(g, cfg.TPS, cfg.Paused),
		grid:       g,
		overlay:    ui.NewOverlay(cfg.Window.ShowFPS),
		palette:    palette,
		background: cfg.Background(),
		lineColor:  cfg.GridLineColor(),
		tileSize:   cfg.Window.TileSize,
		gridLine:   cfg.Window.GridLine,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(g *life.Grid, cfg *config.Config) error {
	game, err := New(g, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update handles input and advances the session by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	g.overlay.Update()
	g.paint()
	g.session.Frame(time.Now())
	return nil
}

func (g *Game) paint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left == right {
		return
	}
	row, col, ok := g.layout.CellAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	g.session.Paint(row, col, left)
}

// Draw repaints the tiles of changed cells and presents the canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	if g.repaint {
		g.canvas.Fill(g.background)
		if g.gridLine > 0 {
			g.fill(g.layout.Bounds(), g.lineColor)
		}
		g.repaint = false
	}
	for c := range g.grid.ChangedCells() {
		s, err := g.grid.CellState(c.Row, c.Col)
		if err != nil {
			continue
		}
		g.fill(g.layout.TileRect(c.Row, c.Col), g.palette.Color(s))
	}
	screen.DrawImage(g.canvas, nil)
	g.overlay.Draw(screen, ui.Status{
		Generation: g.grid.Generation(),
		Population: g.grid.Population(),
		Paused:     g.session.Paused(),
	})
}

// Layout fits the grid to the window whenever the window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.canvas != nil && g.layout.ScreenW == outsideWidth && g.layout.ScreenH == outsideHeight {
		return outsideWidth, outsideHeight
	}
	g.layout = render.NewLayout(outsideWidth, outsideHeight, g.tileSize, g.tileSize, g.gridLine)
	if err := g.session.Resize(g.layout.Cols, g.layout.Rows); err != nil {
		slog.Error("resize failed", "cols", g.layout.Cols, "rows", g.layout.Rows, "err", err)
	}
	g.canvas = ebiten.NewImage(max(outsideWidth, 1), max(outsideHeight, 1))
	g.repaint = true
	// A fresh canvas needs every tile, not just the dirty ones.
	g.grid.MarkAllChanged()
	slog.Debug("layout", "screen_w", outsideWidth, "screen_h", outsideHeight,
		"cols", g.layout.Cols, "rows", g.layout.Rows)
	return outsideWidth, outsideHeight
}

func (g *Game) fill(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	g.canvas.SubImage(r).(*ebiten.Image).Fill(c)
}
