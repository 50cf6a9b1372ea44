//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	padX     = 6
	padY     = 4
	lineStep = 14
)

// Status is the information the overlay reports.
type Status struct {
	Generation uint64
	Population int
	Paused     bool
}

// Overlay draws a frame rate and generation readout in the top left corner.
type Overlay struct {
	visible bool
	panel   *ebiten.Image
	fg      color.Color
}

// NewOverlay constructs an overlay, initially shown when visible is true.
func NewOverlay(visible bool) *Overlay {
	return &Overlay{visible: visible, fg: color.RGBA{R: 0xf9, G: 0xe2, B: 0xaf, A: 0xff}}
}

// Update toggles the overlay on F.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
}

// Draw renders the readout onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	if !o.visible {
		return
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()),
		fmt.Sprintf("gen %d  pop %d  %s", st.Generation, st.Population, state),
	}
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(basicfont.Face7x13, l).Dx())
	}
	w, h := width+2*padX, len(lines)*lineStep+2*padY
	if o.panel == nil || o.panel.Bounds().Dx() != w || o.panel.Bounds().Dy() != h {
		o.panel = ebiten.NewImage(w, h)
		o.panel.Fill(color.RGBA{A: 0xb0})
	}
	screen.DrawImage(o.panel, nil)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, padX, padY+(i+1)*lineStep-3, o.fg)
	}
}
