package tileworld

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	loadingLabel    = "Reticulating Splines..."
	loadingFontSize = 20
	loadingBarH     = 50
)

var (
	colorLoadingFill   = color.RGBA{0, 255, 0, 255}
	colorLoadingBorder = color.RGBA{255, 255, 255, 255}
	colorBackground    = color.RGBA{0, 0, 0, 255}
)

// hud draws the loading indicator and the debug text overlay. The font is
// loaded on first use; if it cannot be parsed the debug font is used instead.
type hud struct {
	face   *text.GoTextFace
	loaded bool
}

// loadFace parses the Go Regular font once.
func (h *hud) loadFace() *text.GoTextFace {
	if h.loaded {
		return h.face
	}
	h.loaded = true
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[tileworld] hud: failed to parse font: %v\n", err)
		return nil
	}
	h.face = &text.GoTextFace{Source: source, Size: loadingFontSize}
	return h.face
}

// drawLoading draws a centered progress bar at percent in [0, 1] with a
// label above it.
func (h *hud) drawLoading(screen *ebiten.Image, percent float64, screenW, screenH int) {
	screen.Fill(colorBackground)

	barW := float32(screenW) / 2
	barX := float32(screenW) / 4
	barY := float32(screenH)/2 - loadingBarH/2

	vector.DrawFilledRect(screen, barX, barY, barW*float32(clamp01(percent)), loadingBarH, colorLoadingFill, false)
	vector.StrokeRect(screen, barX, barY, barW, loadingBarH, 1, colorLoadingBorder, false)

	labelY := float64(barY) - 2*loadingFontSize
	if face := h.loadFace(); face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(screenW)/2, labelY)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(colorLoadingBorder)
		text.Draw(screen, loadingLabel, face, op)
		return
	}
	ebitenutil.DebugPrintAt(screen, loadingLabel, screenW/2-len(loadingLabel)*3, int(labelY))
}

// drawDebug prints lines down the top-left corner.
func (h *hud) drawDebug(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*20)
	}
}
