package bramble

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay is a debug component that displays the current FPS and TPS in
// the top-left corner. Give it a high priority so it draws above the scene.
type FPSOverlay struct {
	BaseComponent

	fps, tps float64
	elapsed  float64
}

// NewFPSOverlay creates an FPS display refreshed every half second.
func NewFPSOverlay() *FPSOverlay {
	o := &FPSOverlay{}
	o.SetPriority(255)
	return o
}

func (o *FPSOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < 0.5 && o.fps != 0 {
		return
	}
	o.elapsed = 0
	o.fps = ebiten.ActualFPS()
	o.tps = ebiten.ActualTPS()
}

func (o *FPSOverlay) Draw(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", o.fps, o.tps))
}
