package bramble

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ParallaxLayer is one image plane of a parallax background. Factor scales
// how fast the layer moves relative to the base offset: 0 pins the layer,
// 1 moves it at full speed, values in between produce depth.
type ParallaxLayer struct {
	Image  *ebiten.Image
	Factor Vec2
}

// Parallax is a background component that scrolls a stack of image layers at
// different speeds. Layers are drawn in slice order (farthest first) and
// wrap horizontally and vertically to cover the destination.
//
// The offset advances by BaseVelocity each second; when Camera is set the
// camera position contributes as well, so the background tracks the view.
type Parallax struct {
	BaseComponent

	Layers       []ParallaxLayer
	BaseVelocity Vec2
	Camera       *Camera

	offset Vec2
}

// NewParallax creates a parallax background from the given layers.
func NewParallax(layers ...ParallaxLayer) *Parallax {
	return &Parallax{Layers: layers}
}

// Offset returns the current base scroll offset.
func (p *Parallax) Offset() Vec2 {
	return p.offset
}

func (p *Parallax) Update(dt float64) {
	p.offset.X += p.BaseVelocity.X * dt
	p.offset.Y += p.BaseVelocity.Y * dt
}

func (p *Parallax) Draw(dst *ebiten.Image) {
	base := p.offset
	if p.Camera != nil {
		base.X += p.Camera.X
		base.Y += p.Camera.Y
	}
	dstW := float64(dst.Bounds().Dx())
	dstH := float64(dst.Bounds().Dy())

	for _, layer := range p.Layers {
		if layer.Image == nil {
			continue
		}
		w := float64(layer.Image.Bounds().Dx())
		h := float64(layer.Image.Bounds().Dy())
		if w == 0 || h == 0 {
			continue
		}

		// Wrap the layer offset into [-size, 0) and tile from there.
		ox := -math.Mod(base.X*layer.Factor.X, w)
		if ox > 0 {
			ox -= w
		}
		oy := -math.Mod(base.Y*layer.Factor.Y, h)
		if oy > 0 {
			oy -= h
		}

		for y := oy; y < dstH; y += h {
			for x := ox; x < dstW; x += w {
				var op ebiten.DrawImageOptions
				op.GeoM.Translate(x, y)
				dst.DrawImage(layer.Image, &op)
			}
		}
	}
}
