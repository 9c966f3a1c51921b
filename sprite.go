package bramble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a component that renders an image at its position. Width and
// Height default to the image size, so a freshly constructed sprite is
// hit-testable without further setup.
type Sprite struct {
	BaseComponent

	Image            *ebiten.Image
	ScaleX, ScaleY   float64
	Rotation         float64
	AnchorX, AnchorY float64 // rotation/scale origin as a fraction of size
}

// NewSprite creates a sprite for the given image.
func NewSprite(img *ebiten.Image) *Sprite {
	s := &Sprite{
		Image:  img,
		ScaleX: 1,
		ScaleY: 1,
	}
	if img != nil {
		bounds := img.Bounds()
		s.Width = float64(bounds.Dx())
		s.Height = float64(bounds.Dy())
	}
	return s
}

// NewBox creates a solid-color rectangular sprite. Handy for prototypes and
// hit targets.
func NewBox(width, height float64, fill color.Color) *Sprite {
	img := ebiten.NewImage(int(width), int(height))
	img.Fill(fill)
	return NewSprite(img)
}

// Draw renders the sprite's image with its transform applied. The camera view
// is not applied here; sprites draw in device space unless the caller chose a
// world-space drawing scheme of its own.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if s.Image == nil {
		return
	}
	bounds := s.Image.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-s.AnchorX*float64(bounds.Dx()), -s.AnchorY*float64(bounds.Dy()))
	op.GeoM.Scale(s.ScaleX, s.ScaleY)
	op.GeoM.Rotate(s.Rotation)
	op.GeoM.Translate(s.X+s.AnchorX*s.Width, s.Y+s.AnchorY*s.Height)
	dst.DrawImage(s.Image, &op)
}
