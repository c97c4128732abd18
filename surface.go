package tileworld

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the render target a CompositeCache paints into. Its pixel extent
// is fixed when it is created; only its content changes.
type Canvas interface {
	// Clear erases the whole canvas to transparent black.
	Clear()
	// DrawTile paints rec with its top-left corner at pixel (x, y).
	DrawTile(rec TileRecord, x, y int)
	// Size returns the fixed pixel extent.
	Size() (w, h int)
}

// Surface is an offscreen Ebitengine image sized to the whole grid. The
// presentation layer crops a viewport-sized region out of it each frame.
type Surface struct {
	image *ebiten.Image
	w, h  int
	blend BlendMode
}

// NewSurface creates a surface of w x h pixels.
func NewSurface(w, h int) *Surface {
	return &Surface{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (s *Surface) Image() *ebiten.Image {
	return s.image
}

// Size returns the surface extent in pixels.
func (s *Surface) Size() (w, h int) {
	return s.w, s.h
}

// SetBlendMode selects how tiles composite onto the surface.
func (s *Surface) SetBlendMode(b BlendMode) {
	s.blend = b
}

// Clear fills the surface with transparent black.
func (s *Surface) Clear() {
	s.image.Clear()
}

// DrawTile paints rec at (x, y).
func (s *Surface) DrawTile(rec TileRecord, x, y int) {
	drawTile(s.image, rec, float64(x), float64(y), s.blend)
}

// View returns the w x h region of the surface whose top-left corner is at
// (x, y). The region is clipped to the surface.
func (s *Surface) View(x, y, w, h int) *ebiten.Image {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, s.w, s.h))
	return s.image.SubImage(r).(*ebiten.Image)
}

// Dispose deallocates the underlying image. The Surface should not be used
// after calling Dispose.
func (s *Surface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}

// whitePixelImage is a lazily created 1x1 white image used to paint solid
// blocks. Single-threaded, so no sync.Once.
var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}

// drawTile paints rec onto dst at (x, y), scaled from its sheet region to its
// destination size and multiplied by its tint. Records without a source
// image are painted as a solid block of the tint color.
func drawTile(dst *ebiten.Image, rec TileRecord, x, y float64, blend BlendMode) {
	src, op, ok := tileDrawOptions(rec, x, y, blend)
	if !ok {
		return
	}
	dst.DrawImage(src, &op)
}

// tileDrawOptions resolves the source image and draw options for rec. ok is
// false when the record has nothing to paint.
func tileDrawOptions(rec TileRecord, x, y float64, blend BlendMode) (src *ebiten.Image, op ebiten.DrawImageOptions, ok bool) {
	src = rec.Source
	srcW, srcH := float64(rec.Region.Width), float64(rec.Region.Height)
	if src == nil {
		src = whitePixel()
		srcW, srcH = 1, 1
	} else {
		if srcW == 0 || srcH == 0 {
			return nil, op, false
		}
		src = src.SubImage(rec.Region.Rect()).(*ebiten.Image)
	}

	op.GeoM.Scale(float64(rec.Width)/srcW, float64(rec.Height)/srcH)
	op.GeoM.Translate(x, y)

	c := rec.paintTint()
	op.ColorScale.Scale(
		float32(c.R*c.A),
		float32(c.G*c.A),
		float32(c.B*c.A),
		float32(c.A),
	)
	op.Blend = blend.EbitenBlend()
	return src, op, true
}
