package icon

import (
	"image"
	"image/color"
)

var (
	backdrop   = color.RGBA{R: 0x12, G: 0x14, B: 0x1A, A: 0xFF}
	stripe     = color.RGBA{R: 0x2A, G: 0x30, B: 0x3C, A: 0xFF}
	sheet      = color.RGBA{R: 0x3D, G: 0x8B, B: 0xFD, A: 0xFF}
	sheetShade = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x50}
	handle     = color.RGBA{R: 0xE8, G: 0xEE, B: 0xF6, A: 0xFF}
	tick       = color.RGBA{R: 0xF2, G: 0xB1, B: 0x34, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a sheet resting at its anchored position over a list, with
// the four anchor stops marked along the right edge.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, backdrop)

	// list rows on the background
	for i := 0; i < 3; i++ {
		y := s * (0.10 + float64(i)*0.12)
		fillRoundedRect(img, s*0.10, y, s*0.62, s*0.07, s*0.03, stripe)
	}

	// anchor stops: expanded, anchored, collapsed, hidden
	for _, f := range []float64{0.04, 0.46, 0.80, 0.96} {
		fillRoundedRect(img, s*0.86, s*f-s*0.02, s*0.08, s*0.04, s*0.02, tick)
	}

	top := s * 0.46
	fillRoundedRect(img, s*0.06, top+s*0.02, s*0.76, s-top, s*0.10, sheetShade)
	fillRoundedRect(img, s*0.04, top, s*0.76, s-top+s*0.10, s*0.10, sheet)
	fillRoundedRect(img, s*0.30, top+s*0.05, s*0.24, s*0.04, s*0.02, handle)

	return img
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRoundedRect fills the rectangle at (xf, yf) with corners of radius rf.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, rf) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	// nearest corner center, or the point itself when outside the corner boxes
	cx, cy := fx, fy
	switch {
	case fx < xf+r:
		cx = xf + r
	case fx > xf+wf-r:
		cx = xf + wf - r
	}
	switch {
	case fy < yf+r:
		cy = yf + r
	case fy > yf+hf-r:
		cy = yf + hf - r
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= r*r
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	inv := 0xFFFF - a0
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((r0 + er*inv/0xFFFF) >> 8),
		G: uint8((g0 + eg*inv/0xFFFF) >> 8),
		B: uint8((b0 + eb*inv/0xFFFF) >> 8),
		A: 0xFF,
	})
}
