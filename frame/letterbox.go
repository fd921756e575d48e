package frame

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DefaultPadValue is the intensity of the letterbox padding color.
const DefaultPadValue = 114

// Letterbox captures the geometry of an aspect-preserving resize into a fixed
// model canvas with symmetric padding. It maps coordinates between the
// original frame and the letterboxed model input.
type Letterbox struct {
	Scale                   float64
	DX, DY                  int
	InnerWidth, InnerHeight int
	Width, Height           int // original frame
	ModelWidth, ModelHeight int // canvas
}

// NewLetterbox computes the letterbox geometry for an original size (w, h)
// and a model input size (mw, mh).
func NewLetterbox(w, h, mw, mh int) Letterbox {
	scale := float64(mw) / float64(w)
	if s := float64(mh) / float64(h); s < scale {
		scale = s
	}
	innerW := int(float64(w) * scale)
	innerH := int(float64(h) * scale)
	return Letterbox{
		Scale:       scale,
		DX:          (mw - innerW) / 2,
		DY:          (mh - innerH) / 2,
		InnerWidth:  innerW,
		InnerHeight: innerH,
		Width:       w,
		Height:      h,
		ModelWidth:  mw,
		ModelHeight: mh,
	}
}

// Apply resizes img by the letterbox scale with bilinear interpolation and
// composes the result onto a canvas filled with the padding color.
func (l Letterbox) Apply(img image.Image, padValue uint8) *image.NRGBA {
	inner := imaging.Resize(img, l.InnerWidth, l.InnerHeight, imaging.Linear)
	canvas := image.NewNRGBA(image.Rect(0, 0, l.ModelWidth, l.ModelHeight))
	pad := color.NRGBA{padValue, padValue, padValue, 0xff}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(pad), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(l.DX, l.DY, l.DX+l.InnerWidth, l.DY+l.InnerHeight), inner, image.Point{}, draw.Src)
	return canvas
}

// ToModel maps a point from the original frame into the letterboxed canvas.
func (l Letterbox) ToModel(x, y float64) (float64, float64) {
	return x*l.Scale + float64(l.DX), y*l.Scale + float64(l.DY)
}

// ToOriginal maps a point from the letterboxed canvas back to the original frame.
func (l Letterbox) ToOriginal(x, y float64) (float64, float64) {
	return (x - float64(l.DX)) / l.Scale, (y - float64(l.DY)) / l.Scale
}

// BoxToOriginal maps a detection box from the letterboxed canvas back into
// the original frame, clamped so the box lies fully inside the frame with at
// least one pixel of width and height.
func (l Letterbox) BoxToOriginal(r image.Rectangle) image.Rectangle {
	x := (float64(r.Min.X) - float64(l.DX)) / l.Scale
	y := (float64(r.Min.Y) - float64(l.DY)) / l.Scale
	w := float64(r.Dx()) / l.Scale
	h := float64(r.Dy()) / l.Scale

	x = clamp(x, 0, float64(l.Width))
	y = clamp(y, 0, float64(l.Height))
	w = clamp(w, 1, float64(l.Width)-x)
	h = clamp(h, 1, float64(l.Height)-y)

	return image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
