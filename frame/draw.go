package frame

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

// init sets up the fonts we want to use.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Font returns the font we use for drawing.
func Font() *truetype.Font {
	return font
}

// LabelFontSize is the size every annotation label is drawn at.
const LabelFontSize = 12.0

// DrawString writes a string to the given context at a particular point.
func DrawString(dc *gg.Context, text string, p image.Point, c color.Color, size float64) {
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	dc.SetColor(c)
	dc.DrawStringWrapped(text, float64(p.X), float64(p.Y), 0, 0, float64(dc.Width()), 1, 0)
}

// MeasureString returns the rendered width and height of text at the given size.
func MeasureString(dc *gg.Context, text string, size float64) (float64, float64) {
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	return dc.MeasureString(text)
}

// DrawRectangleEmpty draws the given rectangle into the context. The positions of the
// rectangle are used to place it within the context.
func DrawRectangleEmpty(dc *gg.Context, r image.Rectangle, c color.Color, width float64) {
	dc.SetColor(c)

	dc.DrawLine(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Min.Y))
	dc.SetLineWidth(width)
	dc.Stroke()

	dc.DrawLine(float64(r.Min.X), float64(r.Min.Y), float64(r.Min.X), float64(r.Max.Y))
	dc.SetLineWidth(width)
	dc.Stroke()

	dc.DrawLine(float64(r.Max.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
	dc.SetLineWidth(width)
	dc.Stroke()

	dc.DrawLine(float64(r.Min.X), float64(r.Max.Y), float64(r.Max.X), float64(r.Max.Y))
	dc.SetLineWidth(width)
	dc.Stroke()
}

// DrawRectangleFilled fills the given rectangle with a solid color.
func DrawRectangleFilled(dc *gg.Context, r image.Rectangle, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()
}

// DrawRectangleOverlay blends a semi-transparent rectangle of color c over
// the context with the given alpha in [0, 1].
func DrawRectangleOverlay(dc *gg.Context, r image.Rectangle, c color.NRGBA, alpha float64) {
	c.A = uint8(alpha * 255)
	DrawRectangleFilled(dc, r, c)
}

// DrawLabel draws text over a filled background rectangle whose top-left
// corner is at p.
func DrawLabel(dc *gg.Context, text string, p image.Point, bg, fg color.Color) {
	w, h := MeasureString(dc, text, LabelFontSize)
	DrawRectangleFilled(dc, image.Rect(p.X, p.Y, p.X+int(w)+4, p.Y+int(h)+4), bg)
	DrawString(dc, text, image.Point{p.X + 2, p.Y + 2}, fg, LabelFontSize)
}
