package server

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/stolyarchuk/aa-video/frame"
	"github.com/stolyarchuk/aa-video/vision"
	"github.com/stolyarchuk/aa-video/zone"
)

const overlayAlpha = 0.3

var (
	inclusionColor = color.NRGBA{0, 200, 0, 255}
	exclusionColor = color.NRGBA{128, 128, 128, 255}
	labelTextColor = color.NRGBA{0, 0, 0, 255}
	detTextColor   = color.NRGBA{255, 255, 255, 255}
)

// renderAnnotations draws zone overlays and then the surviving detections
// over a copy of img. Zones whose bounding box extends past the frame are
// clamped before drawing. The output depends only on the inputs.
func renderAnnotations(img image.Image, zones []zone.Polygon, detections []vision.Detection) image.Image {
	dc := gg.NewContextForImage(img)
	bounds := image.Rect(0, 0, dc.Width(), dc.Height())

	for i := range zones {
		drawZone(dc, &zones[i], i, bounds)
	}
	for _, d := range detections {
		drawDetection(dc, d, bounds)
	}
	return dc.Image()
}

func drawZone(dc *gg.Context, z *zone.Polygon, index int, bounds image.Rectangle) {
	if len(z.Vertices) < 3 {
		return
	}
	box := vertexBounds(z.Vertices).Intersect(bounds)
	if box.Empty() {
		return
	}

	c := exclusionColor
	if z.Type == zone.TypeInclusion {
		c = inclusionColor
	}
	frame.DrawRectangleEmpty(dc, box, c, 1)
	frame.DrawRectangleOverlay(dc, box, c, overlayAlpha)

	label := fmt.Sprintf("P%d %s (Pri:%d)", index+1, z.Type, z.Priority)
	frame.DrawLabel(dc, label, box.Min, c, labelTextColor)
}

func drawDetection(dc *gg.Context, d vision.Detection, bounds image.Rectangle) {
	box := d.BBox.Intersect(bounds)
	if box.Empty() {
		return
	}
	c := vision.ClassColor(d.ClassID)
	frame.DrawRectangleEmpty(dc, box, c, 1)

	labelAt := image.Point{box.Min.X, box.Min.Y - int(frame.LabelFontSize) - 4}
	if labelAt.Y < 0 {
		labelAt.Y = box.Min.Y
	}
	frame.DrawLabel(dc, d.Label(), labelAt, c, detTextColor)
}

// vertexBounds is the axis-aligned bounding box of a vertex set.
func vertexBounds(vertices []zone.Point) image.Rectangle {
	minX, minY := vertices[0].X, vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return image.Rect(int(minX), int(minY), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}
