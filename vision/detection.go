// Package vision holds the detection record produced by the inference
// pipeline together with the label and color tables used when rendering.
package vision

import (
	"fmt"
	"image"
)

// Detection is one detected object: an axis-aligned box in integer pixels,
// the winning class and the final confidence (objectness * class score).
type Detection struct {
	BBox       image.Rectangle
	ClassID    int
	Confidence float64
}

// NewDetection creates a Detection.
func NewDetection(bbox image.Rectangle, classID int, confidence float64) Detection {
	return Detection{BBox: bbox, ClassID: classID, Confidence: confidence}
}

// Center returns the box center in the detection's coordinate frame.
func (d Detection) Center() (float64, float64) {
	return float64(d.BBox.Min.X) + float64(d.BBox.Dx())/2.0,
		float64(d.BBox.Min.Y) + float64(d.BBox.Dy())/2.0
}

// Label renders the text drawn above the box, e.g. "person: 0.87".
func (d Detection) Label() string {
	return fmt.Sprintf("%s: %.2f", ClassName(d.ClassID), d.Confidence)
}

func (d Detection) String() string {
	return fmt.Sprintf("%s bbox=%v", d.Label(), d.BBox)
}
