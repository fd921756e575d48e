// Package ml turns raw network output tensors into detection candidates and
// prunes duplicates with class-aware non-maximum suppression.
package ml

import (
	"image"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/stolyarchuk/aa-video/vision"
)

// DefaultScoreThreshold is the minimum object confidence a candidate anchor
// must clear in the parser.
const DefaultScoreThreshold = 0.10

// ParseDetections interprets a raw detection tensor of shape [N, K],
// [B, N, K] or [B, 1, N, K], where each anchor row is
// [cx, cy, w, h, obj, p_0 .. p_{C-1}] in coordinates normalized to the
// letterboxed canvas. Anchors whose objectness or final score
// (objectness * best class probability) fall below scoreThr are skipped.
// Boxes are returned in canvas pixels, clamped to (modelW, modelH) with at
// least one pixel of width and height.
//
// A nil or empty tensor yields an empty result without error; an unsupported
// rank or a stride below 5 yields an empty result with an error.
func ParseDetections(out *tensor.Dense, modelW, modelH int, scoreThr float64, logger golog.Logger) ([]vision.Detection, error) {
	detections := []vision.Detection{}
	if out == nil || out.Size() == 0 {
		return detections, nil
	}

	shape := out.Shape()
	var numAnchors, stride int
	switch out.Dims() {
	case 2:
		numAnchors, stride = shape[0], shape[1]
	case 3:
		numAnchors, stride = shape[1], shape[2]
	case 4:
		numAnchors, stride = shape[2], shape[3]
	default:
		return detections, errors.Errorf("unsupported output tensor rank %d (want 2, 3 or 4)", out.Dims())
	}
	if stride < 5 {
		return detections, errors.Errorf("invalid anchor stride %d (want at least 5)", stride)
	}
	if numAnchors == 0 {
		return detections, nil
	}
	if stride != 5+vision.NumClasses {
		logger.Warnw("unexpected anchor stride", "stride", stride, "want", 5+vision.NumClasses)
	}

	data, err := asFloat64Slice(out.Data())
	if err != nil {
		return detections, err
	}
	if len(data) < numAnchors*stride {
		return detections, errors.Errorf("output tensor holds %d values, want %d", len(data), numAnchors*stride)
	}

	for i := 0; i < numAnchors; i++ {
		row := data[i*stride : (i+1)*stride]
		obj := row[4]
		if obj < scoreThr {
			continue
		}

		classID := -1
		best := 0.0
		for j := 5; j < stride; j++ {
			if row[j] > best {
				best = row[j]
				classID = j - 5
			}
		}
		score := obj * best
		if score < scoreThr || classID < 0 {
			continue
		}

		// Normalized center-form box to top-left pixels on the canvas.
		cx, cy := row[0]*float64(modelW), row[1]*float64(modelH)
		w, h := row[2]*float64(modelW), row[3]*float64(modelH)
		if w <= 0 || h <= 0 {
			logger.Warnw("degenerate box in network output", "anchor", i, "w", w, "h", h)
		}
		x := cx - w/2
		y := cy - h/2

		x = clamp(x, 0, float64(modelW)-w)
		y = clamp(y, 0, float64(modelH)-h)
		w = clamp(w, 1, float64(modelW)-x)
		h = clamp(h, 1, float64(modelH)-y)

		bbox := image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h))
		detections = append(detections, vision.NewDetection(bbox, classID, score))
	}
	return detections, nil
}

func asFloat64Slice(data interface{}) ([]float64, error) {
	switch d := data.(type) {
	case []float64:
		return d, nil
	case []float32:
		out := make([]float64, len(d))
		for i, v := range d {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, errors.Errorf("output tensor has unsupported element type %T", data)
	}
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
