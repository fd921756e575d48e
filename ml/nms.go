package ml

import (
	"image"
	"sort"

	"github.com/stolyarchuk/aa-video/vision"
)

// DefaultIoUThreshold is the overlap above which two same-class boxes are
// considered duplicates.
const DefaultIoUThreshold = 0.45

// NonMaxSuppression prunes overlapping detections per class. Each candidate
// box is shifted by classID * delta in both coordinates before the standard
// greedy pass, where delta exceeds every coordinate in the input; boxes of
// different classes land in disjoint tiles and never suppress each other.
// Survivors keep their original coordinates and come back sorted by
// descending score, ties in input order.
func NonMaxSuppression(detections []vision.Detection, scoreThr, iouThr float64) []vision.Detection {
	if len(detections) == 0 {
		return detections
	}

	candidates := make([]int, 0, len(detections))
	maxCoord := 0
	for i, d := range detections {
		if d.Confidence < scoreThr {
			continue
		}
		candidates = append(candidates, i)
		if d.BBox.Max.X > maxCoord {
			maxCoord = d.BBox.Max.X
		}
		if d.BBox.Max.Y > maxCoord {
			maxCoord = d.BBox.Max.Y
		}
	}
	delta := maxCoord + 1

	offset := func(i int) image.Rectangle {
		d := detections[i]
		return d.BBox.Add(image.Point{d.ClassID * delta, d.ClassID * delta})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return detections[candidates[a]].Confidence > detections[candidates[b]].Confidence
	})

	kept := make([]int, 0, len(candidates))
	for _, i := range candidates {
		keep := true
		for _, k := range kept {
			if iou(offset(i), offset(k)) >= iouThr {
				keep = false
				break
			}
		}
		if keep {
			kept = append(kept, i)
		}
	}

	out := make([]vision.Detection, 0, len(kept))
	for _, i := range kept {
		out = append(out, detections[i])
	}
	return out
}

// iou is intersection over union of two rectangles.
func iou(a, b image.Rectangle) float64 {
	inter := a.Intersect(b)
	if inter.Empty() {
		return 0
	}
	interArea := float64(inter.Dx() * inter.Dy())
	union := float64(a.Dx()*a.Dy()+b.Dx()*b.Dy()) - interArea
	if union <= 0 {
		return 0
	}
	return interArea / union
}
