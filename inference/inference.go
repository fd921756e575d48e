// Package inference wraps the object detection network behind an opaque
// operator: a letterboxed input image goes in, the raw detection tensor
// comes out. Nothing downstream may depend on the backend beyond that
// contract.
package inference

import (
	"context"
	"image"

	"gorgonia.org/tensor"
)

// Detector runs the network forward pass. Implementations must be safe for
// concurrent use; ones that are not internally serialize their calls.
type Detector interface {
	// Infer consumes a letterboxed image matching InputSize and returns the
	// raw detection tensor.
	Infer(ctx context.Context, img image.Image) (*tensor.Dense, error)
	// InputSize returns the (width, height) the network expects.
	InputSize() (int, int)
	Close() error
}

// imageToTensorData lays an image out as a [1, 3, h, w] channels-first float
// buffer scaled by 1/255 with zero mean. When swapRB is false the channel
// planes stay in the source's blue-green-red order.
func imageToTensorData(img image.Image, w, h int, swapRB bool) []float32 {
	data := make([]float32, 3*w*h)
	plane := w * h
	bounds := img.Bounds()
	for y := 0; y < h && y < bounds.Dy(); y++ {
		for x := 0; x < w && x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*w + x
			if swapRB {
				data[i] = float32(r>>8) / 255.0
				data[plane+i] = float32(g>>8) / 255.0
				data[2*plane+i] = float32(b>>8) / 255.0
			} else {
				data[i] = float32(b>>8) / 255.0
				data[plane+i] = float32(g>>8) / 255.0
				data[2*plane+i] = float32(r>>8) / 255.0
			}
		}
	}
	return data
}
