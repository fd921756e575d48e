package inference

import (
	"image"
	"image/color"
	"testing"

	"go.viam.com/test"
)

func TestImageToTensorData(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})

	data := imageToTensorData(img, 2, 1, true)
	test.That(t, data, test.ShouldHaveLength, 6)
	// Channels-first: R plane, G plane, B plane, scaled by 1/255.
	test.That(t, data[0], test.ShouldAlmostEqual, 1.0, 1e-6)
	test.That(t, data[1], test.ShouldAlmostEqual, 0.0, 1e-6)
	test.That(t, data[4], test.ShouldAlmostEqual, 0.0, 1e-6)
	test.That(t, data[5], test.ShouldAlmostEqual, 1.0, 1e-6)

	// Without the swap the blue plane comes first.
	data = imageToTensorData(img, 2, 1, false)
	test.That(t, data[0], test.ShouldAlmostEqual, 0.0, 1e-6)
	test.That(t, data[4], test.ShouldAlmostEqual, 1.0, 1e-6)
	test.That(t, data[5], test.ShouldAlmostEqual, 0.0, 1e-6)
}
