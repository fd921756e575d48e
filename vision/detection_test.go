package vision

import (
	"image"
	"testing"

	"go.viam.com/test"
)

func TestDetectionCenter(t *testing.T) {
	d := NewDetection(image.Rect(100, 100, 150, 150), 0, 0.9)
	cx, cy := d.Center()
	test.That(t, cx, test.ShouldEqual, 125.0)
	test.That(t, cy, test.ShouldEqual, 125.0)

	d = NewDetection(image.Rect(0, 0, 5, 3), 0, 0.9)
	cx, cy = d.Center()
	test.That(t, cx, test.ShouldEqual, 2.5)
	test.That(t, cy, test.ShouldEqual, 1.5)
}

func TestDetectionLabel(t *testing.T) {
	d := NewDetection(image.Rect(0, 0, 10, 10), 0, 0.874)
	test.That(t, d.Label(), test.ShouldEqual, "person: 0.87")

	d = NewDetection(image.Rect(0, 0, 10, 10), 200, 0.5)
	test.That(t, d.Label(), test.ShouldEqual, "class_200: 0.50")
}

func TestClassName(t *testing.T) {
	test.That(t, ClassName(0), test.ShouldEqual, "person")
	test.That(t, ClassName(79), test.ShouldEqual, "toothbrush")
	test.That(t, ClassName(80), test.ShouldEqual, "class_80")
	test.That(t, ClassName(-1), test.ShouldEqual, "class_-1")
	test.That(t, len(cocoClasses), test.ShouldEqual, NumClasses)
}

func TestClassColorCycles(t *testing.T) {
	test.That(t, ClassColor(0), test.ShouldResemble, ClassColor(len(palette)))
	test.That(t, ClassColor(1), test.ShouldNotResemble, ClassColor(2))
}

func TestScoreFilter(t *testing.T) {
	in := []Detection{
		NewDetection(image.Rect(0, 0, 10, 10), 0, 0.9),
		NewDetection(image.Rect(0, 0, 10, 10), 1, 0.3),
	}
	out := NewScoreFilter(0.5)(in)
	test.That(t, out, test.ShouldHaveLength, 1)
	test.That(t, out[0].ClassID, test.ShouldEqual, 0)
}

func TestAreaFilter(t *testing.T) {
	in := []Detection{
		NewDetection(image.Rect(0, 0, 10, 10), 0, 0.9),
		NewDetection(image.Rect(0, 0, 2, 2), 1, 0.9),
	}
	out := NewAreaFilter(50)(in)
	test.That(t, out, test.ShouldHaveLength, 1)
}
