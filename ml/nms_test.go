package ml

import (
	"image"
	"testing"

	"go.viam.com/test"

	"github.com/stolyarchuk/aa-video/vision"
)

func det(x, y, w, h, classID int, conf float64) vision.Detection {
	return vision.NewDetection(image.Rect(x, y, x+w, y+h), classID, conf)
}

func TestNMSSuppressesSameClass(t *testing.T) {
	in := []vision.Detection{
		det(10, 10, 50, 50, 3, 0.9),
		det(12, 12, 50, 50, 3, 0.8),
		det(11, 11, 50, 50, 7, 0.7),
	}
	out := NonMaxSuppression(in, 0.1, 0.45)
	test.That(t, out, test.ShouldHaveLength, 2)
	test.That(t, out[0], test.ShouldResemble, in[0])
	test.That(t, out[1], test.ShouldResemble, in[2])
}

func TestNMSCrossClassNonInterference(t *testing.T) {
	// Identical geometry, different classes: both survive.
	in := []vision.Detection{
		det(100, 100, 40, 40, 1, 0.9),
		det(100, 100, 40, 40, 2, 0.6),
	}
	out := NonMaxSuppression(in, 0.1, 0.45)
	test.That(t, out, test.ShouldHaveLength, 2)
}

func TestNMSIdempotent(t *testing.T) {
	in := []vision.Detection{
		det(10, 10, 50, 50, 0, 0.9),
		det(15, 15, 50, 50, 0, 0.85),
		det(200, 200, 30, 30, 0, 0.6),
		det(201, 201, 30, 30, 4, 0.5),
	}
	once := NonMaxSuppression(in, 0.1, 0.45)
	twice := NonMaxSuppression(once, 0.1, 0.45)
	test.That(t, twice, test.ShouldResemble, once)
}

func TestNMSScoreThreshold(t *testing.T) {
	in := []vision.Detection{
		det(10, 10, 50, 50, 0, 0.9),
		det(200, 200, 30, 30, 0, 0.05),
	}
	out := NonMaxSuppression(in, 0.1, 0.45)
	test.That(t, out, test.ShouldHaveLength, 1)
	test.That(t, out[0].Confidence, test.ShouldEqual, 0.9)
}

func TestNMSTieBreakKeepsInputOrder(t *testing.T) {
	// Equal scores, disjoint boxes: both kept, input order preserved.
	in := []vision.Detection{
		det(10, 10, 20, 20, 0, 0.7),
		det(300, 300, 20, 20, 0, 0.7),
	}
	out := NonMaxSuppression(in, 0.1, 0.45)
	test.That(t, out, test.ShouldResemble, in)
}

func TestNMSEmpty(t *testing.T) {
	out := NonMaxSuppression(nil, 0.1, 0.45)
	test.That(t, out, test.ShouldHaveLength, 0)
}
