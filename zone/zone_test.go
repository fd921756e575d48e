package zone

import (
	"testing"

	"go.viam.com/test"

	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
)

func square(size float64) Polygon {
	return Polygon{
		Vertices: []Point{{0, 0}, {size, 0}, {size, size}, {0, size}},
		Type:     TypeInclusion,
		Priority: 1,
	}
}

func TestContainsInterior(t *testing.T) {
	p := square(10)
	test.That(t, p.Contains(5, 5), test.ShouldBeTrue)
	test.That(t, p.Contains(0.1, 0.1), test.ShouldBeTrue)
	test.That(t, p.Contains(9.9, 9.9), test.ShouldBeTrue)
	test.That(t, p.Contains(15, 5), test.ShouldBeFalse)
	test.That(t, p.Contains(-1, 5), test.ShouldBeFalse)
	test.That(t, p.Contains(5, -0.001), test.ShouldBeFalse)
}

func TestContainsBoundaryIsOutside(t *testing.T) {
	p := square(10)
	// vertices
	test.That(t, p.Contains(0, 0), test.ShouldBeFalse)
	test.That(t, p.Contains(10, 0), test.ShouldBeFalse)
	test.That(t, p.Contains(10, 10), test.ShouldBeFalse)
	test.That(t, p.Contains(0, 10), test.ShouldBeFalse)
	// edge midpoints
	test.That(t, p.Contains(5, 0), test.ShouldBeFalse)
	test.That(t, p.Contains(10, 5), test.ShouldBeFalse)
	test.That(t, p.Contains(5, 10), test.ShouldBeFalse)
	test.That(t, p.Contains(0, 5), test.ShouldBeFalse)
}

func TestContainsConcave(t *testing.T) {
	// A "U" shape: the notch between the arms is outside.
	p := Polygon{
		Vertices: []Point{
			{0, 0}, {10, 0}, {10, 10}, {7, 10}, {7, 3}, {3, 3}, {3, 10}, {0, 10},
		},
		Type: TypeInclusion,
	}
	test.That(t, p.Contains(1, 5), test.ShouldBeTrue)
	test.That(t, p.Contains(8, 5), test.ShouldBeTrue)
	test.That(t, p.Contains(5, 1), test.ShouldBeTrue)
	test.That(t, p.Contains(5, 5), test.ShouldBeFalse) // inside the notch
	test.That(t, p.Contains(5, 9), test.ShouldBeFalse)
}

func TestContainsTooFewVertices(t *testing.T) {
	p := Polygon{Vertices: []Point{{0, 0}, {10, 0}}, Type: TypeInclusion}
	test.That(t, p.Contains(5, 0), test.ShouldBeFalse)
	test.That(t, p.Contains(1, 1), test.ShouldBeFalse)
}

func TestScaleCommutesWithContainment(t *testing.T) {
	p := Polygon{
		Vertices: []Point{{1, 1}, {9, 2}, {8, 9}, {2, 8}},
		Type:     TypeInclusion,
	}
	points := []Point{{5, 5}, {1.5, 1.5}, {9, 9}, {0, 0}, {4, 7.5}}
	scales := [][2]float64{{2, 2}, {0.5, 0.5}, {3, 0.25}}
	for _, s := range scales {
		scaled := p.Clone()
		scaled.Scale(s[0], s[1])
		for _, pt := range points {
			test.That(t, scaled.Contains(pt.X*s[0], pt.Y*s[1]), test.ShouldEqual, p.Contains(pt.X, pt.Y))
		}
	}
}

func TestScaleInPlace(t *testing.T) {
	p := square(10)
	p.Scale(2, 3)
	test.That(t, p.Vertices[2], test.ShouldResemble, Point{20, 30})
	test.That(t, p.Contains(15, 25), test.ShouldBeTrue)
}

func TestValidate(t *testing.T) {
	p := square(10)
	test.That(t, p.Validate(), test.ShouldBeNil)

	p.Type = TypeUnspecified
	test.That(t, p.Validate(), test.ShouldNotBeNil)

	p = Polygon{Vertices: []Point{{0, 0}, {1, 0}}, Type: TypeExclusion}
	err := p.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "at least 3 vertices")
}

func TestAllowsClass(t *testing.T) {
	p := square(10)
	test.That(t, p.AllowsClass(7), test.ShouldBeTrue) // empty list admits everything

	p.TargetClasses = []int32{1, 3}
	test.That(t, p.AllowsClass(1), test.ShouldBeTrue)
	test.That(t, p.AllowsClass(3), test.ShouldBeTrue)
	test.That(t, p.AllowsClass(2), test.ShouldBeFalse)
}

func TestProtoRoundTrip(t *testing.T) {
	p := Polygon{
		Vertices:      []Point{{0, 0}, {4, 0}, {4, 4}},
		Type:          TypeExclusion,
		Priority:      7,
		TargetClasses: []int32{2, 5},
	}
	decoded := FromProto(p.ToProto())
	test.That(t, decoded, test.ShouldResemble, p)

	test.That(t, FromProto(&pb.Polygon{}).Type, test.ShouldEqual, TypeUnspecified)
}

// parityOracle is an independent crossing-number test without the boundary
// handling, used to cross-check interior and exterior points.
func parityOracle(vertices []Point, x, y float64) bool {
	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		xi, yi := vertices[i].X, vertices[i].Y
		xj, yj := vertices[j].X, vertices[j].Y
		if (yi > y) != (yj > y) {
			if t := (y - yi) / (yj - yi); x < xi+t*(xj-xi) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func TestContainsAgreesWithOracle(t *testing.T) {
	p := Polygon{
		Vertices: []Point{{1.3, 0.7}, {8.9, 1.9}, {9.4, 8.1}, {4.6, 9.7}, {0.4, 6.2}},
		Type:     TypeInclusion,
	}
	// An off-lattice grid keeps every sample away from vertices and edges.
	for ix := 0; ix < 40; ix++ {
		for iy := 0; iy < 40; iy++ {
			x := -1.0 + float64(ix)*0.301
			y := -1.0 + float64(iy)*0.293
			test.That(t, p.Contains(x, y), test.ShouldEqual, parityOracle(p.Vertices, x, y))
		}
	}
}

func TestTypeString(t *testing.T) {
	test.That(t, TypeInclusion.String(), test.ShouldEqual, "INCLUSION")
	test.That(t, TypeExclusion.String(), test.ShouldEqual, "EXCLUSION")
	test.That(t, TypeUnspecified.String(), test.ShouldEqual, "UNSPECIFIED")
}
