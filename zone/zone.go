// Package zone implements the spatial zones a caller attaches to a frame and
// the 2D geometry used to decide whether a detection falls inside one.
//
// Containment is boundary-exclusive: a point that coincides with a vertex or
// lies on an edge is outside. Adjacent zones sharing an edge therefore never
// both claim a detection whose center lands exactly on the shared boundary.
package zone

import (
	"math"

	"github.com/pkg/errors"

	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
)

// epsilon bounds the exact vertex and point-on-segment checks in Contains.
const epsilon = 1e-10

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// FromProtoPoint converts a wire point.
func FromProtoPoint(p *pb.Point) Point {
	return Point{X: p.GetX(), Y: p.GetY()}
}

// ToProto converts the point to its wire form.
func (p Point) ToProto() *pb.Point {
	return &pb.Point{X: p.X, Y: p.Y}
}

// Type tags a polygon as including or excluding the detections it contains.
type Type int32

const (
	// TypeUnspecified is the proto zero value; validation rejects it.
	TypeUnspecified Type = iota
	// TypeInclusion keeps contained detections, subject to target classes.
	TypeInclusion
	// TypeExclusion drops contained detections.
	TypeExclusion
)

func (t Type) String() string {
	switch t {
	case TypeInclusion:
		return "INCLUSION"
	case TypeExclusion:
		return "EXCLUSION"
	default:
		return "UNSPECIFIED"
	}
}

// Polygon is an ordered vertex loop with a zone type, a priority (higher
// wins adjudication) and an optional class allowlist (empty = any class).
type Polygon struct {
	Vertices      []Point
	Type          Type
	Priority      int32
	TargetClasses []int32
}

// FromProto decodes a wire polygon.
func FromProto(p *pb.Polygon) Polygon {
	vertices := make([]Point, 0, len(p.GetVertices()))
	for _, v := range p.GetVertices() {
		vertices = append(vertices, FromProtoPoint(v))
	}
	return Polygon{
		Vertices:      vertices,
		Type:          Type(p.GetType()),
		Priority:      p.GetPriority(),
		TargetClasses: append([]int32(nil), p.GetTargetClasses()...),
	}
}

// ToProto converts the polygon to its wire form.
func (p *Polygon) ToProto() *pb.Polygon {
	vertices := make([]*pb.Point, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		vertices = append(vertices, v.ToProto())
	}
	return &pb.Polygon{
		Vertices:      vertices,
		Type:          pb.PolygonType(p.Type),
		Priority:      p.Priority,
		TargetClasses: append([]int32(nil), p.TargetClasses...),
	}
}

// Validate checks the invariants a polygon must hold before it may enter the
// filter stage.
func (p *Polygon) Validate() error {
	if p.Type == TypeUnspecified {
		return errors.New("polygon type is unspecified")
	}
	if len(p.Vertices) < 3 {
		return errors.Errorf("polygon needs at least 3 vertices, got %d", len(p.Vertices))
	}
	return nil
}

// Scale multiplies every vertex by (sx, sy) in place.
func (p *Polygon) Scale(sx, sy float64) {
	for i := range p.Vertices {
		p.Vertices[i].X *= sx
		p.Vertices[i].Y *= sy
	}
}

// Clone returns a deep copy, so one view can be scaled while the other keeps
// original-frame coordinates.
func (p *Polygon) Clone() Polygon {
	return Polygon{
		Vertices:      append([]Point(nil), p.Vertices...),
		Type:          p.Type,
		Priority:      p.Priority,
		TargetClasses: append([]int32(nil), p.TargetClasses...),
	}
}

// AllowsClass reports whether the polygon's target list admits classID.
// An empty list admits every class.
func (p *Polygon) AllowsClass(classID int32) bool {
	if len(p.TargetClasses) == 0 {
		return true
	}
	for _, c := range p.TargetClasses {
		if c == classID {
			return true
		}
	}
	return false
}

// Contains reports whether (x, y) lies strictly inside the polygon. Vertices
// and edges count as outside. Polygons with fewer than three vertices contain
// nothing. The polygon need not be convex or simple; ray casting handles both.
func (p *Polygon) Contains(x, y float64) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		xi, yi := p.Vertices[i].X, p.Vertices[i].Y
		if math.Abs(x-xi) < epsilon && math.Abs(y-yi) < epsilon {
			return false
		}
		j := (i + 1) % n
		if onSegment(x, y, xi, yi, p.Vertices[j].X, p.Vertices[j].Y) {
			return false
		}
	}

	// Cast a horizontal ray toward +x and count edge crossings.
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := p.Vertices[i].X, p.Vertices[i].Y
		xj, yj := p.Vertices[j].X, p.Vertices[j].Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ContainsPoint is Contains for a Point value.
func (p *Polygon) ContainsPoint(pt Point) bool {
	return p.Contains(pt.X, pt.Y)
}

// onSegment reports whether (px, py) lies on the segment (x1,y1)-(x2,y2),
// within epsilon slack on both the bounding box and the cross product.
func onSegment(px, py, x1, y1, x2, y2 float64) bool {
	if px < math.Min(x1, x2)-epsilon || px > math.Max(x1, x2)+epsilon ||
		py < math.Min(y1, y2)-epsilon || py > math.Max(y1, y2)+epsilon {
		return false
	}
	cross := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
	return math.Abs(cross) < epsilon
}
