package server

import (
	"sort"

	"github.com/stolyarchuk/aa-video/vision"
	"github.com/stolyarchuk/aa-video/zone"
)

// zoneFilter adjudicates detections against a zone list. It is per-request
// state: the zones slice is borrowed for the lifetime of one request and the
// filter never copies a polygon, only indices into the slice.
type zoneFilter struct {
	zones []zone.Polygon
}

func newZoneFilter(zones []zone.Polygon) *zoneFilter {
	return &zoneFilter{zones: zones}
}

// Filter keeps a detection iff the highest-priority zone containing its
// center admits it: an Inclusion zone whose target classes are empty or
// include the detection's class. A detection outside every zone is dropped,
// as is one whose top zone is an Exclusion. Centers on a zone boundary do
// not count as contained.
func (f *zoneFilter) Filter(detections []vision.Detection) []vision.Detection {
	out := make([]vision.Detection, 0, len(detections))
	for _, d := range detections {
		cx, cy := d.Center()

		containing := f.containing(cx, cy)
		if len(containing) == 0 {
			continue
		}
		// Highest priority first; equal priorities keep zone input order.
		sort.SliceStable(containing, func(a, b int) bool {
			return f.zones[containing[a]].Priority > f.zones[containing[b]].Priority
		})

		top := &f.zones[containing[0]]
		if top.Type == zone.TypeInclusion && top.AllowsClass(int32(d.ClassID)) {
			out = append(out, d)
		}
	}
	return out
}

// containing returns the indices of every zone containing (x, y), in zone
// input order.
func (f *zoneFilter) containing(x, y float64) []int {
	var idx []int
	for i := range f.zones {
		if f.zones[i].Contains(x, y) {
			idx = append(idx, i)
		}
	}
	return idx
}
