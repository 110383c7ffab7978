package toolpath

import (
	"github.com/zooyer/dxf2path/core"
)

// Polyline is an ordered toolpath; the order of the points is the direction
// of travel.
type Polyline []core.Point

func (p Polyline) Len() int {
	return len(p)
}

// Closed reports whether the path returns to its first point.
func (p Polyline) Closed(tol float64) bool {
	return len(p) > 2 && p[0].Near(p[len(p)-1], tol)
}

// Length is the total travel distance along the path.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Distance(p[i-1])
	}
	return total
}

func (p Polyline) BBox() core.BBox {
	if len(p) == 0 {
		return core.BBox{}
	}
	box := core.EmptyBBox()
	for _, pt := range p {
		box = box.Extend(pt)
	}
	return box
}
