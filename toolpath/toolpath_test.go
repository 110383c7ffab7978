package toolpath

import (
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-5
})

func pt(x, y, z float64) core.Point {
	return core.Point{X: x, Y: y, Z: z}
}

func line(start, end core.Point) *entities.Line {
	return &entities.Line{
		BaseEntity: entities.BaseEntity{TypeName: "LINE", LayerName: "0"},
		Start:      start,
		End:        end,
	}
}

func lwpolyline(elevation float64, extrusion core.Point, vertices ...core.Point) *entities.LWPolyline {
	return &entities.LWPolyline{
		BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE", LayerName: "0"},
		Vertices:   vertices,
		Elevation:  elevation,
		Extrusion:  extrusion,
	}
}

func spline(points ...core.Point) *entities.Spline {
	return &entities.Spline{
		BaseEntity:    entities.BaseEntity{TypeName: "SPLINE", LayerName: "0"},
		Degree:        3,
		ControlPoints: points,
	}
}

// indices returns the input positions of segs, for comparing orderings.
func indices(segs []Segment) []int {
	out := make([]int, 0, len(segs))
	for _, s := range segs {
		out = append(out, s.Index)
	}
	return out
}
