package toolpath

import (
	"math"

	"github.com/asim/quadtree"

	"github.com/zooyer/dxf2path/core"
)

// disconnected builds the error for a chain that cannot be continued,
// locating the remaining start point closest to the tail. Nearest is left
// zero and Distance is +Inf when no start point has a finite distance.
func disconnected(ordered, remaining []Segment) *DisconnectedError {
	tail := ordered[len(ordered)-1].End
	nearest, dist := nearestStart(tail, remaining)
	return &DisconnectedError{
		Placed:    len(ordered),
		Remaining: len(remaining),
		Tail:      tail,
		Nearest:   nearest,
		Distance:  dist,
	}
}

// nearestStart indexes the XY projection of the remaining start points in a
// quadtree and ranks the candidates it returns by 3D distance.
func nearestStart(tail core.Point, remaining []Segment) (Segment, float64) {
	if !tail.IsFinite() {
		return Segment{}, math.Inf(1)
	}

	box := core.EmptyBBox().Extend(tail)
	for _, s := range remaining {
		if s.Start.IsFinite() {
			box = box.Extend(s.Start)
		}
	}

	// pad so points on the boundary still insert
	halfW := (box.Max.X-box.Min.X)/2 + 1
	halfH := (box.Max.Y-box.Min.Y)/2 + 1
	tree := quadtree.New(quadtree.NewAABB(
		quadtree.NewPoint((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2, nil),
		quadtree.NewPoint(halfW, halfH, nil),
	), 0, nil)

	for i, s := range remaining {
		if s.Start.IsFinite() {
			tree.Insert(quadtree.NewPoint(s.Start.X, s.Start.Y, i))
		}
	}

	candidates := tree.KNearest(quadtree.NewAABB(
		quadtree.NewPoint(tail.X, tail.Y, nil),
		quadtree.NewPoint(halfW*2, halfH*2, nil),
	), len(remaining), nil)

	var (
		best     = -1
		bestDist = math.Inf(1)
	)
	for _, c := range candidates {
		i := c.Data().(int)
		if d := remaining[i].Start.Distance(tail); d < bestDist || (d == bestDist && i < best) {
			best, bestDist = i, d
		}
	}

	// fall back to a linear scan when the index finds nothing
	if best < 0 {
		for i, s := range remaining {
			if d := s.Start.Distance(tail); d < bestDist {
				best, bestDist = i, d
			}
		}
	}

	if best < 0 {
		return Segment{}, math.Inf(1)
	}
	return remaining[best], bestDist
}
