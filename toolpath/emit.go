package toolpath

import "github.com/zooyer/dxf2path/core"

// Emit walks an ordered chain and returns its points multiplied by scale.
//
// The chain contributes the start of its first segment and then the end of
// every segment. A point closer than the tolerance to the previously
// emitted point is dropped. With WithVertices the interior vertices of
// polylines are emitted as well.
func Emit(ordered []Segment, scale float64, opts ...Option) Polyline {
	return emit(ordered, scale, newOptions(opts))
}

func emit(ordered []Segment, scale float64, o *options) Polyline {
	if len(ordered) == 0 {
		return nil
	}

	points := make(Polyline, 0, len(ordered)+1)
	points = append(points, ordered[0].Start.Scale(scale))

	push := func(p core.Point) {
		p = p.Scale(scale)
		if p.Near(points[len(points)-1], o.tolerance) {
			return
		}
		points = append(points, p)
	}

	for _, seg := range ordered {
		if o.vertices {
			for _, v := range interior(seg) {
				push(v)
			}
		}
		push(seg.End)
	}

	return points
}
