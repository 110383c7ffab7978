package toolpath

import (
	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

// Segment is an entity reduced to its world-coordinate start and end points.
type Segment struct {
	Index  int // position of Entity in the input
	Entity entities.Entity
	Start  core.Point
	End    core.Point
}

// Resolve computes the world-coordinate endpoints of e.
//
// LINE endpoints are already in world coordinates. LWPOLYLINE vertices are
// lifted to (x, y, elevation) in the entity's object coordinate system and
// transformed to world coordinates. SPLINE endpoints are its first and last
// control points; the curve itself is not evaluated.
//
// Endpoints with an infinite or NaN coordinate fail with ErrNonFinitePoint.
func Resolve(e entities.Entity) (Segment, error) {
	var seg Segment
	switch v := e.(type) {
	case *entities.Line:
		seg = Segment{Entity: e, Start: v.Start, End: v.End}
	case *entities.LWPolyline:
		if len(v.Vertices) == 0 {
			return Segment{}, entityError("resolve", e, ErrEmptyEntity)
		}
		seg = Segment{Entity: e, Start: v.WCSVertex(0), End: v.WCSVertex(-1)}
	case *entities.Spline:
		if len(v.ControlPoints) == 0 {
			return Segment{}, entityError("resolve", e, ErrEmptyEntity)
		}
		seg = Segment{Entity: e, Start: v.ControlPoints[0], End: v.ControlPoints[len(v.ControlPoints)-1]}
	default:
		return Segment{}, entityError("resolve", e, ErrUnsupportedEntityKind)
	}

	if !seg.Start.IsFinite() || !seg.End.IsFinite() {
		return Segment{}, entityError("resolve", e, ErrNonFinitePoint)
	}
	return seg, nil
}

// Start returns the world-coordinate start point of e.
func Start(e entities.Entity) (core.Point, error) {
	seg, err := Resolve(e)
	return seg.Start, err
}

// End returns the world-coordinate end point of e.
func End(e entities.Entity) (core.Point, error) {
	seg, err := Resolve(e)
	return seg.End, err
}

// interior returns the points strictly between a segment's start and end.
// Only polylines have any; splines are not sampled.
func interior(s Segment) []core.Point {
	pl, ok := s.Entity.(*entities.LWPolyline)
	if !ok || len(pl.Vertices) < 3 {
		return nil
	}
	vertices := pl.WCSVertices()
	return vertices[1 : len(vertices)-1]
}

func entityError(op string, e entities.Entity, err error) *Error {
	out := &Error{Op: op, Index: -1, Err: err}
	if e != nil {
		out.Type = e.Type()
		out.Handle = e.ID()
	}
	return out
}
