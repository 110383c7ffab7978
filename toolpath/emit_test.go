package toolpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zooyer/dxf2path/entities"
)

func mustOrder(t *testing.T, ents ...entities.Entity) []Segment {
	t.Helper()
	segs, err := Order(ents)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	return segs
}

func TestEmit(t *testing.T) {
	cases := []struct {
		name  string
		segs  []Segment
		scale float64
		opts  []Option
		want  Polyline
	}{
		{
			name:  "millimeters to meters",
			segs:  mustOrder(t, line(pt(0, 0, 0), pt(1000, 0, 0))),
			scale: 0.001,
			want:  Polyline{pt(0, 0, 0), pt(1, 0, 0)},
		},
		{
			name:  "two lines",
			segs:  mustOrder(t, line(pt(0, 0, 0), pt(1, 0, 0)), line(pt(1, 0, 0), pt(1, 1, 0))),
			scale: 1,
			want:  Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0)},
		},
		{
			name:  "degenerate segment deduplicated",
			segs:  mustOrder(t, line(pt(0, 0, 0), pt(1, 0, 0)), line(pt(1, 0, 0), pt(1, 0, 0.000001)), line(pt(1, 0, 0), pt(2, 0, 0))),
			scale: 1,
			want:  Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0)},
		},
		{
			name:  "polyline endpoints only",
			segs:  mustOrder(t, lwpolyline(0, pt(0, 0, 1), pt(0, 0, 0), pt(1, 1, 0), pt(2, 0, 0))),
			scale: 1,
			want:  Polyline{pt(0, 0, 0), pt(2, 0, 0)},
		},
		{
			name:  "polyline with vertices",
			segs:  mustOrder(t, lwpolyline(0, pt(0, 0, 1), pt(0, 0, 0), pt(1, 1, 0), pt(2, 0, 0))),
			scale: 1,
			opts:  []Option{WithVertices()},
			want:  Polyline{pt(0, 0, 0), pt(1, 1, 0), pt(2, 0, 0)},
		},
		{
			name:  "empty chain",
			segs:  nil,
			scale: 1,
			want:  nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Emit(c.segs, c.scale, c.opts...)
			if diff := cmp.Diff(c.want, got, approx); diff != "" {
				t.Errorf("Emit (-want +got): %s", diff)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Near(got[i-1], Tolerance) {
					t.Errorf("points %d and %d coincide", i-1, i)
				}
			}
		})
	}
}

func TestPolyline_Metrics(t *testing.T) {
	square := Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0), pt(0, 0, 0)}
	if !square.Closed(Tolerance) {
		t.Error("square should be closed")
	}
	if got := square.Length(); got != 4 {
		t.Errorf("Length = %v, want 4", got)
	}
	if Polyline(square[:2]).Closed(Tolerance) {
		t.Error("open segment reported closed")
	}
	box := square.BBox()
	if box.Max.X != 1 || box.Max.Y != 1 || box.Min.X != 0 {
		t.Errorf("BBox = %+v", box)
	}
}
