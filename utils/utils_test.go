package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-5
})

func newLine(x1, y1, x2, y2 float64) *entities.Line {
	return &entities.Line{
		BaseEntity: entities.BaseEntity{TypeName: "LINE"},
		Start:      core.Point{X: x1, Y: y1},
		End:        core.Point{X: x2, Y: y2},
	}
}

func newInsert(block string, x, y, rotation, scale float64) *entities.Insert {
	return &entities.Insert{
		BaseEntity:     entities.BaseEntity{TypeName: "INSERT"},
		BlockName:      block,
		InsertionPoint: core.Point{X: x, Y: y},
		Scale:          core.Point{X: scale, Y: scale, Z: scale},
		Rotation:       rotation,
	}
}

func TestTransformPoint(t *testing.T) {
	got := TransformPoint(core.Point{X: 1, Y: 0, Z: 1}, newInsert("B", 10, 20, 90, 2))
	if diff := cmp.Diff(core.Point{X: 10, Y: 22, Z: 2}, got, approx); diff != "" {
		t.Errorf("TransformPoint: %s", diff)
	}
}

func TestExplode(t *testing.T) {
	doc := &dxf.Document{
		Blocks: map[string]*dxf.Block{
			"INNER": {
				Name:     "INNER",
				Entities: []entities.Entity{newLine(0, 0, 1, 0)},
			},
			"OUTER": {
				Name: "OUTER",
				Base: core.Point{X: 1, Y: 1},
				Entities: []entities.Entity{
					&entities.LWPolyline{
						BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE"},
						Vertices:   []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
						Extrusion:  core.Point{Z: 1},
					},
					newInsert("INNER", 2, 2, 90, 1),
				},
			},
		},
	}

	got, err := Explode(doc, newInsert("OUTER", 0, 0, 0, 1))
	if err != nil {
		t.Fatalf("Explode: %v", err)
	}

	var segments [][2]core.Point
	for _, e := range got {
		l, ok := e.(*entities.Line)
		if !ok {
			t.Fatalf("exploded %T, want *entities.Line", e)
		}
		segments = append(segments, [2]core.Point{l.Start, l.End})
	}
	want := [][2]core.Point{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 1, Y: 2}},
	}
	if diff := cmp.Diff(want, segments, approx); diff != "" {
		t.Errorf("Explode (-want +got): %s", diff)
	}
}

func TestExplode_Errors(t *testing.T) {
	doc := &dxf.Document{
		Blocks: map[string]*dxf.Block{
			"LOOP": {Name: "LOOP", Entities: []entities.Entity{newInsert("LOOP", 0, 0, 0, 1)}},
		},
	}

	if _, err := Explode(doc, newInsert("MISSING", 0, 0, 0, 1)); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("missing block: %v", err)
	}
	if _, err := Explode(doc, newInsert("LOOP", 0, 0, 0, 1)); !errors.Is(err, ErrInsertDepth) {
		t.Errorf("recursive block: %v", err)
	}
}

func TestExplodeAll_KeepsOrder(t *testing.T) {
	doc := &dxf.Document{
		Blocks: map[string]*dxf.Block{
			"B": {Name: "B", Entities: []entities.Entity{newLine(0, 0, 1, 0)}},
		},
		Entities: []entities.Entity{
			newLine(-1, 0, 0, 0),
			newInsert("B", 0, 0, 0, 1),
			newLine(1, 0, 2, 0),
		},
	}
	got, err := ExplodeAll(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entities, want 3", len(got))
	}
	if l := got[1].(*entities.Line); l.Start.X != 0 || l.End.X != 1 {
		t.Errorf("exploded line = %+v", l)
	}
}

func TestGetEntityBBoxWCS(t *testing.T) {
	doc := &dxf.Document{
		Blocks: map[string]*dxf.Block{
			"B": {Name: "B", Entities: []entities.Entity{newLine(0, 0, 2, 1), entities.NewUnknown("TEXT")}},
		},
	}
	got := GetEntityBBoxWCS(doc, newInsert("B", 10, 0, 90, 1))
	want := core.BBox{Min: core.Point{X: 9, Y: 0}, Max: core.Point{X: 10, Y: 2}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("bbox (-want +got): %s", diff)
	}

	doc.Entities = []entities.Entity{newInsert("B", 10, 0, 90, 1), newLine(0, 0, 1, 1)}
	box := DocumentBBox(doc)
	if diff := cmp.Diff(core.Point{X: 10, Y: 2}, Size(box), approx); diff != "" {
		t.Errorf("document size: %s", diff)
	}
}
