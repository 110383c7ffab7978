package toolpath

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

// drawing wraps entity records in a minimal DXF file declaring units.
func drawing(units int, records ...string) string {
	var b strings.Builder
	b.WriteString("0\nSECTION\n2\nHEADER\n9\n$INSUNITS\n70\n")
	b.WriteString(strconv.Itoa(units) + "\n")
	b.WriteString("0\nENDSEC\n0\nSECTION\n2\nENTITIES\n")
	for _, r := range records {
		b.WriteString(r)
	}
	b.WriteString("0\nENDSEC\n0\nEOF\n")
	return b.String()
}

func lineRecord(layer string, x1, y1, x2, y2 string) string {
	return "0\nLINE\n8\n" + layer + "\n10\n" + x1 + "\n20\n" + y1 + "\n30\n0\n11\n" + x2 + "\n21\n" + y2 + "\n31\n0\n"
}

func load(t *testing.T, data string) *dxf.Document {
	t.Helper()
	doc, err := dxf.Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return doc
}

func TestExtract_TwoLinesInMeters(t *testing.T) {
	doc := load(t, drawing(6,
		lineRecord("0", "1", "0", "1", "1"),
		lineRecord("0", "0", "0", "1", "0"),
	))
	if doc.Units != dxf.UnitsMeter {
		t.Fatalf("units = %v, want meter", doc.Units)
	}

	// the first enumerated entity seeds the chain, so detect the real start
	got, err := Extract(doc, DetectSeed())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Extract (-want +got): %s", diff)
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	doc := &dxf.Document{
		Units: dxf.UnitsMeter,
		Entities: []entities.Entity{
			line(pt(0, 0, 0), pt(1, 0, 0)),
			line(pt(1, 0, 0), pt(1, 1, 0)),
		},
	}
	got, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Extract (-want +got): %s", diff)
	}
}

func TestExtract_Scales(t *testing.T) {
	cases := []struct {
		units dxf.Units
		opts  []Option
		want  float64
	}{
		{dxf.UnitsUnitless, nil, 1},
		{dxf.UnitsMillimeter, nil, 1},
		{dxf.UnitsMeter, nil, 1000},
		{dxf.UnitsInch, nil, 1000},
		{dxf.UnitsMillimeter, []Option{WithScales(ScaleTable{Millimeter: 0.01})}, 10},
	}
	for _, c := range cases {
		doc := &dxf.Document{
			Units:    c.units,
			Entities: []entities.Entity{line(pt(0, 0, 0), pt(1000, 0, 0))},
		}
		got, err := Extract(doc, c.opts...)
		if err != nil {
			t.Fatalf("%v: %v", c.units, err)
		}
		if len(got) != 2 || !got[1].Near(pt(c.want, 0, 0), Tolerance) {
			t.Errorf("%v: got %v, want end at x=%v", c.units, got, c.want)
		}
	}
}

func TestExtract_Empty(t *testing.T) {
	docs := []*dxf.Document{
		nil,
		{},
		load(t, drawing(4)),
	}
	for i, doc := range docs {
		if got, err := Extract(doc); !errors.Is(err, ErrEmptyDocument) || got != nil {
			t.Errorf("doc %d: got %v, %v; want ErrEmptyDocument", i, got, err)
		}
	}
}

func TestExtract_Layer(t *testing.T) {
	doc := load(t, drawing(4,
		lineRecord("CUT", "0", "0", "1000", "0"),
		lineRecord("NOTES", "50", "50", "60", "60"),
		lineRecord("cut", "1000", "0", "1000", "1000"),
	))

	if _, err := Extract(doc); !errors.Is(err, ErrDisconnectedPath) {
		t.Fatalf("without filter: %v, want ErrDisconnectedPath", err)
	}

	got, err := Extract(doc, OnLayer("CUT"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Extract (-want +got): %s", diff)
	}

	if _, err := Extract(doc, OnLayer("MISSING")); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("missing layer: %v, want ErrEmptyDocument", err)
	}
}

func TestExtract_UnsupportedEntity(t *testing.T) {
	doc := load(t, drawing(6,
		lineRecord("0", "0", "0", "1", "0"),
		"0\nCIRCLE\n8\n0\n10\n0\n20\n0\n40\n1\n",
		lineRecord("0", "1", "0", "2", "0"),
	))

	if _, err := Extract(doc); !errors.Is(err, ErrUnsupportedEntityKind) {
		t.Fatalf("err = %v, want ErrUnsupportedEntityKind", err)
	}

	got, err := Extract(doc, SkipUnsupported())
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %v, want 3 points", got)
	}
}

func TestExtract_ExplodeInserts(t *testing.T) {
	data := "0\nSECTION\n2\nHEADER\n9\n$INSUNITS\n70\n6\n0\nENDSEC\n" +
		"0\nSECTION\n2\nBLOCKS\n" +
		"0\nBLOCK\n2\nLEG\n10\n0\n20\n0\n30\n0\n" +
		lineRecord("0", "0", "0", "1", "0") +
		"0\nENDBLK\n" +
		"0\nENDSEC\n" +
		"0\nSECTION\n2\nENTITIES\n" +
		lineRecord("0", "0", "0", "1", "0") +
		"0\nINSERT\n2\nLEG\n10\n1\n20\n0\n30\n0\n50\n90\n" +
		"0\nENDSEC\n0\nEOF\n"
	doc := load(t, data)

	if _, err := Extract(doc); !errors.Is(err, ErrUnsupportedEntityKind) {
		t.Fatalf("without explode: %v, want ErrUnsupportedEntityKind", err)
	}

	got, err := Extract(doc, ExplodeInserts())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := Polyline{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Extract (-want +got): %s", diff)
	}
}

func TestExtract_NoAliasing(t *testing.T) {
	l := line(pt(0, 0, 0), pt(1, 0, 0))
	doc := &dxf.Document{Units: dxf.UnitsMeter, Entities: []entities.Entity{l}}
	got, err := Extract(doc)
	if err != nil {
		t.Fatal(err)
	}
	got[0] = core.Point{X: 42}
	if l.Start.X != 0 {
		t.Error("mutating the polyline changed the document")
	}
}

func TestExtract_OverflowingCoordinate(t *testing.T) {
	doc := load(t, drawing(4,
		lineRecord("0", "0", "0", "1", "0"),
		lineRecord("0", "1e400", "0", "3", "0"),
	))
	if _, err := Extract(doc); !errors.Is(err, ErrNonFinitePoint) {
		t.Errorf("err = %v, want ErrNonFinitePoint", err)
	}
}
