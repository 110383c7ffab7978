package toolpath

import (
	"strings"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/entities"
	"github.com/zooyer/dxf2path/utils"
)

// Extract orders the entities of doc and emits them as a polyline in meters,
// scaled according to doc.Units.
func Extract(doc *dxf.Document, opts ...Option) (Polyline, error) {
	o := newOptions(opts)

	if doc == nil || len(doc.Entities) == 0 {
		return nil, &Error{Op: "extract", Index: -1, Err: ErrEmptyDocument}
	}

	ents := doc.Entities
	if o.explode {
		exploded, err := utils.ExplodeAll(doc)
		if err != nil {
			return nil, &Error{Op: "extract", Index: -1, Err: err}
		}
		ents = exploded
	}

	if o.layer != "" {
		ents = onLayer(ents, o.layer)
	}

	ordered, err := order(ents, o)
	if err != nil {
		return nil, err
	}

	return emit(ordered, o.scales.Scale(doc.Units), o), nil
}

func onLayer(ents []entities.Entity, layer string) []entities.Entity {
	var out []entities.Entity
	for _, e := range ents {
		if strings.EqualFold(e.Layer(), layer) {
			out = append(out, e)
		}
	}
	return out
}
