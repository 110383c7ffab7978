package utils

import (
	"errors"
	"fmt"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

// maxInsertDepth 块嵌套的最大深度，超过视为循环引用
const maxInsertDepth = 16

var (
	ErrBlockNotFound = errors.New("block not found")
	ErrInsertDepth   = errors.New("block nesting too deep")
)

// Explode 将块引用展开为世界坐标下的实体
// LWPOLYLINE 展开为逐段的 LINE，SPLINE 变换控制点，嵌套 INSERT 递归展开，其它实体原样保留
func Explode(doc *dxf.Document, ins *entities.Insert) ([]entities.Entity, error) {
	return explode(doc, ins, 0)
}

func explode(doc *dxf.Document, ins *entities.Insert, depth int) (out []entities.Entity, err error) {
	if depth >= maxInsertDepth {
		return nil, fmt.Errorf("explode %s: %w", ins.BlockName, ErrInsertDepth)
	}

	block, ok := doc.Block(ins.BlockName)
	if !ok {
		return nil, fmt.Errorf("explode %s: %w", ins.BlockName, ErrBlockNotFound)
	}

	for _, sub := range block.Entities {
		switch e := sub.(type) {
		case *entities.Line:
			out = append(out, &entities.Line{
				BaseEntity: e.BaseEntity,
				Start:      TransformPoint(e.Start.Sub(block.Base), ins),
				End:        TransformPoint(e.End.Sub(block.Base), ins),
			})
		case *entities.LWPolyline:
			var vertices = TransformPoints(e.WCSVertices(), block.Base, ins)
			if e.Closed() && len(vertices) > 2 {
				vertices = append(vertices, vertices[0])
			}
			for i := 1; i < len(vertices); i++ {
				out = append(out, &entities.Line{
					BaseEntity: entities.BaseEntity{TypeName: "LINE", LayerName: e.LayerName, Handle: e.Handle},
					Start:      vertices[i-1],
					End:        vertices[i],
				})
			}
		case *entities.Spline:
			spline := *e
			spline.ControlPoints = TransformPoints(e.ControlPoints, block.Base, ins)
			spline.FitPoints = TransformPoints(e.FitPoints, block.Base, ins)
			out = append(out, &spline)
		case *entities.Insert:
			nested, err := explode(doc, CombineInserts(ins, e, block.Base), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		default:
			out = append(out, sub)
		}
	}

	return out, nil
}

// ExplodeAll 展开文档中所有顶层块引用，保持原有的实体顺序
func ExplodeAll(doc *dxf.Document) ([]entities.Entity, error) {
	var out = make([]entities.Entity, 0, len(doc.Entities))
	for _, entity := range doc.Entities {
		ins, ok := entity.(*entities.Insert)
		if !ok {
			out = append(out, entity)
			continue
		}
		exploded, err := Explode(doc, ins)
		if err != nil {
			return nil, err
		}
		out = append(out, exploded...)
	}
	return out, nil
}

// pointsBBox 点集包围盒
func pointsBBox(points []core.Point) core.BBox {
	box := core.EmptyBBox()
	for _, p := range points {
		box = box.Extend(p)
	}
	return box
}
