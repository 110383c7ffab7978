package utils

import (
	"math"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

// TransformBBox 将块内局部包围盒的 8 个角点变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, base core.Point, ins *entities.Insert) core.BBox {
	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	return pointsBBox(TransformPoints(corners, base, ins))
}

// GetEntityBBoxWCS 实体在世界坐标下的包围盒，块引用会结合块定义计算
func GetEntityBBoxWCS(d *dxf.Document, entity entities.Entity) core.BBox {
	switch e := entity.(type) {
	case *entities.Insert:
		block, ok := d.Block(e.BlockName)
		if !ok || len(block.Entities) == 0 {
			return core.BBox{Min: e.InsertionPoint, Max: e.InsertionPoint}
		}

		local := core.EmptyBBox()
		for _, sub := range block.Entities {
			if _, ok := sub.(*entities.Unknown); ok {
				continue
			}
			local = local.Union(sub.BBox())
		}
		if local.IsEmpty() {
			return core.BBox{Min: e.InsertionPoint, Max: e.InsertionPoint}
		}
		return TransformBBox(local, block.Base, e)
	default:
		return e.BBox()
	}
}

// DocumentBBox 文档中所有实体的世界坐标包围盒，未知实体不参与
func DocumentBBox(d *dxf.Document) core.BBox {
	box := core.EmptyBBox()
	for _, entity := range d.Entities {
		if _, ok := entity.(*entities.Unknown); ok {
			continue
		}
		box = box.Union(GetEntityBBoxWCS(d, entity))
	}
	if box.IsEmpty() {
		return core.BBox{}
	}
	return box
}

// Size 包围盒三个方向的尺寸
func Size(box core.BBox) core.Point {
	return core.Point{
		X: math.Abs(box.Max.X - box.Min.X),
		Y: math.Abs(box.Max.Y - box.Min.Y),
		Z: math.Abs(box.Max.Z - box.Min.Z),
	}
}
