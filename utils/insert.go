package utils

import (
	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

// CombineInserts 合并嵌套块的变换，base 为父块的基点
// 旋转叠加、缩放相乘只在等比缩放时精确
func CombineInserts(parent, child *entities.Insert, base core.Point) *entities.Insert {
	return &entities.Insert{
		BaseEntity: child.BaseEntity,
		BlockName:  child.BlockName,
		Rotation:   parent.Rotation + child.Rotation,
		Scale: core.Point{
			X: parent.Scale.X * child.Scale.X,
			Y: parent.Scale.Y * child.Scale.Y,
			Z: parent.Scale.Z * child.Scale.Z,
		},
		// 子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
		InsertionPoint: TransformPoint(child.InsertionPoint.Sub(base), parent),
	}
}
