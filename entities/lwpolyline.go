package entities

import (
	"github.com/zooyer/dxf2path/core"
)

// LWPolyline 轻量多段线，顶点存放在 OCS 平面坐标中
type LWPolyline struct {
	BaseEntity
	Vertices  []core.Point // 组码 10/20，仅 X/Y 有效
	Elevation float64      // 组码 38，沿 OCS Z 轴的高度
	Extrusion core.Point   // 组码 210/220/230，OCS 法向
	Flags     int          // 组码 70，bit 1 为闭合
}

func init() {
	Register("LWPOLYLINE", func() Entity {
		return &LWPolyline{
			BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"},
			Extrusion:  core.Point{Z: 1},
		}
	})
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	var x float64
	for {
		t := s.LastTag
		if !l.parseCommon(t) {
			switch t.Code {
			case 10:
				x = t.AsFloat()
			case 20:
				l.Vertices = append(l.Vertices, core.Point{X: x, Y: t.AsFloat()})
			case 38:
				l.Elevation = t.AsFloat()
			case 70:
				l.Flags = t.AsInt()
			case 210:
				l.Extrusion.X = t.AsFloat()
			case 220:
				l.Extrusion.Y = t.AsFloat()
			case 230:
				l.Extrusion.Z = t.AsFloat()
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

// Closed 闭合标志
func (l *LWPolyline) Closed() bool {
	return l.Flags&1 == 1
}

// OCS 由拉伸方向计算实体坐标系
func (l *LWPolyline) OCS() core.OCS {
	return core.NewOCS(l.Extrusion)
}

// WCSVertex 第 i 个顶点的世界坐标，i 可为负数（-1 为最后一个）
func (l *LWPolyline) WCSVertex(i int) core.Point {
	if i < 0 {
		i += len(l.Vertices)
	}
	v := l.Vertices[i]
	return l.OCS().ToWCS(core.Point{X: v.X, Y: v.Y, Z: l.Elevation})
}

// WCSVertices 所有顶点的世界坐标
func (l *LWPolyline) WCSVertices() []core.Point {
	var (
		ocs    = l.OCS()
		points = make([]core.Point, 0, len(l.Vertices))
	)
	for _, v := range l.Vertices {
		points = append(points, ocs.ToWCS(core.Point{X: v.X, Y: v.Y, Z: l.Elevation}))
	}
	return points
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	box := core.EmptyBBox()
	for _, p := range l.WCSVertices() {
		box = box.Extend(p)
	}
	return box
}
