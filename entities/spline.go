package entities

import (
	"github.com/zooyer/dxf2path/core"
)

// Spline 样条曲线，只保存控制点和拟合点，不做曲线求值
type Spline struct {
	BaseEntity
	Degree        int          // 组码 71
	Flags         int          // 组码 70
	Knots         []float64    // 组码 40
	ControlPoints []core.Point // 组码 10/20/30
	FitPoints     []core.Point // 组码 11/21/31
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}} })
}

func (sp *Spline) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		if !sp.parseCommon(t) {
			switch t.Code {
			case 70:
				sp.Flags = t.AsInt()
			case 71:
				sp.Degree = t.AsInt()
			case 40:
				sp.Knots = append(sp.Knots, t.AsFloat())
			case 10:
				sp.ControlPoints = append(sp.ControlPoints, core.Point{X: t.AsFloat()})
			case 20:
				if n := len(sp.ControlPoints); n > 0 {
					sp.ControlPoints[n-1].Y = t.AsFloat()
				}
			case 30:
				if n := len(sp.ControlPoints); n > 0 {
					sp.ControlPoints[n-1].Z = t.AsFloat()
				}
			case 11:
				sp.FitPoints = append(sp.FitPoints, core.Point{X: t.AsFloat()})
			case 21:
				if n := len(sp.FitPoints); n > 0 {
					sp.FitPoints[n-1].Y = t.AsFloat()
				}
			case 31:
				if n := len(sp.FitPoints); n > 0 {
					sp.FitPoints[n-1].Z = t.AsFloat()
				}
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

// Closed 闭合标志
func (sp *Spline) Closed() bool {
	return sp.Flags&1 == 1
}

// BBox 控制点的凸包必然包含曲线，这里用控制点包围盒
func (sp *Spline) BBox() core.BBox {
	if len(sp.ControlPoints) == 0 {
		return core.BBox{}
	}
	box := core.EmptyBBox()
	for _, p := range sp.ControlPoints {
		box = box.Extend(p)
	}
	return box
}
