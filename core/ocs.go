package core

import "math"

// arbitraryAxisLimit 任意轴算法的阈值 (1/64)
const arbitraryAxisLimit = 1.0 / 64.0

// OCS 实体坐标系：原点 + 三个正交单位轴，Ax/Ay 为平面轴，Az 为法向
type OCS struct {
	Origin     Point
	Ax, Ay, Az Point
}

// WCS 世界坐标系本身
var WCS = OCS{
	Ax: Point{X: 1},
	Ay: Point{Y: 1},
	Az: Point{Z: 1},
}

// NewOCS 按 DXF 任意轴算法由拉伸方向（组码 210/220/230）构造 OCS
func NewOCS(extrusion Point) OCS {
	az := extrusion.Unit()
	if az.Norm() == 0 {
		return WCS
	}

	var ax Point
	if math.Abs(az.X) < arbitraryAxisLimit && math.Abs(az.Y) < arbitraryAxisLimit {
		ax = Point{Y: 1}.Cross(az).Unit()
	} else {
		ax = Point{Z: 1}.Cross(az).Unit()
	}
	ay := az.Cross(ax).Unit()

	return OCS{Ax: ax, Ay: ay, Az: az}
}

// ToWCS 局部坐标 -> 世界坐标
func (o OCS) ToWCS(p Point) Point {
	return o.Origin.
		Add(o.Ax.Scale(p.X)).
		Add(o.Ay.Scale(p.Y)).
		Add(o.Az.Scale(p.Z))
}
