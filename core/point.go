package core

import (
	"fmt"
	"math"
)

// Point 代表三维空间中的一个点（或向量）
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale 分量缩放
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Unit 返回单位向量，零向量原样返回
func (p Point) Unit() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// IsFinite 各分量均不是 Inf 或 NaN
func (p Point) IsFinite() bool {
	for _, v := range [...]float64{p.X, p.Y, p.Z} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Distance 欧氏距离
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// Near 距离严格小于 tol 时认为是同一个点
func (p Point) Near(q Point, tol float64) bool {
	return p.Distance(q) < tol
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// EmptyBBox 返回一个可以被 Extend 的空包围盒
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend 扩展包围盒以包含 p
func (b BBox) Extend(p Point) BBox {
	b.Min = Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	return b
}

// Union 合并两个包围盒
func (b BBox) Union(o BBox) BBox {
	return b.Extend(o.Min).Extend(o.Max)
}

// IsEmpty 未包含任何点
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}
