package toolpath

import (
	dxf "github.com/zooyer/dxf2path"
)

// ScaleTable maps a drawing's declared units to the factor that converts its
// coordinates to meters.
type ScaleTable struct {
	Unitless   float64
	Millimeter float64
	Meter      float64
	Other      float64 // any unit without its own entry
}

// DefaultScales treats unitless drawings as millimeters and leaves
// unsupported units unscaled.
func DefaultScales() ScaleTable {
	return ScaleTable{
		Unitless:   0.001,
		Millimeter: 0.001,
		Meter:      1.0,
		Other:      1.0,
	}
}

// Scale returns the factor for u.
func (t ScaleTable) Scale(u dxf.Units) float64 {
	switch u {
	case dxf.UnitsUnitless:
		return t.Unitless
	case dxf.UnitsMillimeter:
		return t.Millimeter
	case dxf.UnitsMeter:
		return t.Meter
	default:
		return t.Other
	}
}
