package dxf

import "fmt"

// Units 对应 HEADER 中 $INSUNITS 的取值
type Units int

const (
	UnitsUnitless     Units = 0
	UnitsInch         Units = 1
	UnitsFoot         Units = 2
	UnitsMile         Units = 3
	UnitsMillimeter   Units = 4
	UnitsCentimeter   Units = 5
	UnitsMeter        Units = 6
	UnitsKilometer    Units = 7
	UnitsMicroinch    Units = 8
	UnitsMil          Units = 9
	UnitsYard         Units = 10
	UnitsAngstrom     Units = 11
	UnitsNanometer    Units = 12
	UnitsMicron       Units = 13
	UnitsDecimeter    Units = 14
	UnitsDecameter    Units = 15
	UnitsHectometer   Units = 16
	UnitsGigameter    Units = 17
	UnitsAstronomical Units = 18
	UnitsLightYear    Units = 19
	UnitsParsec       Units = 20
)

var unitNames = map[Units]string{
	UnitsUnitless:     "unitless",
	UnitsInch:         "inch",
	UnitsFoot:         "foot",
	UnitsMile:         "mile",
	UnitsMillimeter:   "millimeter",
	UnitsCentimeter:   "centimeter",
	UnitsMeter:        "meter",
	UnitsKilometer:    "kilometer",
	UnitsMicroinch:    "microinch",
	UnitsMil:          "mil",
	UnitsYard:         "yard",
	UnitsAngstrom:     "angstrom",
	UnitsNanometer:    "nanometer",
	UnitsMicron:       "micron",
	UnitsDecimeter:    "decimeter",
	UnitsDecameter:    "decameter",
	UnitsHectometer:   "hectometer",
	UnitsGigameter:    "gigameter",
	UnitsAstronomical: "astronomical",
	UnitsLightYear:    "lightyear",
	UnitsParsec:       "parsec",
}

func (u Units) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("units(%d)", int(u))
}
