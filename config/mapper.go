package config

// Map applies the values present in dto on top of base.
func Map(base Config, dto YAMLConfig) Config {
	setString(&base.FrameID, dto.FrameID)
	setString(&base.Layer, dto.Layer)
	setFloat(&base.Tolerance, dto.Tolerance)
	setBool(&base.DetectSeed, dto.DetectSeed)
	setBool(&base.SkipUnsupported, dto.SkipUnsupported)
	setBool(&base.ExplodeInserts, dto.ExplodeInserts)
	setBool(&base.Vertices, dto.Vertices)

	if s := dto.Scales; s != nil {
		setFloat(&base.Scales.Unitless, s.Unitless)
		setFloat(&base.Scales.Millimeter, s.Millimeter)
		setFloat(&base.Scales.Meter, s.Meter)
		setFloat(&base.Scales.Other, s.Other)
	}
	return base
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
