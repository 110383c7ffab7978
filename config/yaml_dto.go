package config

// YAMLConfig mirrors the config file. Pointer fields distinguish "absent"
// from zero so that absent keys keep their defaults.
type YAMLConfig struct {
	FrameID         *string     `yaml:"frame_id"`
	Layer           *string     `yaml:"layer"`
	Tolerance       *float64    `yaml:"tolerance"`
	DetectSeed      *bool       `yaml:"detect_seed"`
	SkipUnsupported *bool       `yaml:"skip_unsupported"`
	ExplodeInserts  *bool       `yaml:"explode_inserts"`
	Vertices        *bool       `yaml:"vertices"`
	Scales          *YAMLScales `yaml:"scales"`
}

type YAMLScales struct {
	Unitless   *float64 `yaml:"unitless"`
	Millimeter *float64 `yaml:"millimeter"`
	Meter      *float64 `yaml:"meter"`
	Other      *float64 `yaml:"other"`
}
