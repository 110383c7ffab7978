package toolpath

// Tolerance is the distance below which two points are the same point, both
// when matching endpoints and when deduplicating output.
const Tolerance = 1e-5

type options struct {
	tolerance       float64
	detectSeed      bool
	skipUnsupported bool
	vertices        bool
	explode         bool
	layer           string
	scales          ScaleTable
}

// Option configures Order, Emit and Extract.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		tolerance: Tolerance,
		scales:    DefaultScales(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTolerance overrides Tolerance. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// DetectSeed starts the chain at the first entity whose start point is not
// the end point of any other entity, instead of the first entity.
func DetectSeed() Option {
	return func(o *options) { o.detectSeed = true }
}

// SkipUnsupported drops entities that cannot be resolved instead of failing.
func SkipUnsupported() Option {
	return func(o *options) { o.skipUnsupported = true }
}

// WithVertices makes Emit include the interior vertices of polylines.
func WithVertices() Option {
	return func(o *options) { o.vertices = true }
}

// ExplodeInserts replaces block references by their block geometry before ordering.
func ExplodeInserts() Option {
	return func(o *options) { o.explode = true }
}

// OnLayer restricts Extract to entities on the named layer.
func OnLayer(name string) Option {
	return func(o *options) { o.layer = name }
}

// WithScales replaces the unit scale table used by Extract.
func WithScales(t ScaleTable) Option {
	return func(o *options) { o.scales = t }
}
