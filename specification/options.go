package specification

// Strategy selects how two expression-backed specifications over different
// parameters are combined.
type Strategy int

const (
	// Invoke keeps the left parameter and applies the right predicate to it
	// through an invocation node.
	Invoke Strategy = iota
	// Unify rewrites both bodies onto one fresh parameter with expression.Combine.
	Unify
)

func (s Strategy) String() string {
	switch s {
	case Invoke:
		return "invoke"
	case Unify:
		return "unify"
	default:
		return "unknown"
	}
}

type option struct {
	Strategy Strategy
	Name     string
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// derive copies the options for a combined specification. The name belongs
// to the original only.
func (o *option) derive() *option {
	d := *o
	d.Name = ""
	return &d
}

type Option func(*option)

// WithStrategy sets the combination strategy, Invoke by default.
func WithStrategy(strategy Strategy) Option {
	return func(o *option) {
		o.Strategy = strategy
	}
}

// WithName names the specification in String.
func WithName(name string) Option {
	return func(o *option) {
		o.Name = name
	}
}
