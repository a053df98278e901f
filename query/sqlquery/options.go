package sqlquery

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/go-leo/specification/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/go-leo/specification/query/sqlquery"

type option struct {
	Logger         *logger.Logger
	Placeholder    sq.PlaceholderFormat
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Placeholder == nil {
		o.Placeholder = sq.Question
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
	return o
}

type Option func(*option)

// WithLogger logs translated statements at debug level and untranslatable
// predicates at warn level.
func WithLogger(log logger.Logger) Option {
	return func(o *option) {
		o.Logger = &log
	}
}

// WithPlaceholder sets the bind variable format, sq.Question by default.
func WithPlaceholder(placeholder sq.PlaceholderFormat) Option {
	return func(o *option) {
		o.Placeholder = placeholder
	}
}

// WithTracerProvider sets where query spans go, the global provider by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *option) {
		o.TracerProvider = tp
	}
}

// WithMeterProvider sets where query counters go, the global provider by default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *option) {
		o.MeterProvider = mp
	}
}
