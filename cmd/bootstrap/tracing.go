package bootstrap

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const tracerName = "hotel-booking"

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracer,
	),
)

// NewTracer uses the global provider, a no-op until an exporter is installed.
func NewTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
