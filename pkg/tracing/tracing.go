package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Config struct {
	Enable      bool   `envconfig:"TRACING_ENABLE" default:"false"`
	Endpoint    string `envconfig:"TRACING_ENDPOINT" default:"localhost:4318"`
	Insecure    bool   `envconfig:"TRACING_INSECURE" default:"true"`
	ServiceName string `envconfig:"TRACING_SERVICE_NAME" default:"circulation"`
}

type Shutdown func(ctx context.Context) error

// NewProvider installs a global tracer provider exporting over OTLP/HTTP.
// When tracing is disabled the otel no-op provider stays in place.
func NewProvider(ctx context.Context, cfg Config) (Shutdown, error) {
	if !cfg.Enable {
		return func(context.Context) error { return nil }, nil
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "otlptracehttp.New")
	}
	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
