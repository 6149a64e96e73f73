// Package telemetry exports navigation transitions as OpenTelemetry spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"aurora/internal/site"
)

const instrumentationName = "aurora/nav"

// Attribute keys recorded on navigation spans.
const (
	AttrPageFrom = attribute.Key("aurora.page.from")
	AttrPageTo   = attribute.Key("aurora.page.to")
	AttrMenuOpen = attribute.Key("aurora.menu.open")
)

// Tracer records one span per navigation transition.
// A nil *Tracer is valid and records nothing.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewTracer creates an OTLP/HTTP tracer for endpoint.
// Returns nil, nil when endpoint is empty (disabled).
func NewTracer(ctx context.Context, endpoint, serviceName string) (*Tracer, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newTracer(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

func newTracer(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// PageSelected implements nav.Observer.
func (t *Tracer) PageSelected(from, to site.PageID) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "nav.select_page")
	span.SetAttributes(
		AttrPageFrom.String(from.Slug()),
		AttrPageTo.String(to.Slug()),
	)
	span.End()
}

// MenuToggled implements nav.Observer.
func (t *Tracer) MenuToggled(open bool) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "nav.toggle_menu")
	span.SetAttributes(AttrMenuOpen.Bool(open))
	span.End()
}

// Shutdown flushes pending spans and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
