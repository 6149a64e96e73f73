package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"aurora/internal/nav"
	"aurora/internal/site"
)

func newTestTracer(t *testing.T) (*Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	tr := newTracer(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)))
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr, exp
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestNewTracer_DisabledWithoutEndpoint(t *testing.T) {
	tr, err := NewTracer(context.Background(), "", "aurora")
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestNewTracer_Enabled(t *testing.T) {
	tr, err := NewTracer(context.Background(), "localhost:4318", "aurora")
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestTracer_NilIsNoop(t *testing.T) {
	var tr *Tracer
	tr.PageSelected(site.Home, site.AboutMe)
	tr.MenuToggled(true)
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestTracer_RecordsTransitions(t *testing.T) {
	tr, exp := newTestTracer(t)

	s := nav.New(nil)
	s.Observe(tr)
	s.ToggleMenu()
	s.SelectPage(site.ClinicalPsychology)

	spans := exp.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, "nav.toggle_menu", spans[0].Name)
	assert.Equal(t, true, attrMap(spans[0].Attributes)[AttrMenuOpen].AsBool())

	assert.Equal(t, "nav.select_page", spans[1].Name)
	attrs := attrMap(spans[1].Attributes)
	assert.Equal(t, "home", attrs[AttrPageFrom].AsString())
	assert.Equal(t, "clinica", attrs[AttrPageTo].AsString())
}
