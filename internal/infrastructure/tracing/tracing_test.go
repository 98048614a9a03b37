package tracing_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/tracing"
)

func TestInit_ExportaSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := tracing.Init(true, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "cart.AddProduct")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "cart.AddProduct")
}

func TestInit_Deshabilitado(t *testing.T) {
	shutdown, err := tracing.Init(false, nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
