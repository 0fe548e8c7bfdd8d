package otel_test

import (
	"context"
	"errors"
	"fitstudio/config"
	"fitstudio/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutEndpointIsNoop(t *testing.T) {
	cfg := &config.Config{}

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.booking.Book")
	require.NotNil(t, ctx)
	require.NotNil(t, scope)

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"class_id":  int64(1),
			"available": 3,
			"email":     "a@x.com",
			"ok":        true,
			"tags":      []string{"a"},
		})
		scope.AddEvent("booked")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
		scope.End()
	})

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
