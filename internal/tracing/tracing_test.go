package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_StdoutExporterWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	shutdown, err := Setup(ctx, Options{ServiceName: "test", SampleRatio: 1, Writer: &buf})
	require.NoError(t, err)

	_, span := Tracer("tracing_test").Start(ctx, "replace-line-items")
	span.End()

	require.NoError(t, shutdown(ctx))
	assert.Contains(t, buf.String(), "replace-line-items")
}
