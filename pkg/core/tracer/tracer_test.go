package tracer

import (
	"context"
	"testing"

	"shortgate/pkg/core/consts"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTracer_StoresTraceIDInContext(t *testing.T) {
	ctx, traceID, finish := NewSimpleTracer().StartTrace(context.Background(), "s/abc")
	defer finish()

	assert.NotEmpty(t, traceID)
	assert.Equal(t, traceID, ctx.Value(consts.TraceKey))
}

func TestSimpleTracer_KeepsParentTraceID(t *testing.T) {
	_, traceID, _, err := NewSimpleTracer().StartTraceWithParent(context.Background(), "s/abc", "parent-1")

	assert.NoError(t, err)
	assert.Equal(t, "parent-1", traceID)
}
