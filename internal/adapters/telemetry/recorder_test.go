package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rok.dev/rok/internal/adapters/telemetry"
)

func TestRecorder_RecordAndComplete(t *testing.T) {
	rec := telemetry.New()

	_, vertex := rec.Record(context.Background(), "install lpeg 1.1.0")
	require.NotNil(t, vertex)

	_, err := vertex.Stdout().Write([]byte("unpacking rock\n"))
	assert.NoError(t, err)

	vertex.Complete(nil)
	assert.NoError(t, rec.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	rec := telemetry.New()

	_, vertex := rec.Record(context.Background(), "install luafilesystem 1.8.0")
	vertex.Cached()
	vertex.Complete(nil)

	assert.NoError(t, rec.Close())
}

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx := context.Background()
	out, vertex := rec.Record(ctx, "anything")
	assert.Equal(t, ctx, out)

	_, err := vertex.Stdout().Write([]byte("discarded"))
	assert.NoError(t, err)

	vertex.Complete(nil)
	vertex.Cached()
	assert.NoError(t, rec.Close())
}
