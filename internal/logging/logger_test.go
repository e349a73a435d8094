package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCtx_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	Ctx(context.Background()).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestCtx_UsesRequestLogger(t *testing.T) {
	var global, scoped bytes.Buffer
	SetLogger(zerolog.New(&global))
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	ctx := ContextWithLogger(context.Background(), zerolog.New(&scoped).With().Str("request_id", "abc").Logger())
	Ctx(ctx).Info().Msg("scoped")

	assert.Empty(t, global.String())
	assert.Contains(t, scoped.String(), `"request_id":"abc"`)
}

func TestRequestID_RoundTrip(t *testing.T) {
	id := NewRequestID()
	assert.Len(t, id, 36)

	ctx := ContextWithRequestID(context.Background(), id)
	assert.Equal(t, id, RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}
