// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otelslog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type record struct {
	Message string `json:"msg"`
	Path    string `json:"path"`
	OTel    struct {
		TraceID string `json:"trace_id"`
		SpanID  string `json:"span_id"`
	} `json:"otel"`
}

func TestHandler_Handle(t *testing.T) {
	t.Run("will not add trace id and span id", func(t *testing.T) {
		t.Run("if the span context is invalid", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))

			log.InfoContext(context.Background(), "test")

			var r record
			err := json.Unmarshal(buf.Bytes(), &r)
			require.NoError(t, err)
			require.Equal(t, "test", r.Message)
			require.Empty(t, r.OTel.TraceID)
			require.Empty(t, r.OTel.SpanID)
		})
	})

	t.Run("will add trace id and span id", func(t *testing.T) {
		t.Run("if the span context is valid", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))

			tp := sdktrace.NewTracerProvider()
			defer tp.Shutdown(context.Background())

			ctx, span := tp.Tracer("otelslog").Start(context.Background(), "lookup")
			log.InfoContext(ctx, "test")
			span.End()

			var r record
			err := json.Unmarshal(buf.Bytes(), &r)
			require.NoError(t, err)
			require.Empty(t, r.Path)
			require.Equal(t, span.SpanContext().TraceID().String(), r.OTel.TraceID)
			require.Equal(t, span.SpanContext().SpanID().String(), r.OTel.SpanID)
		})
	})
}

func TestHandler_Handle_Path(t *testing.T) {
	t.Run("will add the config path", func(t *testing.T) {
		t.Run("if the context carries one without a span", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))

			ctx := ContextWithPath(context.Background(), "server.port")
			log.InfoContext(ctx, "test")

			var r record
			err := json.Unmarshal(buf.Bytes(), &r)
			require.NoError(t, err)
			require.Equal(t, "server.port", r.Path)
			require.Empty(t, r.OTel.TraceID)
			require.Empty(t, r.OTel.SpanID)
		})

		t.Run("alongside the trace id and span id", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{})).With(slog.String("source", "file"))

			tp := sdktrace.NewTracerProvider()
			defer tp.Shutdown(context.Background())

			ctx, span := tp.Tracer("otelslog").Start(context.Background(), "lookup")
			log.InfoContext(ContextWithPath(ctx, "hosts[0]"), "test")
			span.End()

			var r record
			err := json.Unmarshal(buf.Bytes(), &r)
			require.NoError(t, err)
			require.Equal(t, "hosts[0]", r.Path)
			require.Equal(t, span.SpanContext().TraceID().String(), r.OTel.TraceID)
			require.Equal(t, span.SpanContext().SpanID().String(), r.OTel.SpanID)
		})
	})
}

func TestPathFromContext(t *testing.T) {
	t.Run("will report no path", func(t *testing.T) {
		t.Run("if none was set", func(t *testing.T) {
			_, ok := PathFromContext(context.Background())
			require.False(t, ok)
		})
	})
}
