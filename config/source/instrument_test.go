// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestInstrument(t *testing.T) {
	m := Map{
		"db": map[string]any{
			"password": "hunter2",
		},
	}

	t.Run("will not change lookups or rendering", func(t *testing.T) {
		src := Instrument(m)

		v, found := src.Lookup(key.Parse("db.password"))
		require.True(t, found)
		require.Equal(t, "hunter2", v)

		_, found = src.Lookup(key.Parse("db.user"))
		require.False(t, found)

		require.Equal(t, "db.user", src.RenderPath(key.Parse("db.user")))
	})

	t.Run("will record a span per lookup", func(t *testing.T) {
		sr := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
		defer tp.Shutdown(context.Background())

		src := Instrument(m, TracerProvider(tp), Name("defaults"))
		src.Lookup(key.Parse("db.password"))
		src.Lookup(key.Parse("db.user"))

		spans := sr.Ended()
		require.Len(t, spans, 2)

		testCases := []struct {
			Path  string
			Found bool
		}{
			{Path: "db.password", Found: true},
			{Path: "db.user", Found: false},
		}
		for i, testCase := range testCases {
			require.Equal(t, "Source.Lookup", spans[i].Name())

			attrs := spanAttrs(spans[i])
			require.Equal(t, testCase.Path, attrs["config.path"].AsString())
			require.Equal(t, testCase.Found, attrs["config.found"].AsBool())
			require.Equal(t, "defaults", attrs["config.source"].AsString())
		}
	})

	t.Run("will count lookups", func(t *testing.T) {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer mp.Shutdown(context.Background())

		src := Instrument(m, MeterProvider(mp))
		src.Lookup(key.Parse("db.password"))
		src.Lookup(key.Parse("db.password"))
		src.Lookup(key.Parse("db.user"))

		var rm metricdata.ResourceMetrics
		err := reader.Collect(context.Background(), &rm)
		require.NoError(t, err)
		require.Len(t, rm.ScopeMetrics, 1)
		require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

		lookups := rm.ScopeMetrics[0].Metrics[0]
		require.Equal(t, "config.source.lookups", lookups.Name)

		sum, ok := lookups.Data.(metricdata.Sum[int64])
		require.True(t, ok)

		counts := make(map[string]int64)
		for _, dp := range sum.DataPoints {
			path, _ := dp.Attributes.Value("config.path")
			found, _ := dp.Attributes.Value("config.found")
			counts[path.AsString()+"/"+found.Emit()] = dp.Value
		}
		require.Equal(t, map[string]int64{
			"db.password/true": 2,
			"db.user/false":    1,
		}, counts)
	})

	t.Run("will parent spans to the given context", func(t *testing.T) {
		sr := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
		defer tp.Shutdown(context.Background())

		ctx, parent := tp.Tracer("test").Start(context.Background(), "load")
		src := Instrument(m, TracerProvider(tp), Context(ctx))
		src.Lookup(key.Parse("db.password"))
		parent.End()

		spans := sr.Ended()
		require.Len(t, spans, 2)
		require.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
		require.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	})

	t.Run("will log lookups without their values", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

		src := Instrument(m, LogHandler(h), Name("defaults"))
		src.Lookup(key.Parse("db.password"))

		require.NotContains(t, buf.String(), "hunter2")

		var record struct {
			Message string `json:"msg"`
			Source  string `json:"source"`
			Path    string `json:"path"`
			Found   bool   `json:"found"`
		}
		err := json.Unmarshal(buf.Bytes(), &record)
		require.NoError(t, err)
		require.Equal(t, "looked up config value", record.Message)
		require.Equal(t, "defaults", record.Source)
		require.Equal(t, "db.password", record.Path)
		require.True(t, record.Found)
	})

	t.Run("will be usable by resolvers", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

		src := Instrument(Map{"hosts": "a,b"}, LogHandler(h))
		hosts := config.Resolve(src, key.Parse("hosts"), config.Slice(config.Scalar[string](config.String)), config.None[[]string]())

		require.Equal(t, []string{"a", "b"}, hosts.OrElse(nil))
		require.Equal(t, 1, strings.Count(buf.String(), "looked up config value"))
	})
	t.Run("will pass stored list elements through", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

		src := Instrument(Map{"hosts": []any{"a,b", " c"}}, LogHandler(h))
		hosts := config.Resolve(src, key.Parse("hosts"), config.Slice(config.Scalar[string](config.String)), config.None[[]string]())

		require.Equal(t, []string{"a,b", " c"}, hosts.OrElse(nil))
		require.Equal(t, 1, strings.Count(buf.String(), "looked up config value"))
		require.NotContains(t, buf.String(), "a,b")
	})
}
