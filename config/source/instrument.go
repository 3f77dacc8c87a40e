// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"log/slog"

	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"
	"github.com/z5labs/typedconfig/internal/noop"
	"github.com/z5labs/typedconfig/internal/otelslog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/typedconfig/config/source"

type instrumentOptions struct {
	name       string
	ctx        context.Context
	logHandler slog.Handler
	tp         trace.TracerProvider
	mp         metric.MeterProvider
}

// InstrumentOption configures Instrument.
type InstrumentOption func(*instrumentOptions)

// Name labels every log record and span with the given source name.
func Name(name string) InstrumentOption {
	return func(io *instrumentOptions) {
		io.name = name
	}
}

// LogHandler sets the slog.Handler lookups are logged to, at debug level.
// By default nothing is logged.
func LogHandler(h slog.Handler) InstrumentOption {
	return func(io *instrumentOptions) {
		io.logHandler = h
	}
}

// TracerProvider overrides the global OpenTelemetry TracerProvider.
func TracerProvider(tp trace.TracerProvider) InstrumentOption {
	return func(io *instrumentOptions) {
		io.tp = tp
	}
}

// MeterProvider overrides the global OpenTelemetry MeterProvider.
func MeterProvider(mp metric.MeterProvider) InstrumentOption {
	return func(io *instrumentOptions) {
		io.mp = mp
	}
}

// Context sets the parent context of every lookup span.
func Context(ctx context.Context) InstrumentOption {
	return func(io *instrumentOptions) {
		io.ctx = ctx
	}
}

type instrumented struct {
	src     config.Source
	name    string
	ctx     context.Context
	log     *slog.Logger
	tracer  trace.Tracer
	lookups metric.Int64Counter
}

// Instrument wraps src so that every lookup is recorded as a span, counted
// by the config.source.lookups metric and logged. Raw values are never
// recorded, only whether one was found.
func Instrument(src config.Source, opts ...InstrumentOption) config.Source {
	io := &instrumentOptions{
		ctx:        context.Background(),
		logHandler: noop.LogHandler{},
		tp:         otel.GetTracerProvider(),
		mp:         otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(io)
	}

	log := otelslog.New(io.logHandler)
	if io.name != "" {
		log = log.With(slog.String("source", io.name))
	}

	var lookups metric.Int64Counter = noopmetric.Int64Counter{}
	counter, err := io.mp.Meter(instrumentationName).Int64Counter(
		"config.source.lookups",
		metric.WithDescription("Number of config value lookups"),
	)
	if err == nil {
		lookups = counter
	} else {
		log.Warn("failed to create lookup counter", slog.Any("error", err))
	}

	return &instrumented{
		src:     src,
		name:    io.name,
		ctx:     io.ctx,
		log:     log,
		tracer:  io.tp.Tracer(instrumentationName),
		lookups: lookups,
	}
}

var _ config.ListSource = (*instrumented)(nil)

func (s *instrumented) Lookup(path key.Path) (string, bool) {
	var v string
	found := s.record(path, func() bool {
		var ok bool
		v, ok = s.src.Lookup(path)
		return ok
	})
	return v, found
}

func (s *instrumented) LookupList(path key.Path) (string, []string, bool) {
	var (
		raw   string
		elems []string
	)
	found := s.record(path, func() bool {
		ls, ok := s.src.(config.ListSource)
		if !ok {
			raw, ok = s.src.Lookup(path)
			return ok
		}
		raw, elems, ok = ls.LookupList(path)
		return ok
	})
	return raw, elems, found
}

func (s *instrumented) RenderPath(path key.Path) string {
	return s.src.RenderPath(path)
}

func (s *instrumented) record(path key.Path, lookup func() bool) bool {
	rendered := s.src.RenderPath(path)

	attrs := []attribute.KeyValue{attribute.String("config.path", rendered)}
	if s.name != "" {
		attrs = append(attrs, attribute.String("config.source", s.name))
	}

	spanCtx, span := s.tracer.Start(s.ctx, "Source.Lookup", trace.WithAttributes(attrs...))
	defer span.End()

	found := lookup()

	attrs = append(attrs, attribute.Bool("config.found", found))
	span.SetAttributes(attrs[len(attrs)-1])
	s.lookups.Add(spanCtx, 1, metric.WithAttributes(attrs...))

	s.log.DebugContext(
		otelslog.ContextWithPath(spanCtx, rendered),
		"looked up config value",
		slog.Bool("found", found),
	)
	return found
}
