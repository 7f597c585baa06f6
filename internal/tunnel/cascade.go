package tunnel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "guestchat/backend/internal/tunnel"

// ErrNoStrategies is returned by an empty cascade.
var ErrNoStrategies = errors.New("tunnel: no delivery strategies configured")

// Cascade tries its strategies in order and returns the first success. A
// failed strategy is never retried; the next one takes its place.
type Cascade struct {
	strategies []Strategy

	tracer   trace.Tracer
	attempts metric.Int64Counter
	duration metric.Float64Histogram
}

func NewCascade(strategies ...Strategy) *Cascade {
	meter := otel.Meter(instrumentationName)

	attempts, err := meter.Int64Counter(
		"tunnel.strategy.attempts",
		metric.WithDescription("Delivery attempts per strategy and outcome"),
	)
	if err != nil {
		slog.Warn("Failed to create tunnel attempts counter", "error", err)
	}
	duration, err := meter.Float64Histogram(
		"tunnel.strategy.duration",
		metric.WithDescription("Delivery attempt duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		slog.Warn("Failed to create tunnel duration histogram", "error", err)
	}

	return &Cascade{
		strategies: strategies,
		tracer:     otel.Tracer(instrumentationName),
		attempts:   attempts,
		duration:   duration,
	}
}

// Strategies returns the strategy names in the order they are tried.
func (c *Cascade) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// Send delivers req through the first strategy that succeeds. When all fail,
// the joined errors are returned; errors.As finds the individual
// *TransportError values.
func (c *Cascade) Send(ctx context.Context, req *Request, onChunk func(text string)) (*Result, error) {
	if len(c.strategies) == 0 {
		return nil, ErrNoStrategies
	}

	var errs []error
	for _, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := c.attempt(ctx, strategy, req, onChunk)
		if err == nil {
			return res, nil
		}
		slog.Warn("Tunnel strategy failed", "strategy", strategy.Name(), "message_id", req.TargetMessageID, "error", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (c *Cascade) attempt(ctx context.Context, strategy Strategy, req *Request, onChunk func(text string)) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "tunnel."+strategy.Name(),
		trace.WithAttributes(attribute.String("tunnel.strategy", strategy.Name())))
	defer span.End()

	start := time.Now()
	res, err := strategy.Send(ctx, req, onChunk)
	elapsed := float64(time.Since(start).Milliseconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var terr *TransportError
		if errors.As(err, &terr) {
			span.SetAttributes(attribute.String("tunnel.error_kind", string(terr.Kind)))
		}
	} else {
		span.SetAttributes(
			attribute.Bool("tunnel.synthetic", res.Synthetic),
			attribute.Bool("tunnel.opaque", res.Opaque),
		)
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy.Name()),
		attribute.String("outcome", outcome),
	)
	if c.attempts != nil {
		c.attempts.Add(ctx, 1, attrs)
	}
	if c.duration != nil {
		c.duration.Record(ctx, elapsed, attrs)
	}
	return res, err
}
