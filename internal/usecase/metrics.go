package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	endpointMatches      = "matches"
	endpointMatchDetails = "matchDetails"
)

type decisionRecorder struct {
	counter metric.Int64Counter
}

func newDecisionRecorder(meter metric.Meter) decisionRecorder {
	if meter == nil {
		meter = otel.Meter("soccer-stats/internal/usecase")
	}
	counter, err := meter.Int64Counter(
		"matches.source.decisions",
		metric.WithDescription("Producer chosen per request, by endpoint and reason."),
	)
	if err != nil {
		counter, _ = noop.NewMeterProvider().Meter("").Int64Counter("matches.source.decisions")
	}
	return decisionRecorder{counter: counter}
}

func (r decisionRecorder) record(ctx context.Context, endpoint string, d Decision) {
	r.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("source", string(d.Source)),
		attribute.String("reason", string(d.Reason)),
	))
}
