package txnorm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/solwatch/internal/txnorm"

// Rejection reasons, used as the `reason` attribute of txnorm.rejected.
const (
	reasonMissingSignature    = "missing_signature"
	reasonInvalidSignature    = "invalid_signature_format"
	reasonClassificationError = "classification_failed"
)

// instruments are created against the global provider, which forwards to the
// SDK provider once telemetry.Init registers it.
var (
	normalizedCounter, _ = otel.Meter(instrumentationName).Int64Counter(
		"txnorm.normalized",
		metric.WithDescription("Transactions turned into canonical records"),
	)
	rejectedCounter, _ = otel.Meter(instrumentationName).Int64Counter(
		"txnorm.rejected",
		metric.WithDescription("Transactions dropped by the normalizer"),
	)
	extractionFailureCounter, _ = otel.Meter(instrumentationName).Int64Counter(
		"txnorm.extraction_failures",
		metric.WithDescription("Amount or mint extractions that fell back to defaults"),
	)
)

func recordNormalized(ctx context.Context, txType Type) {
	normalizedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(txType))))
}

func recordRejected(ctx context.Context, reason string) {
	rejectedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func recordExtractionFailure(ctx context.Context, extractor string) {
	extractionFailureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("extractor", extractor)))
}
