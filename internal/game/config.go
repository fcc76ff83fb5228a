package game

import "go.opentelemetry.io/otel/trace"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Tracer receives game lifecycle spans. Nil uses the global provider.
	Tracer trace.Tracer
}
