package singleton

import (
	"log/slog"

	"github.com/randalmurphal/singleton/pkg/singleton/construct"
	"github.com/randalmurphal/singleton/pkg/singleton/observability"
)

// registryConfig holds configuration for a registry instance.
type registryConfig struct {
	constructor Constructor
	resolver    Resolver
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
}

// defaultRegistryConfig returns the default registry configuration:
// a fresh catalog for construction and resolution, no logging, and no-op
// metrics and tracing.
func defaultRegistryConfig() registryConfig {
	catalog := construct.NewCatalog()
	return registryConfig{
		constructor: catalog,
		resolver:    catalog,
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
	}
}

// Option configures a registry at construction.
type Option func(*registryConfig)

// WithCatalog uses catalog for both construction and type-name resolution.
//
// Example:
//
//	catalog := construct.NewCatalog()
//	construct.Register(catalog, newClient)
//	reg := singleton.New(singleton.WithCatalog(catalog))
func WithCatalog(catalog *construct.Catalog) Option {
	return func(c *registryConfig) {
		if catalog != nil {
			c.constructor = catalog
			c.resolver = catalog
		}
	}
}

// WithConstructor sets the construction collaborator used by
// GetOrCreateType and GetOrCreateNamed.
func WithConstructor(ctor Constructor) Option {
	return func(c *registryConfig) {
		if ctor != nil {
			c.constructor = ctor
		}
	}
}

// WithResolver sets the type-name resolution collaborator used by
// GetOrCreateNamed.
func WithResolver(res Resolver) Option {
	return func(c *registryConfig) {
		if res != nil {
			c.resolver = res
		}
	}
}

// WithLogger enables structured logging of registry activity.
// Errors are never logged; they are propagated to callers.
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Use
// observability.NewMetricsRecorder() for OpenTelemetry metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *registryConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing sets the span manager. Use observability.NewSpanManager()
// for OpenTelemetry tracing.
func WithTracing(s observability.SpanManager) Option {
	return func(c *registryConfig) {
		if s != nil {
			c.spans = s
		}
	}
}
