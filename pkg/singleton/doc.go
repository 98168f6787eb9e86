/*
Package singleton provides a concurrent keyed object registry: one instance
per key, constructed lazily on first request and shared by every caller
thereafter.

# Overview

A Registry maps string keys to constructed values. GetOrCreate returns the
value already held for a key, or invokes a factory to construct one and
installs it. Keys can be arbitrary strings, or derived from a Go type plus
construction parameters, so the same registry can hold one instance per
(type, parameters) pair.

The library is a building block for shared, expensive-to-construct objects
(connection pools, compiled templates, clients) with:
  - An explicit, injectable Registry with no hidden package globals
  - Pluggable construction and type resolution via a construct.Catalog
  - OpenTelemetry integration for observability

# Basic Usage

Create a registry and request values by key:

	reg := singleton.New()

	pool, err := singleton.GetOrCreate(ctx, reg, "users_db",
	    func(ctx context.Context) (*Pool, error) {
	        return NewPool(ctx, "users_db")
	    })

The first call constructs the pool; every later call for "users_db" returns
the same instance without invoking the factory.

# Type-Keyed Instances

Enroll types in a construct.Catalog and request instances by type or by name:

	catalog := construct.NewCatalog()
	construct.Register(catalog, func(params ...any) (*Greeter, error) {
	    return &Greeter{Prefix: fmt.Sprint(params...)}, nil
	})

	reg := singleton.New(singleton.WithCatalog(catalog))

	g, err := reg.GetOrCreateType(ctx, construct.TypeOf[*Greeter]())
	same, err := reg.GetOrCreateNamed(ctx, "*main.Greeter")

Instances are keyed per (type, parameters): requesting *Greeter with
parameter "a" and with parameter "b" yields two distinct instances.

# Concurrency

All Registry methods are safe for concurrent use. GetOrCreate deliberately
does not hold any lock while the factory runs: two callers racing on a
never-seen key may both construct a value, but only the first install wins
and both callers return the winning instance. The losing value is discarded.
This trades an occasional duplicate construction for the freedom to use
factories that are slow, or that reentrantly read or write the registry,
without deadlocking.

A failed factory leaves its key absent; the next GetOrCreate for that key
starts fresh.

# Lifecycle

Entries live until removed. Remove deletes a single entry, Clear drops them
all; there is no expiry and no eviction. The registry holds no persistent
state; it is process-lifetime scoped.
*/
package singleton
