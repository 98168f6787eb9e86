/*
Package config loads registry wiring from YAML or JSON files.

# Overview

Applications that configure their shared-object registry from a file can
load Settings and turn them into registry options:

	settings, err := config.FromFile("registry.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	reg := singleton.New(settings.Options(logger)...)
	if err := settings.Apply(ctx, reg); err != nil {
	    log.Fatal(err)
	}

# File Format

	log_level: debug
	metrics: true
	tracing: false
	preload:
	  - type: "*db.Pool"
	    params: ["users"]
	  - type: "*cache.Client"

Preload entries name types enrolled in the registry's catalog; Apply
get-or-creates each of them at startup so first requests never pay
construction latency.
*/
package config
