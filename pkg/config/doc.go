// Package config loads typed configuration structs from environment
// variables.
//
// Structs declare their bindings with `env` field tags (parsed by
// caarlos0/env) and default values with `envDefault`. A .env file in the
// working directory is picked up automatically on first use, which keeps
// local development friction-free without affecting production, where the
// file simply does not exist.
//
// Each distinct struct type is parsed exactly once per process and cached,
// so packages can call Load from hot paths without re-reading the
// environment.
//
// # Usage
//
//	type Limits struct {
//		MaxDepth int `env:"INSPECT_MAX_DEPTH" envDefault:"4"`
//		MaxLen   int `env:"INSPECT_MAX_LEN" envDefault:"512"`
//	}
//
//	var limits Limits
//	config.MustLoad(&limits)
package config
