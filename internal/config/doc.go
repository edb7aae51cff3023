// Package config provides configuration loading, merging, and validation
// for the vault server and the vault client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (server only; the client's flags belong to its CLI)
//  3. Config file, JSON or TOML chosen by extension
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
