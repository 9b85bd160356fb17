// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The returned configuration
// is validated once at process start and treated as immutable afterwards;
// components receive the sub-configuration they need explicitly instead of
// reaching into globals.
package config
