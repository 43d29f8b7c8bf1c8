// Package config provides configuration handling for the portlock binary.
//
// This package manages all configuration parameters for portlock, including
// parsing command-line flags, loading environment variables, and providing
// default values. It ensures configuration values are consistent and valid
// before they are used by the application. The library packages under pkg/
// do not depend on it; the lock takes its port as a plain argument.
//
// # Core Components
//
// - Config: Main configuration type that holds all portlock settings
// - VersionInfo: Type for version, commit, and build date information
//
// # Configuration Sources
//
// Configuration values are loaded with the following precedence:
//
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Default values (lowest priority)
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	PORTLOCK_PORT      Loopback port used as the instance lock (default: 50000)
//	PORTLOCK_WAIT      Hold the lock until interrupted (default: false)
//	PORTLOCK_VERBOSE   Whether to show informational messages (default: true)
package config
