package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lbussy/portlock/pkg/errors"
)

const (
	// DefaultPort is the loopback port claimed when none is specified.
	// High enough to never need privileges and outside the common
	// ephemeral ranges.
	DefaultPort = 50000
)

// Config holds all portlock application settings
type Config struct {
	// Lock configuration
	Port int

	// Behavior
	Wait bool // Hold the lock until interrupted instead of exiting after the check

	// User experience
	Verbose bool

	// Special flags
	Version bool

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Port:    DefaultPort,
		Wait:    false,
		Verbose: true,
		Version: false,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromEnvironment updates config from environment variables
func (c *Config) LoadFromEnvironment() {
	c.Port = getEnvInt("PORTLOCK_PORT", c.Port)
	c.Wait = getEnvBool("PORTLOCK_WAIT", c.Wait)
	c.Verbose = getEnvBool("PORTLOCK_VERBOSE", c.Verbose)
}

// SetupFlags sets up command-line flags to override config values
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	// Save original value for the inverted flag (for CLI ergonomics)
	origVerbose := c.Verbose

	fs.IntVar(&c.Port, "port", c.Port, "Loopback port used as the instance lock")
	fs.BoolVar(&c.Wait, "wait", c.Wait, "Hold the lock until interrupted")
	fs.BoolVar(&c.Verbose, "quiet", !origVerbose, "Only report errors")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version information and exit")
}

// ParseFlags parses the command-line arguments and updates the config
func (c *Config) ParseFlags() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	c.SetupFlags(fs)

	var appArgs []string
	// Skip the program name (os.Args[0])
	if len(os.Args) > 1 {
		appArgs = os.Args[1:]
	}

	if err := fs.Parse(appArgs); err != nil {
		return errors.NewConfigError("flags", nil,
			errors.Wrap(errors.ErrInvalidConfiguration,
				fmt.Sprintf("failed to parse command-line arguments: %v", err)))
	}

	// Invert the boolean flag here, after parsing (for CLI ergonomics):
	// -quiet means Verbose=false
	c.Verbose = !c.Verbose

	return nil
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.Port < 1 || c.Port > 65535 {
		err := fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
		return errors.NewConfigError("port", c.Port,
			errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	return nil
}

// getEnvInt returns an environment variable as int or a default value
func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		valueLower := strings.ToLower(valueStr)
		if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
			return true
		}
		if valueLower == "false" || valueLower == "0" || valueLower == "no" {
			return false
		}
		// For any other value, fall back to default
	}
	return defaultValue
}
