package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbussy/portlock/pkg/errors"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := New()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.Wait)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Version)
	assert.Equal(t, "dev", cfg.VersionInfo.Version)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORTLOCK_PORT", "50123")
	t.Setenv("PORTLOCK_WAIT", "true")
	t.Setenv("PORTLOCK_VERBOSE", "no")

	cfg := New()
	cfg.LoadFromEnvironment()

	assert.Equal(t, 50123, cfg.Port)
	assert.True(t, cfg.Wait)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("PORTLOCK_PORT", "not-a-port")
	t.Setenv("PORTLOCK_WAIT", "maybe")

	cfg := New()
	cfg.LoadFromEnvironment()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.Wait)
}

func TestSetupFlags_ParsesArguments(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args        []string
		wantPort    int
		wantWait    bool
		wantVerbose bool
	}{
		"NoArguments": {
			args:        nil,
			wantPort:    DefaultPort,
			wantWait:    false,
			wantVerbose: true,
		},
		"PortAndWait": {
			args:        []string{"-port", "50001", "-wait"},
			wantPort:    50001,
			wantWait:    true,
			wantVerbose: true,
		},
		"Quiet": {
			args:        []string{"-quiet"},
			wantPort:    DefaultPort,
			wantVerbose: false,
		},
	}

	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := New()
			fs := flag.NewFlagSet("portlock", flag.ContinueOnError)
			cfg.SetupFlags(fs)
			require.NoError(t, fs.Parse(test.args))

			// ParseFlags inverts the quiet flag after parsing; mirror it here
			cfg.Verbose = !cfg.Verbose

			assert.Equal(t, test.wantPort, cfg.Port)
			assert.Equal(t, test.wantWait, cfg.Wait)
			assert.Equal(t, test.wantVerbose, cfg.Verbose)
		})
	}
}

func TestFinalize_ValidatesPort(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		port      int
		expectErr bool
	}{
		"ValidHighPort":  {port: 50000, expectErr: false},
		"ValidLowPort":   {port: 1, expectErr: false},
		"ValidMaxPort":   {port: 65535, expectErr: false},
		"ZeroPort":       {port: 0, expectErr: true},
		"NegativePort":   {port: -1, expectErr: true},
		"PortOutOfRange": {port: 65536, expectErr: true},
	}

	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := New()
			cfg.Port = test.port
			err := cfg.Finalize()

			if test.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidConfiguration))

				var configErr *errors.ConfigError
				require.True(t, errors.As(err, &configErr))
				assert.Equal(t, "port", configErr.Parameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
