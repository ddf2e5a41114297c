package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-i2p/go-base32/lib/common/base32"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurrentConfigDefaultsRoundTrip verifies that all defaults set via
// setDefaults() are read back by CurrentConfig() under the same keys.
func TestCurrentConfigDefaultsRoundTrip(t *testing.T) {
	viper.Reset()
	setDefaults()

	cfg := CurrentConfig()
	defaults := Defaults()

	if cfg.Codec.Alphabet != defaults.Codec.Alphabet {
		t.Errorf("Codec.Alphabet mismatch: got %q, want %q", cfg.Codec.Alphabet, defaults.Codec.Alphabet)
	}
	if cfg.Output.Newline != defaults.Output.Newline {
		t.Errorf("Output.Newline mismatch: got %v, want %v", cfg.Output.Newline, defaults.Output.Newline)
	}
	if cfg.Input.TrimSpace != defaults.Input.TrimSpace {
		t.Errorf("Input.TrimSpace mismatch: got %v, want %v", cfg.Input.TrimSpace, defaults.Input.TrimSpace)
	}
}

// TestCurrentConfigViperOverrides verifies every field can be overridden through viper.
func TestCurrentConfigViperOverrides(t *testing.T) {
	viper.Reset()
	setDefaults()

	viper.Set("codec.alphabet", "rfc4648")
	viper.Set("output.newline", false)
	viper.Set("input.trim_space", false)

	cfg := CurrentConfig()

	if cfg.Codec.Alphabet != "rfc4648" {
		t.Errorf("Codec.Alphabet override failed: got %q, want rfc4648", cfg.Codec.Alphabet)
	}
	if cfg.Output.Newline {
		t.Error("Output.Newline override failed: got true, want false")
	}
	if cfg.Input.TrimSpace {
		t.Error("Input.TrimSpace override failed: got true, want false")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("Validate(Defaults()) = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		wantErr  bool
	}{
		{"built-in name", "natarea", false},
		{"built-in name any case", "RFC4648", false},
		{"literal alphabet", "abcdefghijklmnopqrstuvwxyz234567", false},
		{"empty", "", true},
		{"unknown name", "base58", true},
		{"duplicate characters", strings.Repeat("AB", 16), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Codec.Alphabet = tt.alphabet
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "configuration validation failed: ") {
				t.Errorf("unexpected error text: %v", err)
			}
		})
	}
}

func TestCodecConfigNewCodec(t *testing.T) {
	c, err := CodecConfig{Alphabet: "exthex"}.NewCodec()
	require.NoError(t, err)
	assert.Equal(t, base32.ExtHexAlphabet, c.Alphabet())

	_, err = CodecConfig{Alphabet: "too short"}.NewCodec()
	assert.ErrorIs(t, err, base32.ErrInvalidAlphabet)
}

func TestInitConfigReadsExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(func() {
		CfgFile = ""
		viper.Reset()
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "codec:\n  alphabet: natarea\noutput:\n  newline: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	CfgFile = path
	require.NoError(t, InitConfig())

	cfg := CurrentConfig()
	assert.Equal(t, "natarea", cfg.Codec.Alphabet)
	assert.False(t, cfg.Output.Newline)
	// Missing keys fall back to defaults.
	assert.True(t, cfg.Input.TrimSpace)
	assert.Equal(t, path, viper.ConfigFileUsed())
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(func() {
		CfgFile = ""
		viper.Reset()
	})

	CfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	assert.Error(t, InitConfig())
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Cleanup(viper.Reset)

	CfgFile = ""
	require.NoError(t, InitConfig())

	created := filepath.Join(home, GOBASE32_BASE_DIR, "config.yaml")
	data, err := os.ReadFile(created)
	require.NoError(t, err, "default config file should be created")
	assert.Contains(t, string(data), "alphabet: default")
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(func() {
		CfgFile = ""
		viper.Reset()
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  alphabet: default\n"), 0o644))
	t.Setenv("GO_BASE32_CODEC_ALPHABET", "exthex")

	CfgFile = path
	require.NoError(t, InitConfig())
	assert.Equal(t, "exthex", CurrentConfig().Codec.Alphabet)
}
