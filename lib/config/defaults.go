package config

import (
	"github.com/go-i2p/go-base32/lib/common/base32"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Config contains every setting of the go-base32 command.
type Config struct {
	// Codec selects the alphabet
	Codec CodecConfig

	// Output controls how encoded text is written
	Output OutputConfig

	// Input controls how decode input is read
	Input InputConfig
}

// CodecConfig contains codec settings
type CodecConfig struct {
	// Alphabet is a built-in alphabet name or a literal 32-character alphabet
	// Default: "default"
	Alphabet string
}

// OutputConfig contains output settings
type OutputConfig struct {
	// Newline appends "\n" after encoded output
	// Default: true
	Newline bool
}

// InputConfig contains input settings
type InputConfig struct {
	// TrimSpace strips leading and trailing whitespace before decoding
	// Default: true
	TrimSpace bool
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		Codec: CodecConfig{
			Alphabet: "default",
		},
		Output: OutputConfig{
			Newline: true,
		},
		Input: InputConfig{
			TrimSpace: true,
		},
	}
}

// NewCodec builds the codec selected by the configured alphabet.
func (c CodecConfig) NewCodec() (*base32.Codec, error) {
	alphabet, err := base32.ResolveAlphabet(c.Alphabet)
	if err != nil {
		return nil, oops.Wrapf(err, "codec.alphabet %q", c.Alphabet)
	}
	return base32.NewCodec(alphabet)
}

// Validate checks if the provided configuration values are usable.
// Returns an error describing the first invalid value found.
func Validate(cfg Config) error {
	log.WithFields(logger.Fields{
		"at":     "config.Validate",
		"reason": "verification_requested",
	}).Debug("validating configuration")

	if cfg.Codec.Alphabet == "" {
		return newValidationError("Codec.Alphabet must not be empty")
	}
	if _, err := base32.ResolveAlphabet(cfg.Codec.Alphabet); err != nil {
		log.WithError(err).WithField("alphabet", cfg.Codec.Alphabet).Error("Invalid codec configuration")
		return newValidationError("Codec.Alphabet must name a built-in alphabet or hold 32 distinct ASCII characters: " + err.Error())
	}

	log.WithFields(logger.Fields{
		"at":     "config.Validate",
		"reason": "validation_passed",
	}).Debug("configuration validated successfully")
	return nil
}

// validationError is returned when configuration validation fails
type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
