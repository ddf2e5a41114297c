package config

import (
	"path/filepath"
	"strings"

	"github.com/go-i2p/go-base32/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const (
	GOBASE32_BASE_DIR = ".go-base32"
	envPrefix         = "GO_BASE32"
)

// InitConfig points viper at the config file, loads defaults and reads the file.
func InitConfig() error {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildBase32DirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	return handleConfigFile()
}

func setDefaults() {
	defaults := Defaults()

	viper.SetDefault("codec.alphabet", defaults.Codec.Alphabet)
	viper.SetDefault("output.newline", defaults.Output.Newline)
	viper.SetDefault("input.trim_space", defaults.Input.TrimSpace)
}

// CurrentConfig builds a Config from the current viper settings.
func CurrentConfig() *Config {
	return &Config{
		Codec: CodecConfig{
			Alphabet: viper.GetString("codec.alphabet"),
		},
		Output: OutputConfig{
			Newline: viper.GetBool("output.newline"),
		},
		Input: InputConfig{
			TrimSpace: viper.GetBool("input.trim_space"),
		},
	}
}

func createDefaultConfig(defaultConfigDir string) error {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	if err := util.EnsureDir(defaultConfigDir); err != nil {
		return oops.Wrapf(err, "could not create config directory %s", defaultConfigDir)
	}

	if err := viper.SafeWriteConfigAs(defaultConfigFile); err != nil {
		return oops.Wrapf(err, "could not write default config file %s", defaultConfigFile)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
	return nil
}

func handleConfigFile() error {
	if CfgFile != "" && !util.CheckFileExists(CfgFile) {
		return oops.Errorf("config file %s is not found", CfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createDefaultConfig(BuildBase32DirPath())
		}
		return oops.Wrapf(err, "error reading config file")
	}

	log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	return nil
}

// BuildBase32DirPath returns the directory holding the default config file.
func BuildBase32DirPath() string {
	return filepath.Join(util.UserHome(), GOBASE32_BASE_DIR)
}
