// Package config provides configuration management for the go-base32 command.
//
// Settings are read through viper from, in order of precedence: command line
// flags bound with viper.BindPFlag, GO_BASE32_* environment variables, the
// config file, and the defaults returned by Defaults.
//
// # Config File
//
// The --config flag names an explicit YAML file, which must exist. Without it
// the file is $HOME/.go-base32/config.yaml; when that file is missing it is
// created from the defaults.
//
// # Keys
//
//   - codec.alphabet: built-in alphabet name (default, rfc4648, exthex, natarea)
//     or a literal 32-character alphabet. Default: "default"
//   - output.newline: append a newline after encoded output. Default: true
//   - input.trim_space: strip surrounding whitespace from decode input. Default: true
package config
