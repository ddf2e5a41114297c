// Package cli wires the base32 codec into the go-base32 command line tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/go-i2p/go-base32/lib/common/base32"
	"github.com/go-i2p/go-base32/lib/config"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// state is filled in by the root command before any subcommand runs.
type state struct {
	cfg   *config.Config
	codec *base32.Codec
}

// NewRootCommand returns the go-base32 command tree.
func NewRootCommand() *cobra.Command {
	st := &state{}
	var (
		cfgFile   string
		noNewline bool
	)

	rootCmd := &cobra.Command{
		Use:           "go-base32",
		Short:         "Encode and decode unpadded base32",
		Long:          "go-base32 converts between bytes and base32 text using one of the built-in 32-character alphabets or a custom one.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.CfgFile = cfgFile
			if err := config.InitConfig(); err != nil {
				return err
			}
			if err := viper.BindPFlag("codec.alphabet", cmd.Flags().Lookup("alphabet")); err != nil {
				return oops.Wrapf(err, "binding --alphabet")
			}
			if cmd.Flags().Changed("no-newline") {
				viper.Set("output.newline", !noNewline)
			}

			cfg := config.CurrentConfig()
			if err := config.Validate(*cfg); err != nil {
				return err
			}
			codec, err := cfg.Codec.NewCodec()
			if err != nil {
				return err
			}

			st.cfg = cfg
			st.codec = codec
			log.WithFields(logger.Fields{
				"at":       "cli.PersistentPreRunE",
				"command":  cmd.Name(),
				"alphabet": codec.Alphabet(),
			}).Debug("codec ready")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.go-base32/config.yaml)")
	rootCmd.PersistentFlags().String("alphabet", config.Defaults().Codec.Alphabet,
		"alphabet name ("+joinNames()+") or 32 literal characters")
	rootCmd.PersistentFlags().BoolVar(&noNewline, "no-newline", false, "do not append a newline to encoded output")

	rootCmd.AddCommand(
		newEncodeCommand(st),
		newDecodeCommand(st),
		newAlphabetsCommand(),
		newDemoCommand(st),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The version command needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "go-base32 %s\n", Version)
		},
	}
}

func joinNames() string {
	return strings.Join(base32.AlphabetNames(), ", ")
}
