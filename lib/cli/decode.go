package cli

import (
	"io"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newDecodeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [symbols]",
		Short: "Decode the argument, or stdin when none is given, and write the raw bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			if len(args) == 1 {
				src = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return oops.Wrapf(err, "reading stdin")
				}
				src = string(data)
			}
			if st.cfg.Input.TrimSpace {
				src = strings.TrimSpace(src)
			}

			out, err := st.codec.Decode(src)
			if err != nil {
				log.WithFields(logger.Fields{
					"at":     "cli.decode",
					"length": len(src),
					"error":  err.Error(),
				}).Debug("decode failed")
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
