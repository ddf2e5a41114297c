package cli

import (
	"io"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newEncodeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode the arguments, or stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			if len(args) > 0 {
				src = []byte(strings.Join(args, " "))
			} else {
				var err error
				src, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return oops.Wrapf(err, "reading stdin")
				}
			}

			out := st.codec.Encode(src)
			if st.cfg.Output.Newline {
				out += "\n"
			}
			_, err := io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}
