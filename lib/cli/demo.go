package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var demoInputs = []string{"fzda0", "fzda", "1", "1024", "Привет, мир!"}

func newDemoCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encode and decode a few sample strings with the selected alphabet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, in := range demoInputs {
				enc := st.codec.Encode([]byte(in))
				dec, err := st.codec.Decode(enc)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "encode(%q) = %q\n", in, enc)
				fmt.Fprintf(out, "decode(%q) = %q\n", enc, dec)
			}
			return nil
		},
	}
}
