package cli

import (
	"github.com/go-i2p/go-base32/lib/common/base32"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type alphabetEntry struct {
	Name       string `yaml:"name"`
	Characters string `yaml:"characters"`
}

func newAlphabetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List the built-in alphabets as YAML",
		// Listing needs no config or codec.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := make([]alphabetEntry, 0, len(base32.AlphabetNames()))
			for _, name := range base32.AlphabetNames() {
				chars, _ := base32.LookupAlphabet(name)
				entries = append(entries, alphabetEntry{Name: name, Characters: chars})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(entries); err != nil {
				return oops.Wrapf(err, "writing alphabets")
			}
			return enc.Close()
		},
	}
}
