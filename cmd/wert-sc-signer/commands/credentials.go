package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errNoStore = errors.New("no credentials file configured (use --config)")

func credentialsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "List configured credential names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := opts.wire.Store
			if st == nil {
				return errNoStore
			}
			out := cmd.OutOrStdout()
			for _, name := range st.Names() {
				marker := " "
				if name == st.DefaultName() {
					marker = "*"
				}
				secret, err := st.Get(name)
				if err != nil {
					return err
				}
				if secret.Usable() {
					fmt.Fprintf(out, "%s %s\n", marker, name)
				} else {
					fmt.Fprintf(out, "%s %s (empty)\n", marker, name)
				}
			}
			return nil
		},
	}
}
