package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wertsigner/internal/services/signer"
)

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "fields",
		Short:       "Print the record fields covered by the signature",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoWire: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(signer.RequiredFieldNames(), "\n"))
			return nil
		},
	}
}
