package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"wertsigner/internal/crypto"
	"wertsigner/internal/domain"
)

func fingerprintCmd(opts *rootOptions) *cobra.Command {
	var credential string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the public key and fingerprint for a credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.wire.Signer.ResolveKey(domain.SignOptions{Credential: credential})
			if err != nil {
				return err
			}
			pub, err := crypto.PublicKeyHex(res.Key)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Public key:  %s\nFingerprint: %s\n", hex.EncodeToString(pub), crypto.Fingerprint(pub))
			return nil
		},
	}
	cmd.Flags().StringVarP(&credential, "credential", "c", "", "credential name (default: the store default)")
	return cmd
}
