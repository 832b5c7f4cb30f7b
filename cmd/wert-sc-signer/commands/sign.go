package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"wertsigner/internal/domain"
)

func signCmd(opts *rootOptions) *cobra.Command {
	var (
		credential string
		key        string
		file       string
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a JSON record and print it with a signature field",
		Long: "Reads one JSON object from --file or stdin. The object must carry\n" +
			"address, commodity, commodity_amount, network, sc_address and sc_input_data;\n" +
			"other fields are passed through unchanged.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			rec, err := readRecord(in)
			if err != nil {
				return err
			}

			signOpts := domain.SignOptions{Credential: credential}
			if cmd.Flags().Changed("key") {
				signOpts.PrivateKey = &key
			}
			signed, err := opts.wire.Signer.Sign(rec, signOpts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(signed)
		},
	}
	cmd.Flags().StringVarP(&credential, "credential", "c", "", "credential name (default: the store default)")
	cmd.Flags().StringVar(&key, "key", "", "hex seed to sign with, bypassing the credential store")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the record from this file instead of stdin")
	return cmd
}

func readRecord(r io.Reader) (domain.Record, error) {
	var rec domain.Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return domain.Record{}, errors.Wrap(err, "decode record")
	}
	return rec, nil
}
