package commands

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"wertsigner/internal/app"
	"wertsigner/internal/crypto"
	"wertsigner/internal/util/memzero"
)

func sealCmd(opts *rootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:         "seal",
		Short:       "Seal a hex seed from stdin and print a credentials file entry",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoWire: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Passphrase == "" {
				return errors.New("passphrase required (-p or $" + app.EnvPassphrase + ")")
			}
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.Wrap(err, "read seed")
			}
			seedHex := strings.TrimSpace(line)

			// reject anything the signer would not accept
			seed, err := crypto.ParseSeed(seedHex)
			if err != nil {
				return err
			}
			seed.Wipe()

			raw := []byte(seedHex)
			defer memzero.Zero(raw)

			N, r, p := crypto.ScryptParamsDefault()
			env, err := crypto.Seal(opts.cfg.Passphrase, raw, N, r, p)
			if err != nil {
				return err
			}
			out, err := app.SealedEntry(name, env)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "default", "credential name for the entry")
	return cmd
}
