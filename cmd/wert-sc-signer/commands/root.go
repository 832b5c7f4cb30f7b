package commands

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wertsigner/internal/app"
)

// rootOptions carries persistent flags and the wired app into subcommands.
type rootOptions struct {
	configPath        string
	defaultCredential string
	passphrase        string
	logLevel          string
	logFormat         string

	cfg  app.Config
	wire *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "wert-sc-signer",
		Short:         "Sign smart-contract transaction records with Ed25519",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}

			cfg := app.LoadFromEnv()
			if cmd.Flags().Changed("config") {
				cfg.ConfigPath = opts.configPath
			}
			if cmd.Flags().Changed("default-credential") {
				cfg.DefaultCredential = opts.defaultCredential
			}
			if cmd.Flags().Changed("passphrase") {
				cfg.Passphrase = opts.passphrase
			}
			cfg.Logger = log
			opts.cfg = cfg

			// seal and fields need no credentials
			if cmd.Annotations[annotationNoWire] == "true" {
				return nil
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "credentials file (default $"+app.EnvConfigPath+")")
	pf.StringVar(&opts.defaultCredential, "default-credential", "", "override the default credential name")
	pf.StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase for sealed credentials (default $"+app.EnvPassphrase+")")
	pf.StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		signCmd(opts),
		credentialsCmd(opts),
		fingerprintCmd(opts),
		sealCmd(opts),
		fieldsCmd(),
	)
	return root
}

const annotationNoWire = "wert/no-wire"

func newLogger(cmd *cobra.Command, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "--log-level")
	}
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	l.SetLevel(lvl)
	switch format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("--log-format: unknown format %q", format)
	}
	return l, nil
}
