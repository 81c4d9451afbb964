package commands

import (
	"github.com/spf13/cobra"

	"bifid/internal/app"
)

var (
	key      string
	padding  string
	logLevel string
	appCtx   *app.Wire

	strip bool
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	key, padding, logLevel, strip = "", "", "", false
	appCtx = nil

	root := &cobra.Command{
		Use:           "bifid",
		Short:         "Bifid cipher over a keyed 5x5 Polybius square",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("key") {
				cfg.Key = key
			}
			if cmd.Flags().Changed("padding") {
				cfg.Padding = padding
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&key, "key", "k", "", "keyword for the square (default $BIFID_KEY, or plain alphabet)")
	root.PersistentFlags().StringVar(&padding, "padding", "X", "letter appended to odd-length plaintext")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(squareCmd(), fingerprintCmd(), encryptCmd(), decryptCmd())
	return root
}
