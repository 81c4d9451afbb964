package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// encrypt <plaintext...>: arguments are joined with spaces before encrypting.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <plaintext...>",
		Short: "Encrypt a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct := appCtx.Cipher.Encrypt(strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
}
