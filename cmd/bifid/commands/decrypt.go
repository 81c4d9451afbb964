package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// decrypt <ciphertext...>: padding is kept unless --strip is given.
func decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext...>",
		Short: "Decrypt a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt := appCtx.Cipher.Decrypt(strings.Join(args, " "))
			if strip {
				pt = appCtx.Cipher.StripPadding(pt)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strip, "strip", false, "drop one trailing padding letter")
	return cmd
}
