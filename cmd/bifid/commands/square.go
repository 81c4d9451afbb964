package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func squareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "square",
		Short: "Print the key square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), appCtx.Cipher.Render())
			return err
		},
	}
}
