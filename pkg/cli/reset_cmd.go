package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewResetCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "delete every cached item so the next list downloads again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Client.Reset(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "item cache cleared")
			return err
		},
	}
}
