package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an environment from a lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lockfile, _ := cmd.Flags().GetString("lockfile")

			prefix, err := c.app.Create(cmd.Context(), lockfile)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", prefix)
			return nil
		},
	}
	cmd.Flags().StringP("lockfile", "l", "", "Lockfile to install (defaults to deps.<host platform>.lock.yml)")
	return cmd
}
