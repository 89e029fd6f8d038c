package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/condalock/internal/core/domain"
)

func (c *CLI) newFreezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Resolve the dependency spec into a pinned lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			depfile, _ := cmd.Flags().GetString("depfile")
			platformName, _ := cmd.Flags().GetString("platform")
			lockfile, _ := cmd.Flags().GetString("lockfile")

			var target domain.Platform
			if platformName != "" {
				p, err := domain.ParsePlatform(platformName)
				if err != nil {
					return err
				}
				target = p
			}

			res, err := c.app.Freeze(cmd.Context(), domain.FreezeRequest{
				SpecPath:     depfile,
				LockfilePath: lockfile,
				Target:       target,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Status == domain.FreezeAlreadyFresh {
				_, _ = fmt.Fprintf(out, "lockfile %s is up to date\n", res.LockfilePath)
				return nil
			}
			_, _ = fmt.Fprintf(out, "wrote %s\n", res.LockfilePath)
			return nil
		},
	}
	cmd.Flags().StringP("depfile", "d", domain.DefaultSpecFile, "Dependency spec to freeze")
	cmd.Flags().StringP("platform", "p", "", "Target platform: Darwin or Linux (defaults to this host)")
	cmd.Flags().StringP("lockfile", "l", "", "Lockfile to write (defaults to deps.<platform>.lock.yml)")
	return cmd
}
