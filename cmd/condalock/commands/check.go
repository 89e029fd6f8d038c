package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/condalock/internal/core/domain"
)

func (c *CLI) newCheckEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkenv",
		Short: "Check that the installed environment matches the dependency spec",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			depfile, _ := cmd.Flags().GetString("depfile")

			result, err := c.app.CheckEnv(cmd.Context(), depfile)
			if result != nil {
				printAudit(cmd.OutOrStdout(), *result)
			}
			return err
		},
	}
	cmd.Flags().StringP("depfile", "d", domain.DefaultSpecFile, "Dependency spec to check against")
	return cmd
}

func (c *CLI) newCheckLocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklocks [lockfiles...]",
		Short: "Check that lockfiles match the dependency spec",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			depfile, _ := cmd.Flags().GetString("depfile")

			report, err := c.app.CheckLocks(cmd.Context(), depfile, args)
			if report != nil {
				for _, result := range report.Results {
					printAudit(cmd.OutOrStdout(), result)
				}
			}
			return err
		},
	}
	cmd.Flags().StringP("depfile", "d", domain.DefaultSpecFile, "Dependency spec to check against")
	return cmd
}

func printAudit(w io.Writer, result domain.LockfileAudit) {
	var verdict string
	switch result.Status {
	case domain.AuditFresh:
		verdict = "ok"
	case domain.AuditStale:
		verdict = "mismatch"
	default:
		verdict = "error"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", verdict, result.Path)
}
