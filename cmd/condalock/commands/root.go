// Package commands implements the CLI commands for condalock.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/condalock/internal/app"
	"go.trai.ch/condalock/internal/build"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

// CLI represents the command line interface for condalock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions)
	Freeze(ctx context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error)
	Create(ctx context.Context, lockfilePath string) (string, error)
	CheckEnv(ctx context.Context, specPath string) (*domain.LockfileAudit, error)
	CheckLocks(ctx context.Context, specPath string, lockfiles []string) (*domain.AuditReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "condalock",
		Short:         "Reproducible conda environments from pinned lockfiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Defined before the version flag so -v stays the verbosity shorthand.
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeat for debug output)")
	rootCmd.PersistentFlags().String("log-format", logFormatPretty, "Log format: pretty or json")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newFreezeCmd())
	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newCheckEnvCmd())
	rootCmd.AddCommand(c.newCheckLocksCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	switch format {
	case logFormatPretty, logFormatJSON:
	default:
		return zerr.With(zerr.New("unknown log format"), "log_format", format)
	}

	c.app.ConfigureLogging(app.LogOptions{
		Verbosity: verbosity,
		JSON:      format == logFormatJSON,
	})
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
