// Package cli provides the migrate-gen command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/realrehab/plantemplates/pkg/migrations"
)

// Process exit codes returned by Execute.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// CLI holds the command-line interface state.
type CLI struct {
	rootCmd *cobra.Command
	v       *viper.Viper
	stderr  io.Writer

	// Flags shared by subcommands
	configPath string
	verbose    bool
}

// New creates a new CLI instance writing to the process stdout and stderr.
func New() *CLI {
	c := &CLI{
		v:      viper.New(),
		stderr: os.Stderr,
	}
	c.rootCmd = c.newRootCmd()
	return c
}

// SetOutput redirects command output and logs.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stderr = stderr
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

// SetArgs overrides os.Args[1:].
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// Execute runs the CLI and returns the process exit code.
func (c *CLI) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate-gen",
		Short: "Generate the plan templates migration",
		Long: `migrate-gen embeds the plan template seed JSON into a SQL migration.

Run without a subcommand to generate the PostgreSQL migration using the default
paths, relative to the repository root:

  supabase/seed_plan_template_nodes.json -> supabase/migrations/20260206000000_plan_templates.sql

The default run reads no environment variables or config file. Use the
migration subcommand to override paths and names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := migrations.DefaultConfig()
			config.Logger = c.logger()
			return c.runMigration(cmd, migrations.Postgres, &config)
		},
	}

	cmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose logs on stderr")

	cmd.AddCommand(c.newMigrationCmd())
	cmd.AddCommand(c.newSeedCmd())
	cmd.AddCommand(c.newVersionCmd())

	return cmd
}

func (c *CLI) logger() *Logger {
	return NewLogger(c.stderr, c.verbose)
}
