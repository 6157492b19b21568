package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realrehab/plantemplates/pkg/migrations"
)

func (c *CLI) newMigrationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migration",
		Short: "Generate the plan templates migration",
		Long: `Generate the plan templates migration with the seed JSON embedded verbatim.

The seed is read before the output is opened, so a missing seed leaves any
existing migration untouched. The output folder must already exist.

Examples:
  migrate-gen migration
  migrate-gen migration --adapter sqlite --output migrations --filename plan_templates.sql
  migrate-gen migration --config migrate-gen.yaml
  MIGRATE_GEN_SEED=fixtures/seed.json migrate-gen migration`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.bindFlags(cmd.Flags(), map[string]string{
				keyAdapter:  "adapter",
				keySeed:     "seed",
				keyOutput:   "output",
				keyFilename: "filename",
				keySchema:   "schema",
				keyTable:    "table",
				keyRole:     "role",
				keyCategory: "category",
				keyInjury:   "injury",
				keyStrict:   "strict",
			}); err != nil {
				return err
			}
			adapter, config, err := c.migrationConfig()
			if err != nil {
				return err
			}
			return c.runMigration(cmd, adapter, &config)
		},
	}

	defaults := migrations.DefaultConfig()
	cmd.Flags().String("adapter", string(migrations.Postgres), "Database adapter: postgres, mysql, or sqlite")
	cmd.Flags().String("seed", defaults.SeedPath, "Seed JSON file to embed")
	cmd.Flags().String("output", defaults.OutputFolder, "Output folder for migration file (must exist)")
	cmd.Flags().String("filename", defaults.OutputFilename, "Output filename")
	cmd.Flags().String("schema", defaults.SchemaName, "Schema name (PostgreSQL), database name (MySQL) or table prefix (SQLite)")
	cmd.Flags().String("table", defaults.TableName, "Name of plan templates table")
	cmd.Flags().String("role", defaults.ReadRole, "Role granted read access by the row level security policy")
	cmd.Flags().String("category", defaults.Category, "Category of the seeded template")
	cmd.Flags().String("injury", defaults.Injury, "Injury of the seeded template")
	cmd.Flags().Bool("strict", defaults.Strict, "Fail instead of warning when the seed contains the dollar-quote delimiter")
	c.addConfigFlag(cmd)

	return cmd
}

func (c *CLI) runMigration(cmd *cobra.Command, adapter migrations.Adapter, config *migrations.Config) error {
	if err := migrations.Generate(cmd.Context(), adapter, config); err != nil {
		return fmt.Errorf("error generating migration: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migration written.")
	return nil
}
