package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realrehab/plantemplates/pkg/plannodes"
)

func (c *CLI) newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate the default ACL plan seed JSON",
		Long: `Generate the seed document for the default ACL recovery plan: four phases of
lessons with a mid-phase and an end-of-phase benchmark each.

Node IDs are random, so every run produces a different file. Commit the result
and regenerate the migration from it.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.bindFlags(cmd.Flags(), map[string]string{keySeedOutput: "output"}); err != nil {
				return err
			}
			return c.runSeed(cmd)
		},
	}

	cmd.Flags().String("output", plannodes.DefaultSeedConfig().OutputPath, "Seed JSON output path")
	c.addConfigFlag(cmd)

	return cmd
}

func (c *CLI) runSeed(cmd *cobra.Command) error {
	config := plannodes.SeedConfig{
		OutputPath: c.v.GetString(keySeedOutput),
		Logger:     c.logger(),
	}

	nodes := plannodes.DefaultACLPlan(plannodes.NewID)
	if err := plannodes.WriteSeed(cmd.Context(), &config, nodes); err != nil {
		return fmt.Errorf("error generating seed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Seed written.")
	return nil
}
