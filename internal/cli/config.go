package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/realrehab/plantemplates/pkg/migrations"
	"github.com/realrehab/plantemplates/pkg/plannodes"
)

// EnvPrefix prefixes environment overrides, e.g. MIGRATE_GEN_SEED.
const EnvPrefix = "MIGRATE_GEN"

// Config keys. Flag names match the keys; environment variables are
// EnvPrefix + "_" + upper-cased key with dashes replaced by underscores.
const (
	keyAdapter    = "adapter"
	keySeed       = "seed"
	keyOutput     = "output"
	keyFilename   = "filename"
	keySchema     = "schema"
	keyTable      = "table"
	keyRole       = "role"
	keyCategory   = "category"
	keyInjury     = "injury"
	keyStrict     = "strict"
	keySeedOutput = "seed-output"
)

// initConfig layers defaults, the optional config file and the environment.
// Flags are bound per command when it runs. Only subcommands call it; the
// root command always runs with the built-in defaults.
func (c *CLI) initConfig() error {
	setDefaults(c.v)

	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	// No config file is searched for unless one is named
	if c.configPath != "" {
		c.v.SetConfigFile(c.configPath)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config: %w", err)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	migration := migrations.DefaultConfig()
	seed := plannodes.DefaultSeedConfig()

	v.SetDefault(keyAdapter, string(migrations.Postgres))
	v.SetDefault(keySeed, migration.SeedPath)
	v.SetDefault(keyOutput, migration.OutputFolder)
	v.SetDefault(keyFilename, migration.OutputFilename)
	v.SetDefault(keySchema, migration.SchemaName)
	v.SetDefault(keyTable, migration.TableName)
	v.SetDefault(keyRole, migration.ReadRole)
	v.SetDefault(keyCategory, migration.Category)
	v.SetDefault(keyInjury, migration.Injury)
	v.SetDefault(keyStrict, migration.Strict)
	v.SetDefault(keySeedOutput, seed.OutputPath)
}

// addConfigFlag registers --config on a subcommand that layers configuration.
func (c *CLI) addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.configPath, "config", "", "optional YAML config file")
}

// bindFlags binds each named flag of the running command to the config key of the same name.
func (c *CLI) bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for key, flagName := range keys {
		if err := c.v.BindPFlag(key, flags.Lookup(flagName)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

// migrationConfig resolves the adapter and migrations.Config from the layered config.
func (c *CLI) migrationConfig() (migrations.Adapter, migrations.Config, error) {
	adapter, err := migrations.ParseAdapter(c.v.GetString(keyAdapter))
	if err != nil {
		return "", migrations.Config{}, err
	}

	config := migrations.Config{
		SeedPath:       c.v.GetString(keySeed),
		OutputFolder:   c.v.GetString(keyOutput),
		OutputFilename: c.v.GetString(keyFilename),
		SchemaName:     c.v.GetString(keySchema),
		TableName:      c.v.GetString(keyTable),
		ReadRole:       c.v.GetString(keyRole),
		Category:       c.v.GetString(keyCategory),
		Injury:         c.v.GetString(keyInjury),
		Strict:         c.v.GetBool(keyStrict),
		Logger:         c.logger(),
	}
	return adapter, config, nil
}
