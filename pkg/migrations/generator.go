package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/getpup/pupsourcing/es"
)

// DollarQuoteTag delimits the seed document inside the PostgreSQL INSERT statement.
const DollarQuoteTag = "$json$"

var identifierRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// validateIdentifier ensures an identifier contains only safe characters for SQL.
// Returns an error if the identifier contains characters that could be used for SQL injection.
func validateIdentifier(name, fieldName string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("%s must start with a letter and contain only letters, numbers, and underscores (got: %s)", fieldName, name)
	}
	return nil
}

// validateConfig validates all configuration values to prevent SQL injection.
func validateConfig(config *Config) error {
	if err := validateIdentifier(config.SchemaName, "SchemaName"); err != nil {
		return err
	}
	if err := validateIdentifier(config.TableName, "TableName"); err != nil {
		return err
	}
	if err := validateIdentifier(config.ReadRole, "ReadRole"); err != nil {
		return err
	}
	// Category and Injury are quoted as literals, so any non-empty value is safe.
	required := []struct{ value, fieldName string }{
		{config.SeedPath, "SeedPath"},
		{config.OutputFilename, "OutputFilename"},
		{config.Category, "Category"},
		{config.Injury, "Injury"},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s cannot be empty", r.fieldName)
		}
	}
	return nil
}

// Config configures generation of the plan templates migration.
type Config struct {
	// SeedPath is the JSON seed document embedded into the INSERT statement
	SeedPath string

	// OutputFolder is the directory where the migration file will be written.
	// It must already exist.
	OutputFolder string

	// OutputFilename is the name of the migration file
	OutputFilename string

	// SchemaName is the database schema name (PostgreSQL) or database name (MySQL).
	// For SQLite it becomes a table name prefix (e.g., content_plan_templates).
	SchemaName string

	// TableName is the name of the plan templates table
	TableName string

	// ReadRole is the database role granted SELECT through the row-level security policy
	ReadRole string

	// Category and Injury key the seeded template row
	Category string
	Injury   string

	// Strict rejects seeds containing DollarQuoteTag instead of logging a warning
	Strict bool

	// Logger is for observability (optional).
	Logger es.Logger
}

// DefaultConfig returns the default configuration for the plan templates migration.
// Paths are relative to the repository root.
func DefaultConfig() Config {
	return Config{
		SeedPath:       filepath.Join("supabase", "seed_plan_template_nodes.json"),
		OutputFolder:   filepath.Join("supabase", "migrations"),
		OutputFilename: "20260206000000_plan_templates.sql",
		SchemaName:     "content",
		TableName:      "plan_templates",
		ReadRole:       "authenticated",
		Category:       "Knee",
		Injury:         "ACL",
	}
}

// WrittenPath returns the path the migration file is written to.
func WrittenPath(config *Config) string {
	return filepath.Join(config.OutputFolder, config.OutputFilename)
}

// Generate writes the migration for the given adapter.
func Generate(ctx context.Context, adapter Adapter, config *Config) error {
	switch adapter {
	case Postgres:
		return GeneratePostgres(ctx, config)
	case MySQL:
		return GenerateMySQL(ctx, config)
	case SQLite:
		return GenerateSQLite(ctx, config)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAdapter, adapter)
	}
}

// GeneratePostgres generates a PostgreSQL migration file.
func GeneratePostgres(ctx context.Context, config *Config) error {
	return generate(ctx, Postgres, config, RenderPostgres)
}

// GenerateMySQL generates a MySQL/MariaDB migration file.
func GenerateMySQL(ctx context.Context, config *Config) error {
	return generate(ctx, MySQL, config, RenderMySQL)
}

// GenerateSQLite generates a SQLite migration file.
func GenerateSQLite(ctx context.Context, config *Config) error {
	return generate(ctx, SQLite, config, RenderSQLite)
}

// generate reads the seed, renders it and writes the migration.
// The seed is read in full before the output path is touched, so a missing seed
// never creates or truncates an existing migration.
func generate(ctx context.Context, adapter Adapter, config *Config, render func(*Config, string) string) error {
	logger := config.Logger
	if logger == nil {
		logger = es.NoOpLogger{}
	}

	// Validate configuration to prevent SQL injection
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seed, err := os.ReadFile(config.SeedPath)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	logger.Debug(ctx, "read seed document", "path", config.SeedPath, "bytes", len(seed))

	if adapter == Postgres && strings.Contains(string(seed), DollarQuoteTag) {
		if config.Strict {
			return fmt.Errorf("%w: %s in %s", ErrDelimiterCollision, DollarQuoteTag, config.SeedPath)
		}
		logger.Error(ctx, "seed contains dollar-quote delimiter, generated SQL will not parse",
			"path", config.SeedPath, "delimiter", DollarQuoteTag)
	}

	sql := render(config, string(seed))

	outputPath := WrittenPath(config)
	if err := os.WriteFile(outputPath, []byte(sql), 0o644); err != nil {
		return fmt.Errorf("failed to write migration file: %w", err)
	}
	logger.Info(ctx, "migration written", "adapter", string(adapter), "path", outputPath)

	return nil
}
