package migrations

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

const header = `-- Plan templates: default rehab plan structure by category+injury
-- Read-only for app; seeded via migration. PT edits go to accounts.rehab_plans.
`

// RenderPostgres returns the PostgreSQL migration with seed spliced verbatim between
// two DollarQuoteTag markers. The seed is not escaped; a seed containing the tag
// produces SQL that does not parse.
func RenderPostgres(config *Config, seed string) string {
	return header + fmt.Sprintf(`
CREATE SCHEMA IF NOT EXISTS %[1]s;

CREATE TABLE IF NOT EXISTS %[1]s.%[2]s (
  id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
  category text NOT NULL,
  injury text NOT NULL,
  nodes jsonb NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now(),
  updated_at timestamptz NOT NULL DEFAULT now(),
  UNIQUE (category, injury)
);

CREATE INDEX IF NOT EXISTS idx_%[2]s_category_injury
  ON %[1]s.%[2]s (category, injury);

ALTER TABLE %[1]s.%[2]s ENABLE ROW LEVEL SECURITY;

CREATE POLICY %[2]s_select_%[3]s
  ON %[1]s.%[2]s
  FOR SELECT
  TO %[3]s
  USING (true);

INSERT INTO %[1]s.%[2]s (category, injury, nodes)
VALUES (%[4]s, %[5]s, %[6]s%[7]s%[6]s::jsonb)
ON CONFLICT (category, injury) DO NOTHING;
`,
		config.SchemaName,
		config.TableName,
		config.ReadRole,
		quotePostgres(config.Category),
		quotePostgres(config.Injury),
		DollarQuoteTag,
		seed,
	)
}

// RenderMySQL returns the MySQL/MariaDB migration. MySQL has no dollar quoting, so
// the seed is embedded as an escaped single-quoted literal.
func RenderMySQL(config *Config, seed string) string {
	return header + fmt.Sprintf(`-- Database: MySQL/MariaDB

-- In MySQL, we use a separate database instead of schema
CREATE DATABASE IF NOT EXISTS %[1]s
    DEFAULT CHARACTER SET utf8mb4
    DEFAULT COLLATE utf8mb4_unicode_ci;

USE %[1]s;

CREATE TABLE IF NOT EXISTS %[2]s (
    id CHAR(36) NOT NULL DEFAULT (UUID()),
    category VARCHAR(255) NOT NULL,
    injury VARCHAR(255) NOT NULL,
    nodes JSON NOT NULL,
    created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
    updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),

    PRIMARY KEY (id),
    UNIQUE KEY uq_%[2]s_category_injury (category, injury),
    INDEX idx_%[2]s_category_injury (category, injury)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

-- MySQL has no row-level security; grant SELECT on %[1]s.%[2]s to the %[3]s account instead

INSERT IGNORE INTO %[2]s (category, injury, nodes)
VALUES (%[4]s, %[5]s, %[6]s);
`,
		config.SchemaName,
		config.TableName,
		config.ReadRole,
		quoteMySQL(config.Category),
		quoteMySQL(config.Injury),
		quoteMySQL(seed),
	)
}

// RenderSQLite returns the SQLite migration. SQLite has no schemas, so the table name
// is prefixed with SchemaName, and row-level security does not apply.
func RenderSQLite(config *Config, seed string) string {
	table := config.SchemaName + "_" + config.TableName

	return header + fmt.Sprintf(`-- Database: SQLite

CREATE TABLE IF NOT EXISTS %[1]s (
    id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
    category TEXT NOT NULL,
    injury TEXT NOT NULL,
    nodes TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),
    UNIQUE (category, injury)
);

CREATE INDEX IF NOT EXISTS idx_%[1]s_category_injury
    ON %[1]s (category, injury);

INSERT OR IGNORE INTO %[1]s (category, injury, nodes)
VALUES (%[2]s, %[3]s, %[4]s);
`,
		table,
		quoteSQLite(config.Category),
		quoteSQLite(config.Injury),
		quoteSQLite(seed),
	)
}

// quoteMySQL quotes s as a string literal under the default sql_mode, where
// backslash is an escape character.
// quotePostgres drops the space pq.QuoteLiteral puts before E'...' literals.
func quotePostgres(s string) string {
	return strings.TrimLeft(pq.QuoteLiteral(s), " ")
}

func quoteMySQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `''`)
	return "'" + s + "'"
}

func quoteSQLite(s string) string {
	return "'" + strings.ReplaceAll(s, `'`, `''`) + "'"
}
