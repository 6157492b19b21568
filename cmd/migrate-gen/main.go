// Command migrate-gen generates the plan templates SQL migration with the plan seed
// JSON embedded verbatim.
//
// Usage, from the repository root:
//
//	go run github.com/realrehab/plantemplates/cmd/migrate-gen
//
// This reads supabase/seed_plan_template_nodes.json and writes
// supabase/migrations/20260206000000_plan_templates.sql.
//
// Generate migrations for different database adapters:
//
//	go run github.com/realrehab/plantemplates/cmd/migrate-gen migration --adapter postgres
//	go run github.com/realrehab/plantemplates/cmd/migrate-gen migration --adapter mysql --filename plan_templates_mysql.sql
//	go run github.com/realrehab/plantemplates/cmd/migrate-gen migration --adapter sqlite --filename plan_templates_sqlite.sql
//
// Regenerate the default ACL plan seed:
//
//	go run github.com/realrehab/plantemplates/cmd/migrate-gen seed
package main

import (
	"os"

	"github.com/realrehab/plantemplates/internal/cli"
)

func main() {
	os.Exit(cli.New().Execute())
}
