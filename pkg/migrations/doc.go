// Package migrations generates the SQL migration that creates the plan templates table
// and seeds it with the default plan, embedding the seed JSON verbatim.
//
// To generate the migration with defaults, run from the repository root:
//
//	go run github.com/realrehab/plantemplates/cmd/migrate-gen
//
// Or add a go generate directive:
//
//	//go:generate go run github.com/realrehab/plantemplates/cmd/migrate-gen migration --adapter postgres
//
// PostgreSQL output is deterministic: the same seed always produces the same bytes.
package migrations
