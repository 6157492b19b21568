package migrations

import (
	"fmt"
	"strings"
)

// Adapter names the SQL dialect a migration is rendered for.
type Adapter string

const (
	Postgres Adapter = "postgres"
	MySQL    Adapter = "mysql"
	SQLite   Adapter = "sqlite"
)

// Adapters lists the supported adapters in display order.
func Adapters() []Adapter {
	return []Adapter{Postgres, MySQL, SQLite}
}

// ParseAdapter resolves an adapter name, case-insensitively.
func ParseAdapter(name string) (Adapter, error) {
	a := Adapter(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Adapters() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w '%s'. Supported adapters are: postgres, mysql, sqlite", ErrUnsupportedAdapter, name)
}
