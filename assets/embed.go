// assets/embed.go
//
// Embedded static inputs for the server:
//   - pokemon.json: the default entity catalog (loaded once at startup).
//   - sql/*.sql:    schema migrations for the preference store.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed pokemon.json sql/*.sql
var FS embed.FS

// CatalogJSON returns the raw bytes of the embedded default catalog.
func CatalogJSON() ([]byte, error) {
	return FS.ReadFile("pokemon.json")
}

// Migrations exposes the sql/ directory as its own filesystem root.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
