// main.go
//
// Pokedle entrypoint.
// Responsibilities:
//   - Build the cobra command tree (serve, play, catalog).
//   - Configure the global zerolog logger from config.
//   - Load the entity catalog once; a broken catalog is fatal.
//   - Open the sqlite preference database and apply embedded migrations.

package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/apps/go-server/assets"
	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/config"
	"github.com/robalobadob/pokedle/apps/go-server/internal/database"
	"github.com/robalobadob/pokedle/apps/go-server/internal/prefs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals are the persistent flags shared by every subcommand.
type globals struct {
	catalogFile string
	noDB        bool
}

func newRootCmd() *cobra.Command {
	var g globals

	root := &cobra.Command{
		Use:           "pokedle",
		Short:         "Guess the hidden Pokémon from attribute hints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.catalogFile, "catalog", "", "catalog file (.json/.yaml); overrides CATALOG_FILE")
	root.PersistentFlags().BoolVar(&g.noDB, "no-db", false, "keep the theme preference in memory only")

	root.AddCommand(newServeCmd(&g))
	root.AddCommand(newPlayCmd(&g))
	root.AddCommand(newCatalogCmd(&g))
	return root
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(g *globals) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if g.catalogFile != "" {
		cfg.CatalogFile = g.catalogFile
	}
	return cfg, nil
}

// initLogger configures the global logger. Outside production the console
// writer is used; out overrides the destination (the TUI owns stdout).
func initLogger(cfg config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if out == nil {
		out = os.Stdout
	}

	if cfg.Production() {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stdout}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)
}

// mustCatalog loads the catalog or exits: nothing works without one.
func mustCatalog(cfg config.Config) *catalog.Catalog {
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("failed to load catalog")
	}
	log.Info().Int("entities", cat.Len()).Msg("catalog loaded")
	return cat
}

// openPrefs returns the preference store and a close func.
// With --no-db the store lives in memory.
func openPrefs(cfg config.Config, g *globals) (prefs.Store, func(), error) {
	if g.noDB {
		return prefs.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	migrations, err := assets.Migrations()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if err := database.Migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return prefs.NewSQLStore(db), closeDB(db), nil
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close db")
		}
	}
}
