package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
	"github.com/robalobadob/pokedle/apps/go-server/internal/httpserver"
	"github.com/robalobadob/pokedle/apps/go-server/internal/store"
	"github.com/robalobadob/pokedle/apps/go-server/internal/tui"
)

func newServeCmd(g *globals) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API for the browser client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			initLogger(cfg, nil)

			cat := mustCatalog(cfg)
			pf, closePrefs, err := openPrefs(cfg, g)
			if err != nil {
				return fmt.Errorf("open prefs: %w", err)
			}
			defer closePrefs()

			srv := httpserver.New(cat, store.NewMemoryStore(cfg.SessionTTL), pf, httpserver.Options{
				ClientOrigin:  cfg.ClientOrigin,
				DailySalt:     cfg.DailySalt,
				RevealDelay:   cfg.RevealDelay,
				SuggestLimit:  cfg.SuggestLimit,
				SuggestSample: cfg.SuggestSample,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting go-server")
			if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port; overrides PORT")
	return cmd
}

func newPlayCmd(g *globals) *cobra.Command {
	var answer string
	var daily, sample bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}

			// The TUI owns the terminal: logs go to LOG_FILE or nowhere.
			var out io.Writer = io.Discard
			if cfg.LogFile != "" {
				f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				out = f
			}
			initLogger(cfg, out)

			cat := mustCatalog(cfg)
			pf, closePrefs, err := openPrefs(cfg, g)
			if err != nil {
				return fmt.Errorf("open prefs: %w", err)
			}
			defer closePrefs()

			picker := game.RandomPicker()
			switch {
			case answer != "":
				picker = game.FixedPicker(answer)
			case daily:
				picker = game.DailyPicker(cfg.DailySalt, nil)
			}
			sess, err := game.NewSession(cat, picker)
			if err != nil {
				return err
			}

			return tui.Run(sess, pf, tui.Options{
				RevealDelay: cfg.RevealDelay,
				SampleEmpty: sample || cfg.SuggestSample > 0,
			})
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "force the secret (practice)")
	cmd.Flags().BoolVar(&daily, "daily", false, "play today's shared secret")
	cmd.Flags().BoolVar(&sample, "sample", false, "show random suggestions while the input is empty")
	return cmd
}

func newCatalogCmd(g *globals) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate the catalog and print its size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.CatalogFile)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%d entities\n", cat.Len())
			if !list {
				return nil
			}
			lines := lo.Map(cat.Records(), func(r catalog.EntityRecord, _ int) string {
				t := r.Type1
				if r.HasType2() {
					t += "/" + r.Type2
				}
				return fmt.Sprintf("#%03d %-12s gen %d  %-16s %.1fm %.1fkg stage %d", r.ID, r.Name, r.Generation, t, r.Height, r.Weight, r.EvolutionStage)
			})
			for _, l := range lines {
				_, _ = fmt.Fprintln(w, l)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print every entity")
	return cmd
}
