// internal/httpserver/server.go
//
// HTTP server wiring for the Pokedle backend (web presentation adapter).
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/catalog".
//   - Game endpoints: POST /game/new, POST /game/guess,
//     GET /game/{id}/rows, GET /game/{id}/suggestions.
//   - Daily endpoint: POST /daily/new (routes_daily.go).
//   - Theme preference: GET/PUT /prefs/theme.
//
// Notes:
//   - Each UI action maps to exactly one engine call; the page never
//     computes verdicts itself.
//   - Rows are always replayed from the session, never cached, so a theme
//     switch redraws with fresh sprite URLs and identical verdicts.
//   - CORS is origin-aware for a single configured client origin.

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
	"github.com/robalobadob/pokedle/apps/go-server/internal/prefs"
	"github.com/robalobadob/pokedle/apps/go-server/internal/render"
	"github.com/robalobadob/pokedle/apps/go-server/internal/store"
	"github.com/robalobadob/pokedle/apps/go-server/internal/theme"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options tunes adapter behavior; zero values are usable.
type Options struct {
	ClientOrigin  string        // CORS origin; default http://localhost:5173
	DailySalt     string        // salt for the daily secret
	RevealDelay   time.Duration // pause before the page shows the win panel
	SuggestLimit  int           // max suggestions per request; 0 = all
	SuggestSample int           // random sample size for an empty query; 0 = full list
	Now           func() time.Time
}

// Server bundles router, catalog, session registry, and preference store.
type Server struct {
	r     *chi.Mux
	cat   *catalog.Catalog
	store store.Store
	prefs prefs.Store
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(cat *catalog.Catalog, st store.Store, pf prefs.Store, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), cat: cat, store: st, prefs: pf, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "pokedle-go",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}/rows", "GET /game/{id}/suggestions", "POST /daily/new", "/prefs/theme"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/catalog", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"entities": s.cat.Len(), "sessions": s.store.Count()})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}/rows", s.handleRows)
	s.r.Get("/game/{id}/suggestions", s.handleSuggestions)

	s.mountDaily(s.r)

	// --- preferences ---
	s.r.Get("/prefs/theme", s.handleGetTheme)
	s.r.Put("/prefs/theme", s.handlePutTheme)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request with status and latency.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed secret (testing)
}
type newGameRes struct {
	GameID string      `json:"gameId"`
	Status game.Status `json:"status"`
	Total  int         `json:"total"` // catalog size, for "N left" counters
	Date   string      `json:"date,omitempty"`
}

// handleNewGame starts a fresh session and registers it.
// A restart from the page is just another /game/new: the old session is
// abandoned and expires on its own.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	picker := game.RandomPicker()
	if req.Answer != "" {
		picker = game.FixedPicker(req.Answer)
	}
	sess, ok := s.startSession(w, r, picker)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{GameID: sess.ID(), Status: sess.Status(), Total: s.cat.Len()})
}

// startSession creates, starts and saves a session, writing the error
// response itself when something fails.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, picker game.Picker) (*game.Session, bool) {
	sess, err := game.NewSession(s.cat, picker)
	if err != nil {
		log.Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "catalog_unavailable")
		return nil, false
	}
	if err := sess.Start(); err != nil {
		writeGameError(w, err)
		return nil, false
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return nil, false
	}
	log.Debug().Str("gameId", sess.ID()).Msg("session started")
	return sess, true
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Row           render.Row  `json:"row"`
	Status        game.Status `json:"status"`
	Guesses       int         `json:"guesses"`
	RevealAfterMs int64       `json:"revealAfterMs,omitempty"`
	Secret        *render.Row `json:"secret,omitempty"`
	Theme         theme.ID    `json:"theme"`
}

// handleGuess submits one guess to the session and returns the new row.
// On the winning guess the response also carries the revealed secret and
// the cosmetic delay before the page should show the end panel.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	th := s.theme(r.Context())

	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(sess *game.Session) error {
		row, err := sess.SubmitGuess(req.Guess)
		if err != nil {
			return err
		}
		res = guessRes{Row: render.NewRow(row, th), Status: sess.Status(), Guesses: sess.Guesses(), Theme: th}
		if secret, ok := sess.Reveal(); ok {
			sr := render.NewRow(game.Compare(secret, secret), th)
			res.Secret = &sr
			res.RevealAfterMs = s.opts.RevealDelay.Milliseconds()
			log.Info().Str("gameId", sess.ID()).Int("guesses", sess.Guesses()).Dur("elapsed", sess.Elapsed()).Msg("game won")
		}
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// rowsRes is returned by GET /game/{id}/rows.
type rowsRes struct {
	GameID string       `json:"gameId"`
	Status game.Status  `json:"status"`
	Theme  theme.ID     `json:"theme"`
	Rows   []render.Row `json:"rows"` // newest first
}

// handleRows replays the full history for a redraw.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	th := s.theme(r.Context())

	var res rowsRes
	err := s.store.Update(r.Context(), id, func(sess *game.Session) error {
		rows, err := sess.Rows()
		if err != nil {
			return err
		}
		res = rowsRes{GameID: sess.ID(), Status: sess.Status(), Theme: th, Rows: render.Rows(rows, th)}
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// suggestion is one autocomplete entry.
type suggestion struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// handleSuggestions lists remaining names starting with ?q=.
// With an empty query the full remaining list is returned, or a random
// sample of it when SuggestSample is configured.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query().Get("q")
	th := s.theme(r.Context())

	var matches []catalog.EntityRecord
	err := s.store.Update(r.Context(), id, func(sess *game.Session) error {
		matches = sess.Suggest(q, 0)
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	if q == "" && s.opts.SuggestSample > 0 && len(matches) > s.opts.SuggestSample {
		matches = lo.Samples(matches, s.opts.SuggestSample)
	}
	if s.opts.SuggestLimit > 0 && len(matches) > s.opts.SuggestLimit {
		matches = matches[:s.opts.SuggestLimit]
	}

	out := lo.Map(matches, func(e catalog.EntityRecord, _ int) suggestion {
		return suggestion{Name: e.Name, ID: e.ID, ImageURL: th.ImageURL(e.ID)}
	})
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": out})
}

// ---------------------------- preferences ----------------------------------

type themeBody struct {
	Theme string `json:"theme"`
}

// theme returns the stored theme, falling back to the default on any error.
func (s *Server) theme(ctx context.Context) theme.ID {
	id, err := prefs.LoadTheme(ctx, s.prefs)
	if err != nil {
		log.Warn().Err(err).Msg("load theme")
	}
	return id
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeBody{Theme: string(s.theme(r.Context()))})
}

// handlePutTheme validates and persists a theme change. The page follows
// up with GET /game/{id}/rows to redraw.
func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id, err := theme.Parse(body.Theme)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_theme")
		return
	}
	if err := prefs.SaveTheme(r.Context(), s.prefs, id); err != nil {
		log.Error().Err(err).Msg("save theme")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: string(id)})
}

// ------------------------------- helpers -----------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeGameError maps engine and registry errors to HTTP responses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrNotFound):
		writeError(w, http.StatusBadRequest, "unknown_entity")
	case errors.Is(err, game.ErrAlreadyGuessed):
		writeError(w, http.StatusConflict, "already_guessed")
	case errors.Is(err, game.ErrGameAlreadyOver):
		writeError(w, http.StatusConflict, "game_over")
	default:
		log.Error().Err(err).Msg("game request failed")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}
