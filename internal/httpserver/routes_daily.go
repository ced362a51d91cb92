// internal/httpserver/routes_daily.go
//
// HTTP route for the "Daily" mode.
//   - POST /daily/new → start a session whose secret is fixed for today's UTC date.
//
// The daily session is an ordinary session afterwards: guesses, replay and
// suggestions go through the /game endpoints with the returned gameId.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/pokedle/apps/go-server/internal/daily"
	"github.com/robalobadob/pokedle/apps/go-server/internal/game"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyNew starts a session with the daily secret.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.startSession(w, r, game.DailyPicker(s.opts.DailySalt, s.opts.Now))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{
		GameID: sess.ID(),
		Status: sess.Status(),
		Total:  s.cat.Len(),
		Date:   daily.DateKey(s.opts.Now()),
	})
}
