package agent

import (
	"encoding/json"
	"net/http"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/meta"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 16

type moveResponse struct {
	Move   string               `json:"move"`
	State  *game.State          `json:"state"`
	Search metrics.SearchMetric `json:"search"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type server struct {
	seed     uint64
	requests atomic.Uint64
}

// NewServer returns the move advice API. It keeps no game state: every request
// carries the position to move from.
//
//	GET  /healthz
//	GET  /strategies
//	POST /move/{strategy}   body: a game.State as JSON
func NewServer(seed uint64) http.Handler {
	s := &server{seed: seed}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.healthz)
	r.Get("/strategies", s.strategies)
	r.Post("/move/{strategy}", s.move)
	return r
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) strategies(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	for _, name := range Names() {
		if name != InteractiveStrategy {
			names = append(names, name)
		}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *server) move(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "strategy")
	if name == InteractiveStrategy {
		writeError(w, http.StatusNotFound, "interactive strategy is not served")
		return
	}
	a, err := New(name, Config{Seed: s.seed + s.requests.Add(1)})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var state game.State
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if state.Layout() == nil {
		writeError(w, http.StatusBadRequest, "missing state")
		return
	}
	if game.IsOver(&state) {
		writeError(w, http.StatusUnprocessableEntity, "game is over")
		return
	}
	if open := len(state.LegalMoves()); IsExhaustive(name) && open > meta.MAX_SERVED_SEARCH_CELLS {
		writeError(w, http.StatusUnprocessableEntity, "too many open cells for an exhaustive search")
		return
	}

	start := time.Now()
	g := &game.Game{CurrentState: &state}
	move, search, err := a.FindMove(g)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := g.Play(move); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("strategy", name).
		Int("side_length", state.SideLength()).
		Str("move", move.String()).
		Dur("duration", time.Since(start)).
		Msg("served move")
	writeJSON(w, http.StatusOK, moveResponse{Move: move.String(), State: g.CurrentState, Search: search})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
