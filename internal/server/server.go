// Package server exposes the battle engine over HTTP: one-shot simulation,
// catalog lookup, health, and a WebSocket stream of rounds.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"skirmish/internal/battle"
)

type Server struct {
	catalog   battle.Catalog
	maxRounds int // caps per-request bounds when > 0
	log       *zap.Logger
	router    *mux.Router
}

func New(catalog battle.Catalog, maxRounds int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{catalog: catalog, maxRounds: maxRounds, log: log, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.Use(s.logRequests)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/units", s.handleUnits).Methods(http.MethodGet)
	s.router.HandleFunc("/api/battles", s.handleSimulate).Methods(http.MethodPost)
	s.router.HandleFunc("/ws/battles", s.handleStream).Methods(http.MethodGet)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.log.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	})
}

// BattleRequest is one simulation ask: both compositions plus run knobs.
// Seed 0 lets the engine draw one (echoed back in the summary).
type BattleRequest struct {
	ArmyA     map[string]int `json:"army_a"`
	ArmyB     map[string]int `json:"army_b"`
	Seed      int64          `json:"seed,omitempty"`
	MaxRounds int            `json:"max_rounds,omitempty"`
}

type BattleResponse struct {
	ID     string         `json:"id"`
	Report *battle.Report `json:"report"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req BattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	rep, err := battle.SimulateSpecs(req.ArmyA, req.ArmyB, s.catalog, battle.Options{
		Seed:      req.Seed,
		MaxRounds: s.effectiveMaxRounds(req.MaxRounds),
	})
	if err != nil {
		var unknown *battle.UnknownUnitTypeError
		if errors.As(err, &unknown) {
			s.writeError(w, http.StatusBadRequest, unknown.Error())
			return
		}
		s.log.Error("simulate", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	id := uuid.NewString()
	s.log.Info("battle simulated",
		zap.String("id", id),
		zap.Stringer("winner", rep.Summary.Winner),
		zap.Int("rounds", rep.Summary.Rounds),
		zap.Int64("seed", rep.Summary.Seed))
	s.writeJSON(w, http.StatusOK, BattleResponse{ID: id, Report: rep})
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsMsg struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// handleStream upgrades, reads one BattleRequest, then pushes every round
// as it happens followed by the summary.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	var req BattleRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(wsMsg{Type: "error", Data: "invalid JSON"})
		return
	}

	id := uuid.NewString()
	rep, err := battle.SimulateSpecs(req.ArmyA, req.ArmyB, s.catalog, battle.Options{
		Seed:      req.Seed,
		MaxRounds: s.effectiveMaxRounds(req.MaxRounds),
		OnRound: func(rec battle.RoundRecord) {
			_ = conn.WriteJSON(wsMsg{Type: "round", Data: rec})
		},
	})
	if err != nil {
		_ = conn.WriteJSON(wsMsg{Type: "error", Data: err.Error()})
		return
	}

	s.log.Info("battle streamed",
		zap.String("id", id),
		zap.Stringer("winner", rep.Summary.Winner),
		zap.Int("rounds", rep.Summary.Rounds))
	_ = conn.WriteJSON(wsMsg{Type: "summary", Data: rep.Summary})
}

func (s *Server) effectiveMaxRounds(requested int) int {
	if s.maxRounds > 0 && (requested <= 0 || requested > s.maxRounds) {
		return s.maxRounds
	}
	return requested
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}
