package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridrival/season-manager-go/log"
	"github.com/gridrival/season-manager-go/pkg/auth"
	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/service"
)

// Server exposes the game session operations as a JSON HTTP API.
type Server struct {
	manager *service.GameSessionManager
	auth    auth.AuthService
	log     *log.Logger
}

type Option func(*Server)

func WithPool(pool *pgxpool.Pool) Option {
	return func(srv *Server) {
		srv.manager = service.NewGameSessionManager(service.WithPool(pool))
		srv.auth = auth.NewAuthService(auth.WithPool(pool))
	}
}

func WithSessionManager(manager *service.GameSessionManager) Option {
	return func(srv *Server) { srv.manager = manager }
}

func WithAuthService(authService auth.AuthService) Option {
	return func(srv *Server) { srv.auth = authService }
}

func NewServer(opts ...Option) *Server {
	ret := &Server{log: log.Default().Named("rest")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Register attaches all API routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/games", s.createGame)
	mux.HandleFunc("GET /api/games", s.listActive)
	mux.HandleFunc("GET /api/games/archived", s.listArchived)
	mux.HandleFunc("GET /api/games/{id}", s.getGame)
	mux.HandleFunc("DELETE /api/games/{id}", s.deleteGame)
	mux.HandleFunc("POST /api/games/{id}/players", s.joinGame)
	mux.HandleFunc("POST /api/games/{id}/team", s.selectTeam)
	mux.HandleFunc("POST /api/games/{id}/drivers", s.selectDrivers)
	mux.HandleFunc("POST /api/games/{id}/upgrade", s.applyUpgrade)
	mux.HandleFunc("POST /api/games/{id}/phase", s.advancePhase)
	mux.HandleFunc("POST /api/games/{id}/resolve", s.resolveSeason)
	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("POST /api/auth/login", s.login)
}

type createGameReq struct {
	Name    string `json:"name"`
	Creator string `json:"creator"`
}

func (s *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameReq
	if !s.decode(w, r, &req) {
		return
	}
	game, err := s.manager.Create(r.Context(), req.Name, req.Creator)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, game)
}

func (s *Server) listActive(w http.ResponseWriter, r *http.Request) {
	games, err := s.manager.ListActive(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, games)
}

func (s *Server) listArchived(w http.ResponseWriter, r *http.Request) {
	games, err := s.manager.ListArchived(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, games)
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.manager.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, game)
}

func (s *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.manager.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

type joinReq struct {
	Username string `json:"username"`
}

func (s *Server) joinGame(w http.ResponseWriter, r *http.Request) {
	var req joinReq
	if !s.decode(w, r, &req) {
		return
	}
	game, err := s.manager.Join(r.Context(), r.PathValue("id"), req.Username)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, game)
}

type selectTeamReq struct {
	Username string `json:"username"`
	Team     string `json:"team"`
}

func (s *Server) selectTeam(w http.ResponseWriter, r *http.Request) {
	var req selectTeamReq
	if !s.decode(w, r, &req) {
		return
	}
	game, err := s.manager.SelectTeam(r.Context(), r.PathValue("id"),
		req.Username, req.Team)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, game)
}

type selectDriversReq struct {
	Team    string    `json:"team"`
	Drivers [2]string `json:"drivers"`
}

func (s *Server) selectDrivers(w http.ResponseWriter, r *http.Request) {
	var req selectDriversReq
	if !s.decode(w, r, &req) {
		return
	}
	game, err := s.manager.SelectDrivers(r.Context(), r.PathValue("id"),
		req.Team, req.Drivers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, game)
}

type applyUpgradeReq struct {
	Team    string `json:"team"`
	Upgrade string `json:"upgrade"`
}

func (s *Server) applyUpgrade(w http.ResponseWriter, r *http.Request) {
	var req applyUpgradeReq
	if !s.decode(w, r, &req) {
		return
	}
	game, err := s.manager.ApplyUpgrade(r.Context(), r.PathValue("id"),
		req.Team, req.Upgrade)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, game)
}

type advancePhaseReq struct {
	Phase string `json:"phase"`
}

func (s *Server) advancePhase(w http.ResponseWriter, r *http.Request) {
	var req advancePhaseReq
	if !s.decode(w, r, &req) {
		return
	}
	phase, err := model.ParsePhase(req.Phase)
	if err != nil {
		s.writeError(w, service.ErrInvalidInput)
		return
	}
	game, err := s.manager.AdvancePhase(r.Context(), r.PathValue("id"), phase)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, game)
}

func (s *Server) resolveSeason(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.manager.ResolveSeason(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, outcome)
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			s.writeJSON(w, http.StatusConflict,
				map[string]string{"error": err.Error()})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if !s.decode(w, r, &req) {
		return
	}
	ok, err := s.auth.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized,
			map[string]string{"error": "invalid credentials"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"username": req.Username})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		s.writeJSON(w, http.StatusBadRequest,
			map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("could not write response", log.ErrorField(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		s.log.Error("request failed", log.ErrorField(err))
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
