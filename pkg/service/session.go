//nolint:whitespace // can't make both editor and linter happy
package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridrival/season-manager-go/log"
	"github.com/gridrival/season-manager-go/pkg/catalog"
	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/repository"
	gamerepos "github.com/gridrival/season-manager-go/pkg/repository/game"
	outcomerepos "github.com/gridrival/season-manager-go/pkg/repository/outcome"
	"github.com/gridrival/season-manager-go/pkg/season"
)

// GameSessionManager owns the phase state machine and every mutating
// operation on a game record. Each operation runs in one database
// transaction holding a row lock on the game, so concurrent writers on
// the same game are serialized.
type GameSessionManager struct {
	pool     *pgxpool.Pool
	resolver *season.Resolver
	log      *log.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

type Option func(*GameSessionManager)

func WithPool(pool *pgxpool.Pool) Option {
	return func(s *GameSessionManager) {
		s.pool = pool
	}
}

func WithResolver(resolver *season.Resolver) Option {
	return func(s *GameSessionManager) {
		s.resolver = resolver
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *GameSessionManager) {
		s.now = now
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *GameSessionManager) {
		s.tracer = tracer
	}
}

func NewGameSessionManager(opts ...Option) *GameSessionManager {
	ret := &GameSessionManager{
		log: log.Default().Named("service.session"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.resolver == nil {
		ret.resolver = season.NewResolver()
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer("gsm")
	}
	return ret
}

// Create allocates a fresh game. The creator occupies slot 0 and the
// game starts in the team selection phase.
func (s *GameSessionManager) Create(ctx context.Context, name, creator string) (
	*model.Game, error,
) {
	var ret *model.Game
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		now := s.now()
		id, err := gamerepos.NextID(ctx, tx, now)
		if err != nil {
			return err
		}
		ret = &model.Game{
			ID:        id,
			Name:      name,
			Creator:   creator,
			CreatedAt: now,
			Phase:     model.PhaseTeamSelection,
			Players:   []model.Player{{Username: creator, Slot: 0, JoinedAt: now}},
		}
		return gamerepos.Create(ctx, tx, ret)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("game created",
		log.String("id", ret.ID),
		log.String("name", name),
		log.String("creator", creator))
	return ret, nil
}

// Join adds a player on the lowest free slot. Idempotent: joining with a
// username already present returns the current state unchanged.
func (s *GameSessionManager) Join(ctx context.Context, gameID, username string) (
	*model.Game, error,
) {
	return s.mutate(ctx, gameID, func(g *model.Game) error {
		if g.PlayerByUsername(username) != nil {
			return nil
		}
		if g.Phase != model.PhaseTeamSelection {
			return ErrWrongPhase
		}
		slot := g.FreeSlot()
		if slot < 0 {
			return ErrGameFull
		}
		g.Players = append(g.Players, model.Player{
			Username: username,
			Slot:     slot,
			JoinedAt: s.now(),
		})
		return nil
	})
}

// SelectTeam sets or overwrites the player's team. Changing the own team
// is allowed while the game is in the team selection phase; claiming a
// team held by another player is not.
func (s *GameSessionManager) SelectTeam(
	ctx context.Context, gameID, username, teamName string,
) (*model.Game, error) {
	return s.mutate(ctx, gameID, func(g *model.Game) error {
		if g.Phase != model.PhaseTeamSelection {
			return ErrWrongPhase
		}
		if _, ok := catalog.TeamByName(teamName); !ok {
			return ErrUnknownTeam
		}
		player := g.PlayerByUsername(username)
		if player == nil {
			return ErrPlayerNotFound
		}
		if holder := g.TeamHolder(teamName); holder != nil &&
			holder.Username != username {
			return ErrTeamTaken
		}
		player.Team = teamName
		return nil
	})
}

// SelectDrivers records the driver pair for a team. Both drivers must
// exist in the catalog, be distinct, not be claimed by another team in
// the same game, and their combined price must not exceed the team
// budget. When the last human controlled team records its pair the game
// advances to the pre-season phase.
func (s *GameSessionManager) SelectDrivers(
	ctx context.Context, gameID, teamName string, drivers [2]string,
) (*model.Game, error) {
	return s.mutate(ctx, gameID, func(g *model.Game) error {
		if g.Phase != model.PhaseDriverSelection {
			return ErrWrongPhase
		}
		team, ok := catalog.TeamByName(teamName)
		if !ok {
			return ErrUnknownTeam
		}
		if g.TeamHolder(teamName) == nil {
			return ErrTeamNotInGame
		}
		if drivers[0] == drivers[1] {
			return ErrDriversNotDistinct
		}
		cost := 0
		for _, name := range drivers {
			d, ok := catalog.DriverByName(name)
			if !ok {
				return ErrUnknownDriver
			}
			if claimedBy := g.DriverClaimedBy(name, teamName); claimedBy != "" {
				return ErrDriverTaken
			}
			cost += d.Price
		}
		if cost > team.Budget {
			return ErrBudgetExceeded
		}
		if g.Drivers == nil {
			g.Drivers = make(map[string][2]string)
		}
		g.Drivers[teamName] = drivers
		if g.AllTeamsHaveDrivers() {
			g.Phase = model.PhasePreSeason
		}
		return nil
	})
}

// ApplyUpgrade records the pre-season upgrade for a team, overwriting
// any prior selection. The budget check is advisory, budgets are never
// decremented.
func (s *GameSessionManager) ApplyUpgrade(
	ctx context.Context, gameID, teamName, upgradeID string,
) (*model.Game, error) {
	return s.mutate(ctx, gameID, func(g *model.Game) error {
		if g.Phase != model.PhasePreSeason {
			return ErrWrongPhase
		}
		team, ok := catalog.TeamByName(teamName)
		if !ok {
			return ErrUnknownTeam
		}
		if g.TeamHolder(teamName) == nil {
			return ErrTeamNotInGame
		}
		upgrade, ok := catalog.UpgradeByID(upgradeID)
		if !ok {
			return ErrUnknownUpgrade
		}
		if upgrade.Cost > team.Budget {
			return ErrBudgetExceeded
		}
		if g.Upgrades == nil {
			g.Upgrades = make(map[string]string)
		}
		g.Upgrades[teamName] = upgradeID
		return nil
	})
}

// AdvancePhase moves the game to the given phase. The target must be the
// immediate successor of the current phase and its precondition must
// hold; the manager validates both so an invalid transition is
// impossible regardless of caller discipline. The terminal phase is
// reached through ResolveSeason only.
func (s *GameSessionManager) AdvancePhase(
	ctx context.Context, gameID string, target model.Phase,
) (*model.Game, error) {
	return s.mutate(ctx, gameID, func(g *model.Game) error {
		next, ok := g.Phase.Next()
		if !ok || next != target {
			return ErrInvalidTransition
		}
		if !phasePrecondition(g, target) {
			return ErrPreconditionFailed
		}
		g.Phase = target
		return nil
	})
}

func phasePrecondition(g *model.Game, target model.Phase) bool {
	switch target {
	case model.PhaseDriverSelection:
		return g.AllPlayersTeamed()
	case model.PhasePreSeason:
		return g.AllTeamsHaveDrivers()
	case model.PhaseSeason:
		return g.AllTeamsHaveUpgrades()
	default:
		return false
	}
}

// ResolveSeason runs the season resolution: the outcome is computed,
// attached to the game, written to the outcome log and the record is
// moved from the active to the archived collection. All of it happens in
// one transaction, there is no intermediate state where the game exists
// in neither or both collections.
func (s *GameSessionManager) ResolveSeason(ctx context.Context, gameID string) (
	*model.Outcome, error,
) {
	ctx, span := s.tracer.Start(ctx, "session.resolveSeason")
	defer span.End()

	var ret *model.Outcome
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		g, err := s.loadForUpdate(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if g.Phase != model.PhaseSeason {
			return ErrWrongPhase
		}
		ret = s.resolver.Resolve(g)
		completed := s.now()
		g.Outcome = ret
		g.CompletedAt = &completed
		g.Phase = model.PhaseFinished
		if err := outcomerepos.Upsert(ctx, tx, g.ID, ret); err != nil {
			return err
		}
		return gamerepos.Archive(ctx, tx, g)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("season resolved",
		log.String("id", gameID),
		log.String("driversChampion", ret.DriversChampionship.Driver),
		log.String("constructorsChampion", ret.ConstructorsChampionship.Team))
	return ret, nil
}

// Get returns a game from the active collection, falling back to the
// archived collection. Games missing a phase are repaired by inference
// and persisted before use.
func (s *GameSessionManager) Get(ctx context.Context, gameID string) (
	*model.Game, error,
) {
	g, err := gamerepos.LoadByID(ctx, s.pool, gamerepos.Active, gameID)
	if err == nil {
		return s.repairPhase(ctx, g)
	}
	if !errors.Is(err, repository.ErrNoData) &&
		!errors.Is(err, repository.ErrCorruptData) {
		return nil, err
	}
	if errors.Is(err, repository.ErrCorruptData) {
		s.log.Warn("unreadable active game record",
			log.String("id", gameID), log.ErrorField(err))
	}
	g, err = gamerepos.LoadByID(ctx, s.pool, gamerepos.Archived, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrNoData) ||
			errors.Is(err, repository.ErrCorruptData) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return g, nil
}

// ListActive returns all active games sorted by creation date descending.
func (s *GameSessionManager) ListActive(ctx context.Context) ([]*model.Game, error) {
	return gamerepos.LoadAll(ctx, s.pool, gamerepos.Active)
}

// ListArchived returns all archived games sorted by completion date
// descending.
func (s *GameSessionManager) ListArchived(ctx context.Context) ([]*model.Game, error) {
	return gamerepos.LoadAll(ctx, s.pool, gamerepos.Archived)
}

// Delete removes a game from the active collection. Returns whether a
// game was removed; an unknown or archived id is not an error.
func (s *GameSessionManager) Delete(ctx context.Context, gameID string) (bool, error) {
	rows, err := gamerepos.DeleteByID(ctx, s.pool, gameID)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		s.log.Debug("game not found for delete", log.String("id", gameID))
		return false, nil
	}
	s.log.Info("game deleted", log.String("id", gameID))
	return true, nil
}

// mutate runs fn on the locked active game record and persists the
// result. A game present only in the archived collection yields a
// conflict, a game in neither collection a not-found error.
func (s *GameSessionManager) mutate(
	ctx context.Context, gameID string, fn func(g *model.Game) error,
) (*model.Game, error) {
	var ret *model.Game
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		g, err := s.loadForUpdate(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
		if _, err := gamerepos.Update(ctx, tx, g); err != nil {
			return err
		}
		ret = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *GameSessionManager) loadForUpdate(
	ctx context.Context, conn repository.Querier, gameID string,
) (*model.Game, error) {
	g, err := gamerepos.LoadByIDForUpdate(ctx, conn, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrNoData) {
			if archived, archErr := gamerepos.LoadByID(
				ctx, conn, gamerepos.Archived, gameID); archErr == nil && archived != nil {
				return nil, ErrGameArchived
			}
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	if !g.Phase.Valid() {
		g.Phase = model.InferPhase(g)
		s.log.Warn("repaired game without phase",
			log.String("id", g.ID),
			log.String("phase", string(g.Phase)))
	}
	return g, nil
}

// repairPhase persists an inferred phase for a loaded record outside a
// mutation. Pure records with a valid phase pass through untouched.
func (s *GameSessionManager) repairPhase(ctx context.Context, g *model.Game) (
	*model.Game, error,
) {
	if g.Phase.Valid() {
		return g, nil
	}
	g.Phase = model.InferPhase(g)
	s.log.Warn("repaired game without phase",
		log.String("id", g.ID),
		log.String("phase", string(g.Phase)))
	if _, err := gamerepos.Update(ctx, s.pool, g); err != nil {
		return nil, err
	}
	return g, nil
}
