package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game is the rules engine for one table. It is not safe for concurrent use;
// callers serialize access.
type Game struct {
	state   *GameState
	logger  *zap.Logger
	rng     *rand.Rand
	journal []Event
}

type options struct {
	logger *zap.Logger
	rng    *rand.Rand
	id     string
}

// Option configures a Game.
type Option func(*options)

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRand sets the source used for random role assignment.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithID fixes the game id instead of generating one.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// New creates an unstarted game played under rules.
func New(rules Ruleset, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ruleset: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	return &Game{
		state:  NewGameState(o.id, rules),
		logger: o.logger.With(zap.String("game_id", o.id)),
		rng:    o.rng,
	}, nil
}

// run plans an operation and commits its events only if planning succeeded.
func (g *Game) run(op, actor string, fn func(p *plan) error) (*plan, error) {
	p := newPlan(g.state)
	if err := fn(p); err != nil {
		g.logger.Debug("action rejected",
			zap.String("action", op),
			zap.String("actor", actor),
			zap.String("kind", Kind(err)),
			zap.Error(err),
		)
		return nil, err
	}
	for _, evt := range p.events {
		if err := evt.Apply(g.state); err != nil {
			g.logger.Error("planned event failed to apply",
				zap.String("type", evt.Type()),
				zap.Error(err),
			)
			return nil, fmt.Errorf("apply %s: %w", evt.Type(), err)
		}
		g.journal = append(g.journal, evt)
		g.logger.Debug("event",
			zap.String("type", evt.Type()),
			zap.String("message", evt.Message()),
		)
	}
	g.announce(p.events)
	return p, nil
}

// announce logs the milestones of a committed operation.
func (g *Game) announce(events []Event) {
	for _, evt := range events {
		switch e := evt.(type) {
		case *GameStartedEvent:
			g.logger.Info("game started",
				zap.Int("players", g.state.Turns.Len()),
				zap.Int("treasury", e.Treasury),
			)
		case *GameOverEvent:
			g.logger.Info("game over", zap.String("winner", e.Winner))
			return
		case *TurnAdvancedEvent:
		default:
			continue
		}
		cur := g.state.Turns.Current()
		if cur != nil && !g.state.Over && cur.coins >= g.state.Rules.MustCoupAt {
			g.logger.Info("player must coup this turn",
				zap.String("player", cur.name),
				zap.Int("coins", cur.coins),
			)
		}
	}
}

// Register seats a player with the given role.
func (g *Game) Register(name string, role RoleKind) (Handle, error) {
	name = strings.TrimSpace(name)
	if _, err := g.run("register", name, func(p *plan) error { return p.register(name, role) }); err != nil {
		return Handle{}, err
	}
	return Handle{g: g, name: name}, nil
}

// RegisterRandom seats a player with a specialized role drawn from the game's
// random source.
func (g *Game) RegisterRandom(name string) (Handle, error) {
	return g.Register(name, randomRole(g.rng))
}

// Start funds the treasury, deals starting coins and gives the first seat
// the turn.
func (g *Game) Start() error {
	_, err := g.run("start", "", (*plan).start)
	return err
}

// Do runs the named action for actor. Untargeted actions ignore target.
func (g *Game) Do(action, actor, target string) ([]Event, error) {
	pl, ok := lookupPlanner(action)
	if !ok {
		return nil, ruleErr(ErrIllegalMove, "unknown action %q", action)
	}
	p, err := g.run(action, actor, func(p *plan) error { return pl.run(p, actor, target) })
	if err != nil {
		return nil, err
	}
	return p.events, nil
}

// Eliminate takes a player out of the game outside normal play, as when
// they forfeit. The turn passes on if it was theirs.
func (g *Game) Eliminate(name string) ([]Event, error) {
	p, err := g.run("eliminate", name, func(p *plan) error { return p.eliminate(name) })
	if err != nil {
		return nil, err
	}
	return p.events, nil
}

func (g *Game) spyOn(actor, target string) (int, error) {
	p, err := g.run(OpSpyOn, actor, func(p *plan) error { return p.spyOn(actor, target) })
	if err != nil {
		return 0, err
	}
	return p.revealed, nil
}

// Winner returns the last active player.
func (g *Game) Winner() (string, error) {
	if !g.state.Turns.Started() {
		return "", ruleErr(ErrGameStillRunning, "the game has not started")
	}
	active := g.state.Turns.Active()
	if len(active) != 1 {
		return "", ruleErr(ErrGameStillRunning, "%d players still active", len(active))
	}
	return active[0].name, nil
}

// CurrentTurn names the player to act, or "" before the game starts.
func (g *Game) CurrentTurn() string {
	if cur := g.state.Turns.Current(); cur != nil {
		return cur.name
	}
	return ""
}

func (g *Game) ActivePlayers() []string {
	var names []string
	for _, p := range g.state.Turns.Active() {
		names = append(names, p.name)
	}
	return names
}

// Players returns a snapshot of every seat in registration order.
func (g *Game) Players() []PlayerView {
	views := make([]PlayerView, 0, g.state.Turns.Len())
	for _, p := range g.state.Turns.All() {
		views = append(views, p.view())
	}
	return views
}

func (g *Game) Player(name string) (PlayerView, error) {
	p, ok := g.state.Turns.Find(name)
	if !ok {
		return PlayerView{}, ruleErr(ErrPlayerNotFound, "%q", name)
	}
	return p.view(), nil
}

func (g *Game) Coins(name string) (int, error) {
	v, err := g.Player(name)
	return v.Coins, err
}

func (g *Game) Role(name string) (RoleKind, error) {
	v, err := g.Player(name)
	return v.Role, err
}

func (g *Game) Treasury() int            { return g.state.Treasury.Balance() }
func (g *Game) Pending() []PendingAction { return g.state.Pending.Entries() }
func (g *Game) IsOver() bool             { return g.state.Over }
func (g *Game) ID() string               { return g.state.ID }
func (g *Game) Rules() Ruleset           { return g.state.Rules }
func (g *Game) Round() int               { return g.state.Round }
func (g *Game) TotalCoins() int          { return g.state.TotalCoins() }
func (g *Game) Started() bool            { return g.state.Turns.Started() }

// Journal returns every committed event in order.
func (g *Game) Journal() []Event {
	out := make([]Event, len(g.journal))
	copy(out, g.journal)
	return out
}

func (p *plan) register(name string, role RoleKind) error {
	s := p.state
	if s.Turns.Started() {
		return ruleErr(ErrGameAlreadyStarted, "%s cannot join a running game", name)
	}
	if s.Turns.Len() >= s.Rules.MaxPlayers {
		return ruleErr(ErrTooManyPlayers, "the table seats %d", s.Rules.MaxPlayers)
	}
	if _, ok := s.Turns.Find(name); ok {
		return ruleErr(ErrDuplicateName, "%q is taken", name)
	}
	if name == "" {
		return ruleErr(ErrIllegalMove, "player name must not be empty")
	}
	if role < RoleBase || role > RoleMerchant {
		return ruleErr(ErrIllegalMove, "unknown role %s", role)
	}
	p.emit(&PlayerRegisteredEvent{Name: name, Role: role})
	return nil
}

func (p *plan) start() error {
	s := p.state
	if s.Turns.Started() {
		return ruleErr(ErrGameAlreadyStarted, "the game is already running")
	}
	if s.Turns.Len() < s.Rules.MinPlayers {
		return ruleErr(ErrNotEnoughPlayers, "need at least %d players, have %d", s.Rules.MinPlayers, s.Turns.Len())
	}
	p.emit(&GameStartedEvent{Treasury: s.Rules.TreasuryStart})
	p.balances[Bank] = s.Rules.TreasuryStart
	for _, pl := range s.Turns.All() {
		if err := p.transfer(Transfer{From: Bank, To: pl.name, Amount: s.Rules.StartingCoins}, reasonStartingCoins); err != nil {
			return err
		}
	}
	return p.openTurn(s.Turns.All()[0])
}
