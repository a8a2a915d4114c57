package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/suderio/coup/internal/engine"
	"github.com/suderio/coup/internal/parser"
	"github.com/suderio/coup/internal/rules"
	"go.uber.org/zap"
)

// Recorder receives every event that changed the game
type Recorder interface {
	Append(evt engine.Event) error
}

// Session manages the cohesive loop of taking commands, executing them against the game and recording the events
type Session struct {
	mu       sync.Mutex
	game     *engine.Game
	parser   *participle.Parser[parser.Command]
	registry *rules.Registry
	recorder Recorder
	logger   *zap.Logger
}

// NewSession wraps a game. The recorder and logger may be nil.
func NewSession(game *engine.Game, recorder Recorder, logger *zap.Logger) (*Session, error) {
	reg, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		game:     game,
		parser:   parser.Build(),
		registry: reg,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// Game returns the game this session drives. Callers must not act on it
// while Execute may run concurrently.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Execute takes a raw command string from a UI client, runs it and returns the events it produced
func (s *Session) Execute(input string) ([]engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input = strings.TrimSpace(input)
	astCmd, err := s.parser.ParseString("", input)
	if err != nil {
		return nil, parser.MapError(input, err)
	}
	s.logger.Debug("command", zap.String("input", input))

	switch {
	case astCmd.Join != nil:
		return s.join(astCmd.Join)
	case astCmd.Who != nil:
		return s.who(astCmd.Who.Expr)
	case astCmd.Generic != nil:
		return s.generic(astCmd.Generic)
	}
	return nil, fmt.Errorf("unsupported command pattern")
}

func (s *Session) join(cmd *parser.JoinCmd) ([]engine.Event, error) {
	return s.mutate(func() error {
		if cmd.Role == nil {
			_, err := s.game.RegisterRandom(cmd.Name)
			return err
		}
		role, err := engine.ParseRoleKind(cmd.Role.Name)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrIllegalMove, err)
		}
		_, err = s.game.Register(cmd.Name, role)
		return err
	})
}

func (s *Session) generic(cmd *parser.GenericCmd) ([]engine.Event, error) {
	verb := cmd.Verb()
	actor := s.game.CurrentTurn()
	if cmd.Actor != nil {
		actor = cmd.Actor.Name
	}
	target := ""
	if cmd.Target != nil {
		target = cmd.Target.Name
	}

	switch verb {
	case "start":
		return s.mutate(s.game.Start)
	case "leave":
		return s.mutate(func() error {
			_, err := s.game.Eliminate(actor)
			return err
		})
	case engine.OpArrest, engine.OpSanction, engine.OpCoup, engine.OpSpyOn, engine.OpDefend, engine.OpUndo:
		if target == "" {
			return nil, fmt.Errorf("The command %s must be: %s", verb, parser.Usage[verb])
		}
		fallthrough
	case engine.OpGather, engine.OpTax, engine.OpBribe, engine.OpInvest:
		if actor == "" {
			return nil, fmt.Errorf("%w: nobody can %s before the game starts", engine.ErrGameNotStarted, verb)
		}
		return s.mutate(func() error {
			_, err := s.game.Do(verb, actor, target)
			return err
		})
	case "status":
		return s.status(target)
	case "pending":
		return s.pending()
	case "moves":
		return s.moves(actor)
	case "winner":
		name, err := s.game.Winner()
		if err != nil {
			return nil, err
		}
		return notice("winner", fmt.Sprintf("%s wins the game", name)), nil
	case "help":
		return s.help(), nil
	}
	return nil, parser.MapError(verb, fmt.Errorf("unknown command %q", verb))
}

// mutate runs fn and returns the events it committed, recording each one.
func (s *Session) mutate(fn func() error) ([]engine.Event, error) {
	before := len(s.game.Journal())
	if err := fn(); err != nil {
		s.logger.Debug("command rejected", zap.String("kind", engine.Kind(err)), zap.Error(err))
		return nil, err
	}
	events := s.game.Journal()[before:]
	if s.recorder != nil {
		for _, evt := range events {
			if err := s.recorder.Append(evt); err != nil {
				return events, fmt.Errorf("failed to record event: %w", err)
			}
		}
	}
	return events, nil
}

func notice(topic string, lines ...string) []engine.Event {
	return []engine.Event{&NoticeEvent{Topic: topic, Lines: lines}}
}

func (s *Session) status(name string) ([]engine.Event, error) {
	players := s.game.Players()
	if name != "" {
		v, err := s.game.Player(name)
		if err != nil {
			return nil, err
		}
		players = []engine.PlayerView{v}
	}
	lines := []string{fmt.Sprintf("treasury: %d", s.game.Treasury())}
	if cur := s.game.CurrentTurn(); cur != "" {
		lines = append(lines, fmt.Sprintf("turn: %s (round %d)", cur, s.game.Round()))
	}
	for _, v := range players {
		lines = append(lines, describe(v))
	}
	return notice("status", lines...), nil
}

func describe(v engine.PlayerView) string {
	var flags []string
	if !v.Active {
		flags = append(flags, "eliminated")
	}
	if v.UnderSanction {
		flags = append(flags, "sanctioned")
	}
	if v.BonusActions > 0 {
		flags = append(flags, fmt.Sprintf("%d extra action(s)", v.BonusActions))
	}
	line := fmt.Sprintf("%s [%s] %d coin(s)", v.Name, v.Role, v.Coins)
	if len(flags) > 0 {
		line += " " + strings.Join(flags, ", ")
	}
	return line
}

func (s *Session) pending() ([]engine.Event, error) {
	entries := s.game.Pending()
	if len(entries) == 0 {
		return notice("pending", "nothing is open to contest"), nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("#%d %s: %s", e.Seq, e.Actor, e.Kind)
		if e.Target != "" {
			line += " on " + e.Target
		}
		lines = append(lines, line+fmt.Sprintf(" (round %d)", e.Round))
	}
	return notice("pending", lines...), nil
}

func (s *Session) moves(actor string) ([]engine.Event, error) {
	if _, err := s.game.Player(actor); err != nil {
		return nil, err
	}
	moves := s.game.LegalActions(actor)
	if len(moves) == 0 {
		return notice("moves", fmt.Sprintf("%s has nothing to do right now", actor)), nil
	}
	lines := make([]string, 0, len(moves))
	for _, m := range moves {
		lines = append(lines, m.String())
	}
	return notice("moves", lines...), nil
}

func (s *Session) who(expr string) ([]engine.Event, error) {
	names, err := s.registry.Filter(expr, rules.BuildEvalContexts(s.game))
	if err != nil {
		return nil, fmt.Errorf("who: %w", err)
	}
	if len(names) == 0 {
		return notice("who", "nobody"), nil
	}
	return notice("who", names...), nil
}

func (s *Session) help() []engine.Event {
	verbs := make([]string, 0, len(parser.Usage))
	for v := range parser.Usage {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	lines := make([]string, 0, len(verbs)+len(rules.Vars)+1)
	for _, v := range verbs {
		lines = append(lines, parser.Usage[v])
	}
	lines = append(lines, "who variables:")
	for _, v := range rules.Vars {
		lines = append(lines, fmt.Sprintf("  %s: %s", v.Name, v.Doc))
	}
	return notice("help", lines...)
}
