package engine

import "fmt"

// Bank is the account name of the treasury in transfers.
const Bank = ""

// Event is a single committed state change. Operations validate first and
// emit events; only events touch GameState.
type Event interface {
	Type() string
	Apply(state *GameState) error
	Message() string
}

func accountName(a string) string {
	if a == Bank {
		return "the treasury"
	}
	return a
}

// PlayerRegisteredEvent seats a player before the game starts.
type PlayerRegisteredEvent struct {
	Name string   `json:"name"`
	Role RoleKind `json:"role"`
}

func (e *PlayerRegisteredEvent) Type() string { return "PlayerRegisteredEvent" }
func (e *PlayerRegisteredEvent) Apply(state *GameState) error {
	state.Turns.Add(newPlayer(e.Name, e.Role))
	return nil
}
func (e *PlayerRegisteredEvent) Message() string {
	return fmt.Sprintf("%s joined as %s", e.Name, e.Role)
}

// GameStartedEvent funds the treasury and freezes the roster.
type GameStartedEvent struct {
	Treasury int `json:"treasury"`
}

func (e *GameStartedEvent) Type() string { return "GameStartedEvent" }
func (e *GameStartedEvent) Apply(state *GameState) error {
	if err := state.Turns.Start(state.Rules.MinPlayers); err != nil {
		return err
	}
	state.Treasury = NewTreasury(e.Treasury)
	state.Round = 1
	return nil
}
func (e *GameStartedEvent) Message() string {
	return fmt.Sprintf("game started with %d coins in the treasury", e.Treasury)
}

// CoinsTransferredEvent moves coins between two accounts.
type CoinsTransferredEvent struct {
	Transfer
	Reason ActionKind `json:"reason"`
}

func (e *CoinsTransferredEvent) Type() string { return "CoinsTransferredEvent" }
func (e *CoinsTransferredEvent) Apply(state *GameState) error {
	if e.Amount <= 0 {
		return ruleErr(ErrIllegalMove, "transfer amount must be positive, got %d", e.Amount)
	}
	var from, to *Player
	if e.From != Bank {
		p, ok := state.Turns.Find(e.From)
		if !ok {
			return ruleErr(ErrPlayerNotFound, "%s", e.From)
		}
		if p.coins < e.Amount {
			return ruleErr(ErrInsufficientFunds, "%s holds %d, needs %d", p.name, p.coins, e.Amount)
		}
		from = p
	}
	if e.To != Bank {
		p, ok := state.Turns.Find(e.To)
		if !ok {
			return ruleErr(ErrPlayerNotFound, "%s", e.To)
		}
		to = p
	}
	if from == nil {
		if err := state.Treasury.Debit(e.Amount); err != nil {
			return err
		}
	} else {
		from.coins -= e.Amount
	}
	if to == nil {
		return state.Treasury.Credit(e.Amount)
	}
	to.coins += e.Amount
	return nil
}
func (e *CoinsTransferredEvent) Message() string {
	return fmt.Sprintf("%d coin(s) from %s to %s (%s)", e.Amount, accountName(e.From), accountName(e.To), e.Reason)
}

// PlayerStatusEvent eliminates or reinstates a player.
type PlayerStatusEvent struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	By     string `json:"by"`
}

func (e *PlayerStatusEvent) Type() string { return "PlayerStatusEvent" }
func (e *PlayerStatusEvent) Apply(state *GameState) error {
	p, ok := state.Turns.Find(e.Name)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%s", e.Name)
	}
	p.active = e.Active
	return nil
}
func (e *PlayerStatusEvent) Message() string {
	if e.Active {
		return fmt.Sprintf("%s is back in the game thanks to %s", e.Name, e.By)
	}
	if e.By == "" {
		return fmt.Sprintf("%s left the game", e.Name)
	}
	return fmt.Sprintf("%s was eliminated by %s", e.Name, e.By)
}

// SanctionEvent places or lifts a sanction.
type SanctionEvent struct {
	Name       string `json:"name"`
	By         string `json:"by"`
	Sanctioned bool   `json:"sanctioned"`
}

func (e *SanctionEvent) Type() string { return "SanctionEvent" }
func (e *SanctionEvent) Apply(state *GameState) error {
	p, ok := state.Turns.Find(e.Name)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%s", e.Name)
	}
	p.setSanction(e.Sanctioned)
	return nil
}
func (e *SanctionEvent) Message() string {
	if e.Sanctioned {
		return fmt.Sprintf("%s is sanctioned by %s", e.Name, e.By)
	}
	return fmt.Sprintf("%s is no longer sanctioned", e.Name)
}

// ArrestMemoEvent remembers whom an actor arrested last.
type ArrestMemoEvent struct {
	Actor  string `json:"actor"`
	Target string `json:"target"`
}

func (e *ArrestMemoEvent) Type() string { return "ArrestMemoEvent" }
func (e *ArrestMemoEvent) Apply(state *GameState) error {
	p, ok := state.Turns.Find(e.Actor)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%s", e.Actor)
	}
	p.lastArrested = e.Target
	return nil
}
func (e *ArrestMemoEvent) Message() string {
	return fmt.Sprintf("%s arrested %s", e.Actor, e.Target)
}

// BonusActionEvent grants or spends extra actions within a turn.
type BonusActionEvent struct {
	Name  string `json:"name"`
	Delta int    `json:"delta"`
}

func (e *BonusActionEvent) Type() string { return "BonusActionEvent" }
func (e *BonusActionEvent) Apply(state *GameState) error {
	p, ok := state.Turns.Find(e.Name)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%s", e.Name)
	}
	p.bonusActions += e.Delta
	if p.bonusActions < 0 {
		p.bonusActions = 0
	}
	return nil
}
func (e *BonusActionEvent) Message() string {
	if e.Delta > 0 {
		return fmt.Sprintf("%s gains an extra action", e.Name)
	}
	return fmt.Sprintf("%s uses an extra action", e.Name)
}

// PendingRecordedEvent opens a contest window on an action.
type PendingRecordedEvent struct {
	Entry PendingAction `json:"entry"`
}

func (e *PendingRecordedEvent) Type() string { return "PendingRecordedEvent" }
func (e *PendingRecordedEvent) Apply(state *GameState) error {
	entry := e.Entry
	entry.Round = state.Round
	state.Pending.Record(entry)
	return nil
}
func (e *PendingRecordedEvent) Message() string {
	if e.Entry.Target != "" {
		return fmt.Sprintf("%s's %s on %s is open to contest", e.Entry.Actor, e.Entry.Kind, e.Entry.Target)
	}
	return fmt.Sprintf("%s's %s is open to contest", e.Entry.Actor, e.Entry.Kind)
}

// PendingResolvedEvent closes one entry, either contested or consumed.
type PendingResolvedEvent struct {
	Seq   int        `json:"seq"`
	Actor string     `json:"actor"`
	Kind  ActionKind `json:"kind"`
	By    string     `json:"by"`
}

func (e *PendingResolvedEvent) Type() string { return "PendingResolvedEvent" }
func (e *PendingResolvedEvent) Apply(state *GameState) error {
	return state.Pending.Remove(e.Seq)
}
func (e *PendingResolvedEvent) Message() string {
	return fmt.Sprintf("%s's %s was resolved by %s", e.Actor, e.Kind, e.By)
}

// PendingExpiredEvent closes the windows an actor still has open.
type PendingExpiredEvent struct {
	Actor string `json:"actor"`
}

func (e *PendingExpiredEvent) Type() string { return "PendingExpiredEvent" }
func (e *PendingExpiredEvent) Apply(state *GameState) error {
	state.Pending.Expire(e.Actor)
	return nil
}
func (e *PendingExpiredEvent) Message() string {
	return fmt.Sprintf("%s's actions are final", e.Actor)
}

// TurnAdvancedEvent passes the turn.
type TurnAdvancedEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (e *TurnAdvancedEvent) Type() string { return "TurnAdvancedEvent" }
func (e *TurnAdvancedEvent) Apply(state *GameState) error {
	next, err := state.Turns.Advance()
	if err != nil {
		return err
	}
	if next.name != e.To {
		return fmt.Errorf("turn passed to %s, planned for %s", next.name, e.To)
	}
	state.Round++
	return nil
}
func (e *TurnAdvancedEvent) Message() string {
	return fmt.Sprintf("it is now %s's turn", e.To)
}

// GameOverEvent marks the end of play.
type GameOverEvent struct {
	Winner string `json:"winner"`
}

func (e *GameOverEvent) Type() string { return "GameOverEvent" }
func (e *GameOverEvent) Apply(state *GameState) error {
	state.Over = true
	return nil
}
func (e *GameOverEvent) Message() string {
	return fmt.Sprintf("%s wins the game", e.Winner)
}

// CoinsRevealedEvent reports what a spy saw. It changes nothing.
type CoinsRevealedEvent struct {
	Spy    string `json:"spy"`
	Target string `json:"target"`
	Coins  int    `json:"coins"`
}

func (e *CoinsRevealedEvent) Type() string                 { return "CoinsRevealedEvent" }
func (e *CoinsRevealedEvent) Apply(state *GameState) error { return nil }
func (e *CoinsRevealedEvent) Message() string {
	return fmt.Sprintf("%s spied on %s: %d coin(s)", e.Spy, e.Target, e.Coins)
}

// CoupBlockedEvent reports a coup stopped by a prepared defense.
type CoupBlockedEvent struct {
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Defender string `json:"defender"`
}

func (e *CoupBlockedEvent) Type() string                 { return "CoupBlockedEvent" }
func (e *CoupBlockedEvent) Apply(state *GameState) error { return nil }
func (e *CoupBlockedEvent) Message() string {
	return fmt.Sprintf("%s's coup on %s was blocked by %s", e.Attacker, e.Target, e.Defender)
}
