package engine

// GameState is everything the rules read and events write.
type GameState struct {
	ID       string
	Rules    Ruleset
	Treasury *Treasury
	Turns    *TurnSequencer
	Pending  *PendingLog

	// Round counts turns since the start; pending entries carry it.
	Round int
	Over  bool
}

// NewGameState creates an empty, unstarted game.
func NewGameState(id string, rules Ruleset) *GameState {
	return &GameState{
		ID:       id,
		Rules:    rules,
		Treasury: NewTreasury(0),
		Turns:    NewTurnSequencer(),
		Pending:  NewPendingLog(),
	}
}

// balance reads an account: a player's coins, or the treasury for "".
func (s *GameState) balance(account string) int {
	if account == Bank {
		return s.Treasury.Balance()
	}
	if p, ok := s.Turns.Find(account); ok {
		return p.coins
	}
	return 0
}

// TotalCoins is the treasury plus every player's coins, eliminated players
// included. It is constant for the life of a started game.
func (s *GameState) TotalCoins() int {
	total := s.Treasury.Balance()
	for _, p := range s.Turns.All() {
		total += p.coins
	}
	return total
}
