package engine

// Transfer is one coin movement between two accounts. An empty account name
// is the treasury.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int    `json:"amount"`
}

// Reverse returns the movement that undoes t.
func (t Transfer) Reverse() Transfer {
	return Transfer{From: t.To, To: t.From, Amount: t.Amount}
}

// PendingAction is a provisionally applied action that can still be contested.
type PendingAction struct {
	Seq       int        `json:"seq"`
	Actor     string     `json:"actor"`
	Kind      ActionKind `json:"kind"`
	Target    string     `json:"target,omitempty"`
	Victim    string     `json:"victim,omitempty"`
	Round     int        `json:"round"`
	Transfers []Transfer `json:"transfers,omitempty"`
}

// PendingLog records contestable actions. It enforces no authorization; the
// contest rules decide who may resolve an entry.
type PendingLog struct {
	entries []PendingAction
	nextSeq int
}

func NewPendingLog() *PendingLog {
	return &PendingLog{nextSeq: 1}
}

// Record appends entry and returns its sequence number. Duplicates are kept.
func (l *PendingLog) Record(entry PendingAction) int {
	entry.Seq = l.nextSeq
	l.nextSeq++
	l.entries = append(l.entries, entry)
	return entry.Seq
}

func (l *PendingLog) Exists(actor string, kind ActionKind) bool {
	_, ok := l.Find(actor, kind)
	return ok
}

// Find returns the oldest entry for actor and kind without removing it.
func (l *PendingLog) Find(actor string, kind ActionKind) (PendingAction, bool) {
	for _, e := range l.entries {
		if e.Actor == actor && e.Kind == kind {
			return e, true
		}
	}
	return PendingAction{}, false
}

// FindFor is Find narrowed to entries aimed at target.
func (l *PendingLog) FindFor(actor string, kind ActionKind, target string) (PendingAction, bool) {
	for _, e := range l.entries {
		if e.Actor == actor && e.Kind == kind && e.Target == target {
			return e, true
		}
	}
	return PendingAction{}, false
}

// FindTargeting returns the oldest entry of kind aimed at target by anyone.
func (l *PendingLog) FindTargeting(kind ActionKind, target string) (PendingAction, bool) {
	for _, e := range l.entries {
		if e.Kind == kind && e.Target == target {
			return e, true
		}
	}
	return PendingAction{}, false
}

// Take removes and returns the oldest entry for actor and kind.
func (l *PendingLog) Take(actor string, kind ActionKind) (PendingAction, error) {
	for i, e := range l.entries {
		if e.Actor == actor && e.Kind == kind {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return e, nil
		}
	}
	return PendingAction{}, ruleErr(ErrNoPendingAction, "%s has no pending %s", actor, kind)
}

// Remove deletes the entry with the given sequence number.
func (l *PendingLog) Remove(seq int) error {
	for i, e := range l.entries {
		if e.Seq == seq {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return ruleErr(ErrNoPendingAction, "no pending entry #%d", seq)
}

// Clear drops every entry for actor and kind.
func (l *PendingLog) Clear(actor string, kind ActionKind) {
	l.filter(func(e PendingAction) bool { return e.Actor == actor && e.Kind == kind })
}

// Expire closes the windows actor opened. A spy's block_arrest outlives the
// spy's own turn: it stays armed until the watched player's arrest is undone
// or expires here together with it.
func (l *PendingLog) Expire(actor string) {
	arrested := l.Exists(actor, ActionArrest)
	l.filter(func(e PendingAction) bool {
		if e.Kind == ActionBlockArrest {
			return arrested && e.Target == actor
		}
		return e.Actor == actor
	})
}

func (l *PendingLog) filter(drop func(PendingAction) bool) {
	kept := l.entries[:0]
	for _, e := range l.entries {
		if !drop(e) {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// Entries returns a copy of the log in recording order.
func (l *PendingLog) Entries() []PendingAction {
	out := make([]PendingAction, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *PendingLog) Len() int {
	return len(l.entries)
}
