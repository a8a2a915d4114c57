package engine

// Treasury is the shared coin pool every cost and yield flows through.
type Treasury struct {
	balance int
}

// NewTreasury creates a treasury holding balance coins.
func NewTreasury(balance int) *Treasury {
	return &Treasury{balance: balance}
}

func (t *Treasury) Balance() int {
	return t.balance
}

// Credit adds coins to the pool.
func (t *Treasury) Credit(amount int) error {
	if amount <= 0 {
		return ruleErr(ErrIllegalMove, "treasury credit must be positive, got %d", amount)
	}
	t.balance += amount
	return nil
}

// Debit removes coins from the pool, failing when it cannot cover amount.
func (t *Treasury) Debit(amount int) error {
	if amount <= 0 {
		return ruleErr(ErrIllegalMove, "treasury debit must be positive, got %d", amount)
	}
	if t.balance < amount {
		return ruleErr(ErrInsufficientFunds, "treasury holds %d, needs %d", t.balance, amount)
	}
	t.balance -= amount
	return nil
}
