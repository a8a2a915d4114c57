package rules

import "github.com/google/cel-go/cel"

// Var is one variable visible to player queries.
type Var struct {
	Name string
	Type *cel.Type
	Doc  string
}

// Vars lists the variables bound for every seat, in help order.
var Vars = []Var{
	{"name", cel.StringType, "player name"},
	{"role", cel.StringType, `role name, e.g. "Spy"`},
	{"coins", cel.IntType, "coins held"},
	{"active", cel.BoolType, "still in the game"},
	{"sanctioned", cel.BoolType, "under sanction"},
	{"bonus_actions", cel.IntType, "extra actions left this turn"},
	{"last_arrested", cel.StringType, "the last player this one arrested"},
	{"turn", cel.BoolType, "it is this player's turn"},
	{"moves", cel.ListType(cel.StringType), `legal actions right now, e.g. "coup bob"`},
	{"treasury", cel.IntType, "coins in the treasury"},
	{"rules", cel.MapType(cel.StringType, cel.IntType), "the ruleset, e.g. rules.coup_cost"},
}
