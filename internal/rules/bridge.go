package rules

import (
	"github.com/suderio/coup/internal/engine"
	"gopkg.in/yaml.v3"
)

// ContextFromPlayer converts a player snapshot into a map suitable for CEL evaluation.
func ContextFromPlayer(v engine.PlayerView, moves []engine.Move) map[string]any {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	return map[string]any{
		"name":          v.Name,
		"role":          v.Role.String(),
		"coins":         v.Coins,
		"active":        v.Active,
		"sanctioned":    v.UnderSanction,
		"bonus_actions": v.BonusActions,
		"last_arrested": v.LastArrested,
		"moves":         names,
	}
}

// BuildEvalContexts creates one context per seat, with the table-wide
// variables filled in.
func BuildEvalContexts(g *engine.Game) []map[string]any {
	rulesMap := RulesMap(g.Rules())
	players := g.Players()
	out := make([]map[string]any, 0, len(players))
	for _, v := range players {
		ctx := ContextFromPlayer(v, g.LegalActions(v.Name))
		ctx["turn"] = g.CurrentTurn() == v.Name
		ctx["treasury"] = g.Treasury()
		ctx["rules"] = rulesMap
		out = append(out, ctx)
	}
	return out
}

// RulesMap flattens a ruleset into its YAML keys.
func RulesMap(rs engine.Ruleset) map[string]int64 {
	out := map[string]int64{}
	b, err := yaml.Marshal(rs)
	if err != nil {
		return out
	}
	_ = yaml.Unmarshal(b, &out)
	return out
}
