package engine

import (
	"fmt"
	"strings"
)

// RoleKind is the closed set of roles a player can hold.
type RoleKind int

const (
	RoleBase RoleKind = iota
	RoleGovernor
	RoleSpy
	RoleBaron
	RoleGeneral
	RoleJudge
	RoleMerchant
)

// Specialized lists the six roles dealt by random registration.
var Specialized = []RoleKind{RoleGovernor, RoleSpy, RoleBaron, RoleGeneral, RoleJudge, RoleMerchant}

func (r RoleKind) String() string {
	switch r {
	case RoleBase:
		return "Base"
	case RoleGovernor:
		return "Governor"
	case RoleSpy:
		return "Spy"
	case RoleBaron:
		return "Baron"
	case RoleGeneral:
		return "General"
	case RoleJudge:
		return "Judge"
	case RoleMerchant:
		return "Merchant"
	}
	return fmt.Sprintf("RoleKind(%d)", int(r))
}

// ParseRoleKind resolves a role name case-insensitively. "player" is accepted
// as an alias for the base role.
func ParseRoleKind(s string) (RoleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "base", "player":
		return RoleBase, nil
	case "governor":
		return RoleGovernor, nil
	case "spy":
		return RoleSpy, nil
	case "baron":
		return RoleBaron, nil
	case "general":
		return RoleGeneral, nil
	case "judge":
		return RoleJudge, nil
	case "merchant":
		return RoleMerchant, nil
	}
	return RoleBase, fmt.Errorf("unknown role %q", s)
}

func (r RoleKind) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RoleKind) UnmarshalText(b []byte) error {
	kind, err := ParseRoleKind(string(b))
	if err != nil {
		return err
	}
	*r = kind
	return nil
}

// TaxYield is what a tax pays this role.
func (r RoleKind) TaxYield(rs Ruleset) int {
	if r == RoleGovernor {
		return rs.GovernorTaxYield
	}
	return rs.TaxYield
}

// BribeCost is what a bribe costs this role.
func (r RoleKind) BribeCost(rs Ruleset) int {
	if r == RoleBaron {
		return rs.BaronBribeCost
	}
	return rs.BribeCost
}

// SanctionCost is what sanctioning a player of role r costs the sanctioner.
func (r RoleKind) SanctionCost(rs Ruleset) int {
	if r == RoleJudge {
		return rs.SanctionCost + rs.JudgeSanctionSurcharge
	}
	return rs.SanctionCost
}

// CanUndo reports whether the role may contest a pending action of kind.
func (r RoleKind) CanUndo(kind ActionKind) bool {
	switch r {
	case RoleGovernor:
		return kind == ActionTax
	case RoleJudge:
		return kind == ActionBribe
	case RoleGeneral:
		return kind == ActionCoup
	case RoleSpy:
		return kind == ActionArrest
	case RoleBase, RoleBaron, RoleMerchant:
		return false
	}
	return false
}

// Allows reports whether the role may take kind at all. Role-exclusive
// actions belong to one role; everything else is open to all.
func (r RoleKind) Allows(kind ActionKind) bool {
	switch kind {
	case ActionInvest:
		return r == RoleBaron
	case ActionBlockArrest:
		return r == RoleSpy
	case ActionBlockCoup:
		return r == RoleGeneral
	}
	return true
}

// ActionKind names an action as it appears in the pending log.
type ActionKind string

const (
	ActionGather       ActionKind = "gather"
	ActionTax          ActionKind = "tax"
	ActionBribe        ActionKind = "bribe"
	ActionArrest       ActionKind = "arrest"
	ActionSanction     ActionKind = "sanction"
	ActionCoup         ActionKind = "coup"
	ActionInvest       ActionKind = "invest"
	ActionBlockArrest  ActionKind = "block_arrest"
	ActionBlockCoup    ActionKind = "block_coup"
	ActionCompensation ActionKind = "compensation"
)

// Transfer reasons that are not pending-log kinds.
const (
	reasonStartingCoins ActionKind = "starting_coins"
	reasonTurnBonus     ActionKind = "turn_bonus"
	reasonContest       ActionKind = "undo"
)

// contestOrder is the order in which undo looks for something to contest.
var contestOrder = []ActionKind{ActionTax, ActionBribe, ActionCoup, ActionArrest}
