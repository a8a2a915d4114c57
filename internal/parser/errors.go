package parser

import (
	"fmt"
	"strings"
)

// Usage lists the syntax of every command, keyed by command name.
var Usage = map[string]string{
	"join":     "join <name> [as: <role>]",
	"start":    "start",
	"gather":   "gather [by: <player>]",
	"tax":      "tax [by: <player>]",
	"bribe":    "bribe [by: <player>]",
	"arrest":   "arrest [by: <player>] to: <player>",
	"sanction": "sanction [by: <player>] to: <player>",
	"coup":     "coup [by: <player>] to: <player>",
	"invest":   "invest [by: <player>]",
	"spy":      "spy by: <spy> to: <player>",
	"defend":   "defend [by: <general>] to: <player>",
	"undo":     "undo by: <player> to: <player>",
	"leave":    "leave by: <player>",
	"status":   "status [to: <player>]",
	"pending":  "pending",
	"moves":    "moves [by: <player>]",
	"winner":   "winner",
	"who":      `who "<expression>"`,
	"help":     "help",
}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	if usage, ok := Usage[parts[0]]; ok {
		return fmt.Errorf("The command %s must be: %s", parts[0], usage)
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
