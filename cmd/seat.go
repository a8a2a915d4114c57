package cmd

import (
	"fmt"
	"strings"
)

// joinCommand turns a "name[:role]" argument into a join command.
func joinCommand(arg string) string {
	name, role, ok := strings.Cut(arg, ":")
	if !ok || role == "" {
		return fmt.Sprintf("join %q", name)
	}
	return fmt.Sprintf("join %q as: %s", name, role)
}
