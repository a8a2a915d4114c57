package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/suderio/coup/internal/parser"
)

func TestParseJoin(t *testing.T) {
	p := parser.Build()

	cmd, err := p.ParseString("", "join alice as: governor")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Join == nil {
		t.Fatalf("Expected JoinCmd, got nil")
	}

	if cmd.Join.Name != "alice" {
		t.Errorf("Expected alice, got %s", cmd.Join.Name)
	}

	if cmd.Join.Role == nil || cmd.Join.Role.Name != "governor" {
		t.Errorf("Expected governor role, got %+v", cmd.Join.Role)
	}
}

func TestParseJoinQuotedName(t *testing.T) {
	p := parser.Build()

	cmd, err := p.ParseString("", `join "Lady Ann"`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Join == nil || cmd.Join.Name != "Lady Ann" {
		t.Fatalf("Expected quoted name to be unquoted, got %+v", cmd.Join)
	}

	if cmd.Join.Role != nil {
		t.Errorf("Expected no role, got %s", cmd.Join.Role.Name)
	}
}

func TestParseAction(t *testing.T) {
	p := parser.Build()

	t.Run("Actor and Target", func(t *testing.T) {
		cmd, err := p.ParseString("", "arrest by: alice to: bob")
		if err != nil {
			t.Fatalf("Failed to parse: %v", err)
		}

		if cmd.Generic == nil {
			t.Fatalf("Expected GenericCmd, got nil")
		}

		if cmd.Generic.Verb() != "arrest" {
			t.Errorf("Expected arrest, got %s", cmd.Generic.Verb())
		}

		if cmd.Generic.Actor == nil || cmd.Generic.Actor.Name != "alice" {
			t.Errorf("Expected actor alice, got %+v", cmd.Generic.Actor)
		}

		if cmd.Generic.Target == nil || cmd.Generic.Target.Name != "bob" {
			t.Errorf("Expected target bob, got %+v", cmd.Generic.Target)
		}
	})

	t.Run("Bare Verb", func(t *testing.T) {
		cmd, err := p.ParseString("", "Gather")
		if err != nil {
			t.Fatalf("Failed to parse: %v", err)
		}

		if cmd.Generic == nil || cmd.Generic.Verb() != "gather" {
			t.Fatalf("Expected gather, got %+v", cmd.Generic)
		}

		if cmd.Generic.Actor != nil || cmd.Generic.Target != nil {
			t.Errorf("Expected no clauses")
		}
	})

	t.Run("Target Only", func(t *testing.T) {
		cmd, err := p.ParseString("", "coup to: carol")
		if err != nil {
			t.Fatalf("Failed to parse: %v", err)
		}

		if cmd.Generic.Actor != nil {
			t.Errorf("Expected no actor, got %s", cmd.Generic.Actor.Name)
		}

		if cmd.Generic.Target == nil || cmd.Generic.Target.Name != "carol" {
			t.Errorf("Expected target carol")
		}
	})
}

func TestParseWho(t *testing.T) {
	p := parser.Build()

	cmd, err := p.ParseString("", `who "coins >= 3 && role == \"Spy\""`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Who == nil {
		t.Fatalf("Expected WhoCmd, got nil")
	}

	if cmd.Who.Expr != `coins >= 3 && role == "Spy"` {
		t.Errorf("Unexpected expression: %s", cmd.Who.Expr)
	}
}

func TestParseRejectsClauseOutOfOrder(t *testing.T) {
	p := parser.Build()

	if _, err := p.ParseString("", "arrest to: bob by: alice"); err == nil {
		t.Fatalf("Expected error for clauses out of order")
	}
}

func TestMapError(t *testing.T) {
	err := parser.MapError("coup by alice", errors.New("unexpected token"))
	if !strings.Contains(err.Error(), parser.Usage["coup"]) {
		t.Errorf("Expected coup usage, got %v", err)
	}

	err = parser.MapError("dance", errors.New("unexpected token"))
	if !strings.Contains(err.Error(), "wasn't able") {
		t.Errorf("Expected generic guidance, got %v", err)
	}
}
