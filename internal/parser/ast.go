package parser

import "strings"

// Command represents a top-level line typed at the table
type Command struct {
	Join    *JoinCmd    `parser:"( @@"`
	Who     *WhoCmd     `parser:"| @@"`
	Generic *GenericCmd `parser:"| @@ )"`
}

// JoinCmd seats a player, optionally with a chosen role
type JoinCmd struct {
	Keyword string    `parser:"@(\"join\"|\"Join\"|\"JOIN\")"`
	Name    string    `parser:"@(Ident|String)"`
	Role    *RoleExpr `parser:"@@?"`
}

// WhoCmd filters the table with a CEL expression
type WhoCmd struct {
	Keyword string `parser:"@(\"who\"|\"Who\"|\"WHO\")"`
	Expr    string `parser:"@String"`
}

// GenericCmd covers every game action and query: a verb plus optional
// "by:" and "to:" clauses
type GenericCmd struct {
	Name   string      `parser:"@Ident"`
	Actor  *ActorExpr  `parser:"@@?"`
	Target *TargetExpr `parser:"@@?"`
}

// Verb returns the command name lower-cased.
func (g *GenericCmd) Verb() string {
	return strings.ToLower(g.Name)
}

// ActorExpr maps parsing the optional "by: Someone" block
type ActorExpr struct {
	Keyword string `parser:"(\"by\"|\"By\"|\"BY\") \":\""`
	Name    string `parser:"@(Ident|String)"`
}

// TargetExpr maps parsing the optional "to: Someone" block
type TargetExpr struct {
	Keyword string `parser:"(\"to\"|\"To\"|\"TO\") \":\""`
	Name    string `parser:"@(Ident|String)"`
}

// RoleExpr maps parsing the optional "as: Role" block
type RoleExpr struct {
	Keyword string `parser:"(\"as\"|\"As\"|\"AS\") \":\""`
	Name    string `parser:"@Ident"`
}
