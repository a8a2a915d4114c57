package session

import (
	"strings"

	"github.com/suderio/coup/internal/engine"
)

// NoticeEvent answers a query. It changes nothing and is never recorded.
type NoticeEvent struct {
	Topic string   `json:"topic"`
	Lines []string `json:"lines"`
}

func (e *NoticeEvent) Type() string { return "NoticeEvent" }
func (e *NoticeEvent) Apply(state *engine.GameState) error {
	return nil
}
func (e *NoticeEvent) Message() string {
	return strings.Join(e.Lines, "\n")
}
