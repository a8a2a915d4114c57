package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/suderio/coup/internal/engine"
)

// EventWrapper serializes polymorphic engine events to JSONL.
type EventWrapper struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Transcript is an append-only JSONL record of the events a table produced.
// It is a log for reading back, not a save file: games are not resumed from it.
type Transcript struct {
	file *os.File
}

// NewTranscript opens or creates a JSONL transcript at the given path.
func NewTranscript(path string) (*Transcript, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	return &Transcript{file: file}, nil
}

// Append marshals an engine Event and appends it as a JSONL line.
func (s *Transcript) Append(evt engine.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	wrapper := EventWrapper{
		Type: evt.Type(),
		Data: data,
	}

	line, err := json.Marshal(wrapper)
	if err != nil {
		return fmt.Errorf("failed to marshal wrapper: %w", err)
	}

	if _, err := s.file.Write(append(line, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close flushes and closes the underlying file.
func (s *Transcript) Close() error {
	return s.file.Close()
}

// ReadTranscript decodes every event of a transcript file, in order.
func ReadTranscript(path string) ([]engine.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer file.Close()

	var events []engine.Event
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var wrapper EventWrapper
		if err := json.Unmarshal(scanner.Bytes(), &wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode event wrapper: %w", err)
		}

		evt, err := unmarshalEvent(wrapper.Type, wrapper.Data)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}

	return events, scanner.Err()
}

// unmarshalEvent reconstructs a concrete Event from its type discriminator and JSON data.
func unmarshalEvent(typeName string, data json.RawMessage) (engine.Event, error) {
	var evt engine.Event

	switch typeName {
	case "PlayerRegisteredEvent":
		evt = &engine.PlayerRegisteredEvent{}
	case "GameStartedEvent":
		evt = &engine.GameStartedEvent{}
	case "CoinsTransferredEvent":
		evt = &engine.CoinsTransferredEvent{}
	case "PlayerStatusEvent":
		evt = &engine.PlayerStatusEvent{}
	case "SanctionEvent":
		evt = &engine.SanctionEvent{}
	case "ArrestMemoEvent":
		evt = &engine.ArrestMemoEvent{}
	case "BonusActionEvent":
		evt = &engine.BonusActionEvent{}
	case "PendingRecordedEvent":
		evt = &engine.PendingRecordedEvent{}
	case "PendingResolvedEvent":
		evt = &engine.PendingResolvedEvent{}
	case "PendingExpiredEvent":
		evt = &engine.PendingExpiredEvent{}
	case "TurnAdvancedEvent":
		evt = &engine.TurnAdvancedEvent{}
	case "GameOverEvent":
		evt = &engine.GameOverEvent{}
	case "CoinsRevealedEvent":
		evt = &engine.CoinsRevealedEvent{}
	case "CoupBlockedEvent":
		evt = &engine.CoupBlockedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", typeName)
	}

	if err := json.Unmarshal(data, evt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", typeName, err)
	}
	return evt, nil
}
