// Package transport implements the named-event channel to the routing
// service: a JSON frame codec for the event contract plus a websocket
// adapter. Nothing above this package knows about frames or sockets.
package transport

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"peerchat/domain"
	"peerchat/domain/event"
)

// Frame is one named event on the wire.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// wireMessage is the service's message shape: {from, msg, timestamp}.
type wireMessage struct {
	From      string `json:"from"`
	Msg       string `json:"msg"`
	Timestamp string `json:"timestamp"`
}

// timestampLayouts are tried in order; the service is not strict about its
// clock format and a message must never be dropped over it.
var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateTime}

func (w wireMessage) toDomain() domain.Message {
	var at time.Time
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, w.Timestamp); err == nil {
			at = parsed
			break
		}
	}
	return domain.Message{
		ID:        uuid.New(),
		From:      w.From,
		Text:      w.Msg,
		Timestamp: at,
	}
}

// EncodeCommand wraps an outbound command into its frame. Commands without a
// payload ("load users") encode with no data field.
func EncodeCommand(cmd domain.Command) ([]byte, error) {
	frame := Frame{Event: cmd.EventName()}

	var payload any
	switch c := cmd.(type) {
	case domain.LoadUsersCommand:
		payload = nil
	case domain.SubscribeCommand:
		payload = c.Subscription
	default:
		payload = cmd
	}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %q payload: %w", cmd.EventName(), err)
		}
		frame.Data = data
	}
	return json.Marshal(frame)
}

// DecodeEvent parses one inbound frame into its typed event.
func DecodeEvent(raw []byte) (event.Event, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	switch frame.Event {
	case "login success":
		username, err := decodeString(frame.Data)
		return event.LoginSucceeded{Username: username}, err
	case "signup successful":
		username, err := decodeString(frame.Data)
		return event.SignupSucceeded{Username: username}, err
	case "prompt signup":
		message, err := decodeString(frame.Data)
		return event.PromptSignup{Message: message}, err
	case "login failed":
		message, err := decodeString(frame.Data)
		return event.LoginFailed{Message: message}, err
	case "signup failed":
		message, err := decodeString(frame.Data)
		return event.SignupFailed{Message: message}, err
	case "setup failed":
		message, err := decodeString(frame.Data)
		return event.SetupFailed{Message: message}, err
	case "password setup successful":
		return event.PasswordSetupSucceeded{}, nil
	case "chat message":
		var msg wireMessage
		if err := json.Unmarshal(frame.Data, &msg); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		return event.MessageReceived{Message: msg.toDomain()}, nil
	case "chat history":
		var history []wireMessage
		if err := json.Unmarshal(frame.Data, &history); err != nil {
			return nil, fmt.Errorf("decode chat history: %w", err)
		}
		messages := lo.Map(history, func(m wireMessage, _ int) domain.Message {
			return m.toDomain()
		})
		return event.HistoryLoaded{Messages: messages}, nil
	case "users":
		var users []domain.User
		if err := json.Unmarshal(frame.Data, &users); err != nil {
			return nil, fmt.Errorf("decode users snapshot: %w", err)
		}
		return event.UsersSnapshot{Users: users}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", frame.Event)
	}
}

func decodeString(data json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("expected string payload: %w", err)
	}
	return s, nil
}
