// Package event defines the inbound named events of the routing service
// contract, one type per event. The transport decodes frames into these and
// the dispatcher is their only consumer.
package event

import (
	"peerchat/domain"
)

type Event interface {
	EventName() string
}

// LoginSucceeded carries the authenticated username.
type LoginSucceeded struct {
	Username string
}

func (LoginSucceeded) EventName() string { return "login success" }

// PromptSignup means the service does not know the user (or the account has
// no password) and asks whether to create one.
type PromptSignup struct {
	Message string
}

func (PromptSignup) EventName() string { return "prompt signup" }

type SignupSucceeded struct {
	Username string
}

func (SignupSucceeded) EventName() string { return "signup successful" }

type LoginFailed struct {
	Message string
}

func (LoginFailed) EventName() string { return "login failed" }

type SignupFailed struct {
	Message string
}

func (SignupFailed) EventName() string { return "signup failed" }

// PasswordSetupSucceeded confirms a first-time password set. No payload;
// the session resolves the username from the submitted credentials.
type PasswordSetupSucceeded struct{}

func (PasswordSetupSucceeded) EventName() string { return "password setup successful" }

type SetupFailed struct {
	Message string
}

func (SetupFailed) EventName() string { return "setup failed" }

// MessageReceived is an inbound or echoed chat message.
type MessageReceived struct {
	Message domain.Message
}

func (MessageReceived) EventName() string { return "chat message" }

// HistoryLoaded answers the oldest in-flight "load messages" request.
// The wire carries no peer; the conversation store resolves the target.
type HistoryLoaded struct {
	Messages []domain.Message
}

func (HistoryLoaded) EventName() string { return "chat history" }

// UsersSnapshot is a full presence listing. Always a replacement, never a delta.
type UsersSnapshot struct {
	Users []domain.User
}

func (UsersSnapshot) EventName() string { return "users" }

// Disconnected is synthesized by the transport when the connection drops.
type Disconnected struct {
	Err error
}

func (Disconnected) EventName() string { return "disconnect" }
