package domain

// Command is an outbound named event for the routing service.
type Command interface {
	EventName() string
}

type LoginCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (LoginCommand) EventName() string { return "login" }

type SignupCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (SignupCommand) EventName() string { return "signup" }

// LoadUsersCommand requests a full presence snapshot. No payload.
type LoadUsersCommand struct{}

func (LoadUsersCommand) EventName() string { return "load users" }

// LoadMessagesCommand requests the history of the conversation with User.
type LoadMessagesCommand struct {
	User string `json:"user"`
}

func (LoadMessagesCommand) EventName() string { return "load messages" }

type ChatMessageCommand struct {
	To  string `json:"to"`
	Msg string `json:"msg"`
}

func (ChatMessageCommand) EventName() string { return "chat message" }

// SubscribeCommand hands the opaque push subscription to the routing service.
type SubscribeCommand struct {
	Subscription PushSubscription
}

func (SubscribeCommand) EventName() string { return "subscribe" }
