// Package domain contains core concepts of the chat client.
// It defines users, messages, credentials, and push subscriptions.
// No runtime, network, or UI logic should be added here.
package domain

// User is a directory entry as reported by the routing service.
type User struct {
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

// PeerView is what the renderer needs to draw one directory row.
type PeerView struct {
	Username string
	Online   bool
	Unseen   int
	Focused  bool
}

// Credentials is a username/password pair submitted at login or signup.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
