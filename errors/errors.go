package errors

import "fmt"

var (
	// ErrValidation marks locally rejected input. It never reaches the transport.
	ErrValidation = fmt.Errorf("validation failed")

	// ErrAuthRejected wraps a rejection reported by the routing service
	// (login failed, signup failed, setup failed).
	ErrAuthRejected = fmt.Errorf("authentication rejected")

	// ErrTransportDisconnected signals an unsolicited loss of the event channel.
	ErrTransportDisconnected = fmt.Errorf("transport disconnected")

	// ErrSubscription marks a failed push registration. Non-fatal.
	ErrSubscription = fmt.Errorf("push subscription failed")

	// ErrUnknownPeer is returned when an action references a peer that is not
	// in the directory. Callers treat it as a benign race and ignore it.
	ErrUnknownPeer = fmt.Errorf("unknown peer")

	// ErrNoFocus guards sending without a focused conversation.
	ErrNoFocus = fmt.Errorf("no focused conversation")

	// ErrNoCredentials means nothing usable is remembered locally.
	ErrNoCredentials = fmt.Errorf("no remembered credentials")

	// ErrNoSubscription means no push subscription is stored locally.
	ErrNoSubscription = fmt.Errorf("no stored subscription")

	ErrInvalidState = fmt.Errorf("invalid session state")
	ErrWorkerPanic  = fmt.Errorf("worker panic")
)
