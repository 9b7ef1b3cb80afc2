package domain

// SubscriptionKeys is the opaque key material bound to a push subscription.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is the opaque token pair created by the push platform and
// handed to the routing service for storage. The client never interprets it;
// re-subscribing while a valid subscription exists is a no-op.
type PushSubscription struct {
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}

// Valid reports whether the subscription carries enough material to register.
func (s PushSubscription) Valid() bool {
	return s.Endpoint != "" && s.Keys.P256dh != "" && s.Keys.Auth != ""
}
