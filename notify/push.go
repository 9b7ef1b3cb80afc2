package notify

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"peerchat/domain"
)

// PushService mints opaque subscriptions against a push endpoint, the way a
// platform push manager would. The application server key binds the
// subscription to the chat service identity; the key material itself is
// opaque to the client.
type PushService struct {
	endpointBase string
}

func NewPushService(endpointBase string) *PushService {
	return &PushService{endpointBase: endpointBase}
}

func (p *PushService) Subscribe(_ context.Context, applicationServerKey string) (domain.PushSubscription, error) {
	if applicationServerKey == "" {
		return domain.PushSubscription{}, fmt.Errorf("application server key is required")
	}

	p256dh, err := randomToken(65)
	if err != nil {
		return domain.PushSubscription{}, err
	}
	auth, err := randomToken(16)
	if err != nil {
		return domain.PushSubscription{}, err
	}

	return domain.PushSubscription{
		Endpoint: fmt.Sprintf("%s/%s", p.endpointBase, uuid.New()),
		Keys:     domain.SubscriptionKeys{P256dh: p256dh, Auth: auth},
	}, nil
}

func randomToken(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
