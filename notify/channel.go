// Package notify manages the push-subscription lifecycle and local alerting.
// Chat works without it: every failure here degrades to foreground-only
// delivery instead of propagating.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"peerchat/contract"
	"peerchat/domain"
	"peerchat/errors"
)

type Channel struct {
	log        *slog.Logger
	push       contract.IPushService
	notifier   contract.INotifier
	store      contract.IKeystore
	serverKey  string
	permission domain.Permission
	asked      bool
}

func NewChannel(log *slog.Logger, push contract.IPushService, notifier contract.INotifier,
	store contract.IKeystore, applicationServerKey string) *Channel {
	return &Channel{
		log:        log,
		push:       push,
		notifier:   notifier,
		store:      store,
		serverKey:  applicationServerKey,
		permission: domain.PermissionDefault,
	}
}

func (c *Channel) Permission() domain.Permission { return c.permission }

// RequestPermission asks the platform at most once, and only while the state
// is still default. Granted and denied are both final.
func (c *Channel) RequestPermission(ctx context.Context) domain.Permission {
	if c.permission != domain.PermissionDefault || c.asked {
		return c.permission
	}
	c.asked = true
	perm, err := c.notifier.RequestPermission(ctx)
	if err != nil {
		c.log.Warn("Notification permission request failed", "err", err)
		return c.permission
	}
	c.permission = perm
	return c.permission
}

// Subscribe ensures a push subscription exists and returns the registration
// to emit, or nil when a valid subscription is already stored (idempotence:
// no network action in that case). Errors are non-fatal for the caller.
func (c *Channel) Subscribe(ctx context.Context) (*domain.SubscribeCommand, error) {
	if existing, err := c.store.Subscription(); err == nil && existing.Valid() {
		c.log.Debug("Push subscription already present, skipping registration")
		return nil, nil
	}

	sub, err := c.push.Subscribe(ctx, c.serverKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSubscription, err)
	}
	if err := c.store.StoreSubscription(sub); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSubscription, err)
	}
	return &domain.SubscribeCommand{Subscription: sub}, nil
}

// Notify triggers the foreground alert for a message from a non-focused peer:
// always an audible alert, plus a system notification when permission is
// granted.
func (c *Channel) Notify(sender, text string) {
	c.notifier.Beep()
	if c.permission != domain.PermissionGranted {
		return
	}
	if err := c.notifier.Show(sender, text); err != nil {
		c.log.Warn("Notification display failed", "err", err)
	}
}
