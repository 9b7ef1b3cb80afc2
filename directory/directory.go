// Package directory maintains the set of known peers and their presence.
// The latest snapshot from the routing service is the single source of truth:
// ReplaceAll always rebuilds, it never merges.
package directory

import (
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"peerchat/domain"
	"peerchat/errors"
)

type Directory struct {
	log   *slog.Logger
	peers map[string]domain.User
}

func NewDirectory(log *slog.Logger) *Directory {
	return &Directory{log: log, peers: make(map[string]domain.User)}
}

// ReplaceAll installs a full presence snapshot, excluding the current user.
// The payload may legitimately include the current user; the directory never
// lists them.
func (d *Directory) ReplaceAll(users []domain.User, currentUser string) {
	filtered := lo.Filter(users, func(u domain.User, _ int) bool {
		return u.Username != currentUser
	})
	d.peers = lo.KeyBy(filtered, func(u domain.User) string { return u.Username })
	d.log.Debug("Presence snapshot applied", "peers", len(d.peers))
}

// Peers lists the directory sorted lexicographically by username.
// Snapshot order is not deterministic, so display order is pinned here.
func (d *Directory) Peers() []domain.User {
	out := lo.Values(d.peers)
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

// Select resolves a peer by name. An unknown peer is a benign race (snapshot
// not yet loaded), so callers are expected to ignore ErrUnknownPeer.
func (d *Directory) Select(username string) (domain.User, error) {
	peer, ok := d.peers[username]
	if !ok {
		return domain.User{}, errors.ErrUnknownPeer
	}
	return peer, nil
}

func (d *Directory) Contains(username string) bool {
	_, ok := d.peers[username]
	return ok
}

func (d *Directory) Len() int { return len(d.peers) }

// Reset empties the directory, used when the session is torn down.
func (d *Directory) Reset() {
	d.peers = make(map[string]domain.User)
}
