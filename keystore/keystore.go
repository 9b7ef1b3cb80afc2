// Package keystore persists remembered credentials and the push subscription
// in BadgerDB. Credentials are never written in clear text: they are sealed
// under a per-install secret and guarded by a short-lived expiry token.
// The secret lives next to the data, so this protects stored blobs from
// casual reads and backups, not from an attacker owning the machine.
package keystore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"peerchat/domain"
	"peerchat/errors"
)

const (
	keySecret       = "store:secret"
	keyCredentials  = "cred:blob"
	keyToken        = "cred:token"
	keySubscription = "push:subscription"

	secretLength = 32
)

type Store struct {
	db          *badger.DB
	log         *slog.Logger
	rememberTTL time.Duration
}

func NewStore(db *badger.DB, log *slog.Logger, rememberTTL time.Duration) *Store {
	return &Store{db: db, log: log, rememberTTL: rememberTTL}
}

// RememberCredentials seals and stores the pair together with a fresh expiry
// token. Called after a successful authentication only.
func (s *Store) RememberCredentials(creds domain.Credentials) error {
	secret, err := s.installSecret()
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	sealed, err := seal(secret, plaintext)
	if err != nil {
		return fmt.Errorf("seal failed: %w", err)
	}
	token, err := generateRememberToken(creds.Username, s.rememberTTL, secret)
	if err != nil {
		return fmt.Errorf("token generation failed: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyCredentials), sealed); err != nil {
			return err
		}
		return txn.Set([]byte(keyToken), []byte(token))
	})
}

// RememberedCredentials returns the stored pair when the expiry token still
// validates. Anything else (nothing stored, expired, unsealable) reports
// ErrNoCredentials so callers fall back to a manual login.
func (s *Store) RememberedCredentials() (domain.Credentials, error) {
	secret, err := s.installSecret()
	if err != nil {
		return domain.Credentials{}, err
	}

	var sealed, token []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCredentials))
		if err != nil {
			return err
		}
		if sealed, err = item.ValueCopy(nil); err != nil {
			return err
		}
		item, err = txn.Get([]byte(keyToken))
		if err != nil {
			return err
		}
		token, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return domain.Credentials{}, errors.ErrNoCredentials
	}

	username, err := validateRememberToken(string(token), secret)
	if err != nil {
		s.log.Debug("Remember token rejected", "err", err)
		return domain.Credentials{}, errors.ErrNoCredentials
	}

	plaintext, err := open(secret, sealed)
	if err != nil {
		return domain.Credentials{}, errors.ErrNoCredentials
	}
	var creds domain.Credentials
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return domain.Credentials{}, errors.ErrNoCredentials
	}
	if creds.Username != username {
		return domain.Credentials{}, errors.ErrNoCredentials
	}
	return creds, nil
}

// Forget drops the remembered pair and its token.
func (s *Store) Forget() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(keyCredentials)); err != nil {
			return err
		}
		return txn.Delete([]byte(keyToken))
	})
}

// StoreSubscription persists the opaque push subscription.
func (s *Store) StoreSubscription(sub domain.PushSubscription) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySubscription), data)
	})
}

// Subscription returns the stored push subscription, or ErrNoSubscription.
func (s *Store) Subscription() (domain.PushSubscription, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySubscription))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return domain.PushSubscription{}, errors.ErrNoSubscription
	}
	var sub domain.PushSubscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return domain.PushSubscription{}, errors.ErrNoSubscription
	}
	return sub, nil
}

// installSecret loads the per-install secret, creating it on first use.
func (s *Store) installSecret() ([]byte, error) {
	var secret []byte
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySecret))
		if err == nil {
			secret, err = item.ValueCopy(nil)
			return err
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		if secret, err = randBytes(secretLength); err != nil {
			return err
		}
		return txn.Set([]byte(keySecret), secret)
	})
	if err != nil {
		return nil, fmt.Errorf("install secret: %w", err)
	}
	return secret, nil
}
