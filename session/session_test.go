package session

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"peerchat/domain"
	"peerchat/errors"
)

func TestManager_Login(t *testing.T) {
	t.Run("should move to authenticating and emit the login event", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		cmd, err := m.Login("alice", "secret")

		req.NoError(err)
		req.Equal(domain.LoginCommand{Username: "alice", Password: "secret"}, cmd)
		req.Equal(domain.Authenticating, m.State())
		req.Empty(m.CurrentUser())
	})

	t.Run("should trim whitespace before validating and emitting", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		cmd, err := m.Login("  alice  ", " secret ")

		req.NoError(err)
		req.Equal("alice", cmd.Username)
		req.Equal("secret", cmd.Password)
	})

	t.Run("should reject blank input locally without emitting", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("   ", "secret")

		req.ErrorIs(err, errors.ErrValidation)
		req.Equal(domain.Anonymous, m.State())
	})

	t.Run("should refuse a second login while one is in flight", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("alice", "secret")
		req.NoError(err)

		_, err = m.Login("bob", "other")
		req.ErrorIs(err, errors.ErrInvalidState)
	})

	t.Run("should allow logging in again after a disconnect", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("alice", "secret")
		req.NoError(err)
		m.HandleLoginSuccess("alice")
		m.HandleDisconnect()

		_, err = m.Login("alice", "secret")
		req.NoError(err)
		req.Equal(domain.Authenticating, m.State())
	})
}

func TestManager_LoginSuccess_SetsCurrentUser(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	_, err := m.Login("alice", "secret")
	req.NoError(err)

	// The service confirms with the authenticated username
	m.HandleLoginSuccess("alice")

	req.Equal(domain.Authenticated, m.State())
	req.Equal("alice", m.CurrentUser())
}

func TestManager_AuthRejected_IsTerminalForTheAttempt(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	_, err := m.Login("alice", "wrong")
	req.NoError(err)

	err = m.HandleAuthRejected("Invalid password.")

	req.ErrorIs(err, errors.ErrAuthRejected)
	req.Contains(err.Error(), "Invalid password.")
	req.Equal(domain.Anonymous, m.State())
	req.Empty(m.CurrentUser())
}

func TestManager_SignupFlow(t *testing.T) {
	t.Run("should emit signup with the submitted credentials on confirm", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("newbie", "secret")
		req.NoError(err)

		cmd, err := m.ConfirmSignup()

		req.NoError(err)
		req.Equal(domain.SignupCommand{Username: "newbie", Password: "secret"}, cmd)
		req.Equal(domain.Authenticating, m.State())
	})

	t.Run("should fall back to anonymous on decline", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("newbie", "secret")
		req.NoError(err)

		req.NoError(m.DeclineSignup())

		req.Equal(domain.Anonymous, m.State())
		req.Empty(m.SubmittedCredentials().Username)
	})

	t.Run("should refuse confirming without a pending attempt", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.ConfirmSignup()

		req.ErrorIs(err, errors.ErrInvalidState)
		req.Equal(domain.Anonymous, m.State())
	})

	t.Run("should refuse a stray confirmation while authenticated", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("alice", "secret")
		req.NoError(err)
		m.HandleLoginSuccess("alice")

		_, err = m.ConfirmSignup()

		req.ErrorIs(err, errors.ErrInvalidState)
		req.Equal(domain.Authenticated, m.State())
		req.Equal("alice", m.CurrentUser())
	})

	t.Run("should refuse a stray decline while authenticated", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(slog.Default())

		_, err := m.Login("alice", "secret")
		req.NoError(err)
		m.HandleLoginSuccess("alice")

		err = m.DeclineSignup()

		req.ErrorIs(err, errors.ErrInvalidState)
		req.Equal(domain.Authenticated, m.State())
		req.Equal("alice", m.SubmittedCredentials().Username)
	})
}

func TestManager_PasswordSetupSuccess_UsesSubmittedUsername(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	// "password setup successful" carries no payload on the wire
	_, err := m.Login("alice", "firstpassword")
	req.NoError(err)

	m.HandlePasswordSetupSuccess()

	req.Equal(domain.Authenticated, m.State())
	req.Equal("alice", m.CurrentUser())
}

func TestManager_Disconnect_ResetsTheSession(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	_, err := m.Login("alice", "secret")
	req.NoError(err)
	m.HandleLoginSuccess("alice")

	m.HandleDisconnect()

	req.Equal(domain.Disconnected, m.State())
	req.Empty(m.CurrentUser())
}
