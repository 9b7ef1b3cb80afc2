// Package session owns the authentication state machine:
// anonymous -> authenticating -> authenticated -> disconnected.
// All mutations go through explicit operations so the machine can be tested
// in isolation; there is no ambient state.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"peerchat/domain"
	"peerchat/errors"
)

var validate = validator.New()

// credentialsRequest is validated before anything is emitted to the transport.
type credentialsRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type Manager struct {
	log         *slog.Logger
	state       domain.AuthState
	currentUser string
	submitted   domain.Credentials // last credentials sent, kept for signup confirm and remember-on-success
}

func NewManager(log *slog.Logger) *Manager {
	return &Manager{log: log, state: domain.Anonymous}
}

func (m *Manager) State() domain.AuthState { return m.state }
func (m *Manager) CurrentUser() string     { return m.currentUser }

// SubmittedCredentials returns the credentials of the attempt in flight or of
// the authenticated session. Used by the remember-on-success policy.
func (m *Manager) SubmittedCredentials() domain.Credentials { return m.submitted }

// Login validates the pair and moves to authenticating. Validation failures
// are local: they are surfaced to the user and never reach the service.
func (m *Manager) Login(username, password string) (domain.LoginCommand, error) {
	if m.state == domain.Authenticated || m.state == domain.Authenticating {
		return domain.LoginCommand{}, fmt.Errorf("%w: login while %s", errors.ErrInvalidState, m.state)
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if err := validate.Struct(credentialsRequest{Username: username, Password: password}); err != nil {
		return domain.LoginCommand{}, fmt.Errorf("%w: both username and password are required", errors.ErrValidation)
	}

	m.state = domain.Authenticating
	m.submitted = domain.Credentials{Username: username, Password: password}
	return domain.LoginCommand{Username: username, Password: password}, nil
}

// HandleLoginSuccess applies a "login success" or "signup successful" event.
// The service-reported username wins over whatever was submitted.
func (m *Manager) HandleLoginSuccess(username string) {
	m.state = domain.Authenticated
	m.currentUser = username
	m.log.Info("Authenticated", "user", username)
}

// HandlePasswordSetupSuccess applies "password setup successful", which
// carries no payload: the submitted username is the authenticated one.
func (m *Manager) HandlePasswordSetupSuccess() {
	m.HandleLoginSuccess(m.submitted.Username)
}

// HandleAuthRejected applies any of the rejection events. The attempt is
// terminal: the session stays anonymous and the reason is surfaced verbatim.
func (m *Manager) HandleAuthRejected(reason string) error {
	m.state = domain.Anonymous
	m.currentUser = ""
	return fmt.Errorf("%w: %s", errors.ErrAuthRejected, reason)
}

// ConfirmSignup emits the signup request after the user confirmed the
// "prompt signup" question. A prompt only exists while an attempt is in
// flight, so confirming from any other state is rejected; a stray /yes must
// never touch an authenticated session.
func (m *Manager) ConfirmSignup() (domain.SignupCommand, error) {
	if m.state != domain.Authenticating {
		return domain.SignupCommand{}, fmt.Errorf("%w: signup confirm while %s", errors.ErrInvalidState, m.state)
	}
	if m.submitted.Username == "" || m.submitted.Password == "" {
		m.state = domain.Anonymous
		return domain.SignupCommand{}, fmt.Errorf("%w: both username and password are required", errors.ErrValidation)
	}
	return domain.SignupCommand{Username: m.submitted.Username, Password: m.submitted.Password}, nil
}

// DeclineSignup drops the pending attempt. Like ConfirmSignup it is only
// valid while an attempt is in flight.
func (m *Manager) DeclineSignup() error {
	if m.state != domain.Authenticating {
		return fmt.Errorf("%w: signup decline while %s", errors.ErrInvalidState, m.state)
	}
	m.state = domain.Anonymous
	m.submitted = domain.Credentials{}
	return nil
}

// HandleDisconnect resets the session after an unsolicited transport loss.
// Reconnection re-runs the full handshake; nothing is retried automatically.
func (m *Manager) HandleDisconnect() {
	if m.state != domain.Disconnected {
		m.log.Warn("Transport lost, session reset")
	}
	m.state = domain.Disconnected
	m.currentUser = ""
}
