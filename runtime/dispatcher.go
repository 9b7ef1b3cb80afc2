// Package runtime wires the client together: one dispatcher goroutine owns
// every piece of mutable state (session, directory, conversations,
// notification channel) and serializes all mutation. Transport events and UI
// actions enter through the same loop, so ordering follows arrival order by
// construction and no further locking exists anywhere in the core.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"peerchat/contract"
	"peerchat/conversation"
	"peerchat/directory"
	"peerchat/domain"
	"peerchat/domain/event"
	"peerchat/errors"
	"peerchat/notify"
	"peerchat/search"
	"peerchat/session"
)

type Dispatcher struct {
	log           *slog.Logger
	session       *session.Manager
	directory     *directory.Directory
	conversations *conversation.Store
	notifications *notify.Channel
	transport     contract.ITransport
	keystore      contract.IKeystore
	renderer      contract.IRenderer
	index         *search.Index // optional, nil disables local search
	actions       chan func()
	remember      bool
}

func NewDispatcher(
	log *slog.Logger,
	sess *session.Manager,
	dir *directory.Directory,
	conv *conversation.Store,
	notifications *notify.Channel,
	transport contract.ITransport,
	keystore contract.IKeystore,
	renderer contract.IRenderer,
	index *search.Index,
	bufferSize int,
	rememberCredentials bool,
) *Dispatcher {
	return &Dispatcher{
		log:           log,
		session:       sess,
		directory:     dir,
		conversations: conv,
		notifications: notifications,
		transport:     transport,
		keystore:      keystore,
		renderer:      renderer,
		index:         index,
		actions:       make(chan func(), bufferSize),
		remember:      rememberCredentials,
	}
}

// Run is the client event loop. It implements contract.Worker and returns
// when the context is canceled or the transport event stream closes.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.notifications.RequestPermission(ctx)
	d.renderer.ShowAuthPrompt()

	events := d.transport.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			d.handleEvent(ctx, evt)
		case act := <-d.actions:
			act()
		}
	}
}

// ---- UI entry points ----
//
// These are the only methods safe to call from outside the loop. Each one
// schedules a closure on the action channel; the loop goroutine executes it.

func (d *Dispatcher) Login(username, password string) {
	d.do(func() { d.login(username, password) })
}

func (d *Dispatcher) ConfirmSignup() {
	d.do(func() {
		cmd, err := d.session.ConfirmSignup()
		if err != nil {
			// A stray /yes outside a pending prompt is a no-op.
			d.log.Debug("Signup confirmation ignored", "err", err)
			return
		}
		d.emit(cmd)
	})
}

func (d *Dispatcher) DeclineSignup() {
	d.do(func() {
		if err := d.session.DeclineSignup(); err != nil {
			d.log.Debug("Signup decline ignored", "err", err)
		}
	})
}

func (d *Dispatcher) SelectPeer(username string) {
	d.do(func() { d.selectPeer(username) })
}

func (d *Dispatcher) Send(text string) {
	d.do(func() { d.send(text) })
}

func (d *Dispatcher) Find(raw string) {
	d.do(func() { d.find(raw) })
}

func (d *Dispatcher) ShowPeers() {
	d.do(func() { d.renderer.ShowPeers(d.peerViews()) })
}

func (d *Dispatcher) do(act func()) {
	select {
	case d.actions <- act:
	default:
		// The loop is gone or hopelessly behind; dropping beats blocking the UI.
		d.log.Warn("Action dropped, dispatcher saturated")
	}
}

// ---- action handlers (loop goroutine only) ----

func (d *Dispatcher) login(username, password string) {
	cmd, err := d.session.Login(username, password)
	if err != nil {
		// Local rejection: surfaced to the user, never sent to the service.
		d.renderer.ShowError("Please enter both username and password.")
		d.log.Debug("Login rejected locally", "err", err)
		return
	}
	d.emit(cmd)
}

func (d *Dispatcher) selectPeer(username string) {
	if _, err := d.directory.Select(username); err != nil {
		// Peer list not loaded yet, or a typo. Benign either way.
		d.log.Debug("Peer selection ignored", "peer", username)
		return
	}
	cmd := d.conversations.Focus(username)
	d.emit(cmd)
	d.renderer.ShowPeers(d.peerViews())
}

func (d *Dispatcher) send(text string) {
	cmd, err := d.conversations.Send(text)
	if err != nil {
		// Defensive guard: the UI only offers sending with a focus, and empty
		// input is simply ignored.
		d.log.Debug("Send rejected locally", "err", err)
		return
	}
	d.emit(cmd)
}

func (d *Dispatcher) find(raw string) {
	if d.index == nil {
		d.renderer.ShowInfo("Search is disabled.")
		return
	}
	query := search.NewQuery(raw)
	hits, err := d.index.Find(context.Background(), query)
	if err != nil {
		d.renderer.ShowError(fmt.Sprintf("Search failed: %v", err))
		return
	}
	if len(hits) == 0 {
		d.renderer.ShowInfo("No matches.")
		return
	}
	for _, hit := range hits {
		d.renderer.ShowInfo(fmt.Sprintf("[%s] %s: %s", hit.Peer, hit.From, hit.Text))
	}
}

// ---- transport event handlers (loop goroutine only) ----

func (d *Dispatcher) handleEvent(ctx context.Context, evt event.Event) {
	switch e := evt.(type) {
	case event.LoginSucceeded:
		d.authenticated(ctx, e.Username)
	case event.SignupSucceeded:
		d.renderer.ShowInfo("Signup successful! You are now logged in.")
		d.authenticated(ctx, e.Username)
	case event.PasswordSetupSucceeded:
		d.renderer.ShowInfo("Password setup successful! You are now logged in.")
		d.session.HandlePasswordSetupSuccess()
		d.afterAuthentication(ctx)
	case event.PromptSignup:
		d.renderer.ShowInfo(e.Message + " Type /yes to create the account, /no to abort.")
	case event.LoginFailed:
		d.rejected(e.Message)
	case event.SignupFailed:
		d.rejected(e.Message)
	case event.SetupFailed:
		d.rejected(e.Message)
	case event.UsersSnapshot:
		d.directory.ReplaceAll(e.Users, d.session.CurrentUser())
		d.renderer.ShowPeers(d.peerViews())
	case event.HistoryLoaded:
		d.historyLoaded(e.Messages)
	case event.MessageReceived:
		d.messageReceived(e.Message)
	case event.Disconnected:
		d.disconnected(e.Err)
	default:
		d.log.Warn("Unhandled event", "event", evt.EventName())
	}
}

func (d *Dispatcher) authenticated(ctx context.Context, username string) {
	d.session.HandleLoginSuccess(username)
	d.afterAuthentication(ctx)
}

// afterAuthentication runs the authenticated side effects: remember the
// credentials, load the peer list, and register for push. Push failures are
// logged and swallowed; chat works without them.
func (d *Dispatcher) afterAuthentication(ctx context.Context) {
	if d.remember {
		creds := d.session.SubmittedCredentials()
		if err := d.keystore.RememberCredentials(creds); err != nil {
			d.log.Warn("Could not remember credentials", "err", err)
		}
	}

	d.emit(domain.LoadUsersCommand{})

	cmd, err := d.notifications.Subscribe(ctx)
	if err != nil {
		d.log.Warn("Push registration skipped", "err", err)
	} else if cmd != nil {
		d.emit(*cmd)
	}
}

func (d *Dispatcher) rejected(reason string) {
	err := d.session.HandleAuthRejected(reason)
	d.log.Debug("Authentication attempt rejected", "err", err)
	d.renderer.ShowError(reason)
}

func (d *Dispatcher) historyLoaded(messages []domain.Message) {
	peer, ok := d.conversations.ApplyHistory(messages)
	if !ok {
		return
	}
	d.renderer.ShowHistory(peer, d.conversations.History(peer))
	for _, msg := range messages {
		d.indexMessage(peer, msg)
	}
}

func (d *Dispatcher) messageReceived(msg domain.Message) {
	currentUser := d.session.CurrentUser()
	alert := d.conversations.ReceiveMessage(currentUser, msg)

	conversationPeer := msg.From
	if msg.From == currentUser {
		conversationPeer = d.conversations.Focused()
	}
	if conversationPeer == "" {
		return
	}
	d.indexMessage(conversationPeer, msg)

	if conversationPeer == d.conversations.Focused() {
		d.renderer.AppendMessage(msg, msg.From == currentUser)
	}
	if alert {
		d.notifications.Notify(msg.From, msg.Text)
		d.renderer.ShowPeers(d.peerViews())
	}
}

func (d *Dispatcher) disconnected(cause error) {
	d.log.Warn("Disconnected from routing service", "err",
		fmt.Errorf("%w: %v", errors.ErrTransportDisconnected, cause))
	d.session.HandleDisconnect()
	d.conversations.Reset()
	d.directory.Reset()
	d.renderer.ShowAuthPrompt()
}

// ---- helpers ----

func (d *Dispatcher) emit(cmd domain.Command) {
	if err := d.transport.Emit(cmd); err != nil {
		d.log.Error("Emit failed", "event", cmd.EventName(), "err", err)
	}
}

func (d *Dispatcher) indexMessage(peer string, msg domain.Message) {
	if d.index == nil {
		return
	}
	if err := d.index.IndexMessage(peer, msg); err != nil {
		d.log.Debug("Message not indexed", "err", err)
	}
}

func (d *Dispatcher) peerViews() []domain.PeerView {
	focused := d.conversations.Focused()
	return lo.Map(d.directory.Peers(), func(u domain.User, _ int) domain.PeerView {
		return domain.PeerView{
			Username: u.Username,
			Online:   u.Online,
			Unseen:   d.conversations.UnseenCount(u.Username),
			Focused:  u.Username == focused,
		}
	})
}
