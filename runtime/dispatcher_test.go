package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"peerchat/conversation"
	"peerchat/directory"
	"peerchat/domain"
	"peerchat/domain/event"
	"peerchat/errors"
	"peerchat/mocks"
	"peerchat/notify"
	"peerchat/session"
)

// recorded accumulates every renderer interaction so tests can assert on
// what the user would have seen, in order.
type recorded struct {
	authPrompts int
	errorsShown []string
	infosShown  []string
	peersShown  [][]domain.PeerView
	historyFor  []string
	appended    []domain.Message
	beeps       int
}

type fixture struct {
	dispatcher *Dispatcher
	session    *session.Manager
	store      *conversation.Store
	transport  *mocks.MockITransport
	keystore   *mocks.MockIKeystore
	emitted    []domain.Command
	out        *recorded
}

func newFixture(t *testing.T, remember bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.Default()

	f := &fixture{
		transport: mocks.NewMockITransport(ctrl),
		keystore:  mocks.NewMockIKeystore(ctrl),
		out:       &recorded{},
	}

	f.transport.EXPECT().Emit(gomock.Any()).DoAndReturn(func(cmd domain.Command) error {
		f.emitted = append(f.emitted, cmd)
		return nil
	}).AnyTimes()

	renderer := mocks.NewMockIRenderer(ctrl)
	renderer.EXPECT().ShowAuthPrompt().Do(func() { f.out.authPrompts++ }).AnyTimes()
	renderer.EXPECT().ShowError(gomock.Any()).Do(func(msg string) {
		f.out.errorsShown = append(f.out.errorsShown, msg)
	}).AnyTimes()
	renderer.EXPECT().ShowInfo(gomock.Any()).Do(func(msg string) {
		f.out.infosShown = append(f.out.infosShown, msg)
	}).AnyTimes()
	renderer.EXPECT().ShowPeers(gomock.Any()).Do(func(peers []domain.PeerView) {
		f.out.peersShown = append(f.out.peersShown, peers)
	}).AnyTimes()
	renderer.EXPECT().ShowHistory(gomock.Any(), gomock.Any()).Do(func(peer string, _ []domain.Message) {
		f.out.historyFor = append(f.out.historyFor, peer)
	}).AnyTimes()
	renderer.EXPECT().AppendMessage(gomock.Any(), gomock.Any()).Do(func(msg domain.Message, _ bool) {
		f.out.appended = append(f.out.appended, msg)
	}).AnyTimes()

	notifier := mocks.NewMockINotifier(ctrl)
	notifier.EXPECT().RequestPermission(gomock.Any()).Return(domain.PermissionDefault, nil).AnyTimes()
	notifier.EXPECT().Beep().Do(func() { f.out.beeps++ }).AnyTimes()
	notifier.EXPECT().Show(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	push := mocks.NewMockIPushService(ctrl)
	push.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(domain.PushSubscription{
		Endpoint: "https://push.example/send/abc",
		Keys:     domain.SubscriptionKeys{P256dh: "p", Auth: "a"},
	}, nil).AnyTimes()
	f.keystore.EXPECT().Subscription().
		Return(domain.PushSubscription{}, errors.ErrNoSubscription).AnyTimes()
	f.keystore.EXPECT().StoreSubscription(gomock.Any()).Return(nil).AnyTimes()

	f.session = session.NewManager(log)
	f.store = conversation.NewStore(log)
	channel := notify.NewChannel(log, push, notifier, f.keystore, "vapid-key")

	f.dispatcher = NewDispatcher(log, f.session, directory.NewDirectory(log), f.store,
		channel, f.transport, f.keystore, renderer, nil, 16, remember)
	return f
}

func (f *fixture) emittedNames() []string {
	names := make([]string, 0, len(f.emitted))
	for _, cmd := range f.emitted {
		names = append(names, cmd.EventName())
	}
	return names
}

func message(from, text string) domain.Message {
	return domain.Message{ID: uuid.New(), From: from, Text: text, Timestamp: time.Now()}
}

// authenticate drives the fixture through a full login handshake.
func authenticate(f *fixture, username string, peers ...domain.User) {
	f.dispatcher.login(username, "s3cret")
	f.dispatcher.handleEvent(context.Background(), event.LoginSucceeded{Username: username})
	f.dispatcher.handleEvent(context.Background(), event.UsersSnapshot{Users: peers})
	f.emitted = nil
}

func TestDispatcher_Login(t *testing.T) {
	t.Run("should emit login and load users plus subscribe on success", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		f.dispatcher.login("alice", "s3cret")
		req.Equal([]string{"login"}, f.emittedNames())

		f.dispatcher.handleEvent(context.Background(), event.LoginSucceeded{Username: "alice"})
		req.Equal([]string{"login", "load users", "subscribe"}, f.emittedNames())
		req.Equal("alice", f.session.CurrentUser())
	})

	t.Run("should surface a local validation failure without emitting", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		f.dispatcher.login("alice", "  ")

		req.Empty(f.emitted)
		req.Equal([]string{"Please enter both username and password."}, f.out.errorsShown)
	})

	t.Run("should surface the rejection reason verbatim", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		f.dispatcher.login("alice", "wrong")
		f.dispatcher.handleEvent(context.Background(), event.LoginFailed{Message: "Invalid password."})

		req.Equal([]string{"Invalid password."}, f.out.errorsShown)
		req.Equal(domain.Anonymous, f.session.State())
	})

	t.Run("should remember credentials on success when enabled", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, true)

		f.keystore.EXPECT().
			RememberCredentials(domain.Credentials{Username: "alice", Password: "s3cret"}).
			Return(nil).Times(1)

		f.dispatcher.login("alice", "s3cret")
		f.dispatcher.handleEvent(context.Background(), event.LoginSucceeded{Username: "alice"})
		req.Equal("alice", f.session.CurrentUser())
	})
}

func TestDispatcher_Signup(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, false)

	f.dispatcher.login("newbie", "s3cret")
	f.dispatcher.handleEvent(context.Background(), event.PromptSignup{Message: "No account for newbie."})

	req.Len(f.out.infosShown, 1)
	req.Contains(f.out.infosShown[0], "No account for newbie.")
	req.Contains(f.out.infosShown[0], "/yes")

	cmd, err := f.session.ConfirmSignup()
	req.NoError(err)
	f.dispatcher.emit(cmd)
	req.Equal([]string{"login", "signup"}, f.emittedNames())

	f.dispatcher.handleEvent(context.Background(), event.SignupSucceeded{Username: "newbie"})
	req.Equal(domain.Authenticated, f.session.State())
}

func TestDispatcher_StraySignupAnswersAfterLogin(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, false)

	authenticate(f, "alice", domain.User{Username: "bob", Online: true})

	f.dispatcher.ConfirmSignup()
	f.dispatcher.DeclineSignup()
	for i := 0; i < 2; i++ {
		(<-f.dispatcher.actions)()
	}

	// Neither answer may emit anything or disturb the authenticated session
	req.Empty(f.emitted)
	req.Equal(domain.Authenticated, f.session.State())
	req.Equal("alice", f.session.CurrentUser())
}

func TestDispatcher_PasswordSetup(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, false)

	f.dispatcher.login("legacy", "fresh-pass")
	f.dispatcher.handleEvent(context.Background(), event.PasswordSetupSucceeded{})

	req.Equal(domain.Authenticated, f.session.State())
	req.Equal("legacy", f.session.CurrentUser())
}

func TestDispatcher_PeerListAndConversations(t *testing.T) {
	peers := []domain.User{
		{Username: "carol", Online: true},
		{Username: "alice", Online: true},
		{Username: "bob", Online: true},
	}

	t.Run("should list peers sorted and without the current user", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)

		req.NotEmpty(f.out.peersShown)
		shown := f.out.peersShown[len(f.out.peersShown)-1]
		req.Len(shown, 2)
		req.Equal("bob", shown[0].Username)
		req.Equal("carol", shown[1].Username)
	})

	t.Run("should load history when a peer is selected", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("bob")

		req.Equal([]domain.Command{domain.LoadMessagesCommand{User: "bob"}}, f.emitted)

		f.dispatcher.handleEvent(context.Background(), event.HistoryLoaded{
			Messages: []domain.Message{message("bob", "hello")},
		})
		req.Equal([]string{"bob"}, f.out.historyFor)
	})

	t.Run("should ignore selecting an unknown peer", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("mallory")

		req.Empty(f.emitted)
		req.Empty(f.store.Focused())
	})

	t.Run("should discard a history answer for a superseded selection", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("bob")
		f.dispatcher.selectPeer("carol")

		// Bob's late answer arrives first and must not render as carol's
		f.dispatcher.handleEvent(context.Background(), event.HistoryLoaded{
			Messages: []domain.Message{message("bob", "old news")},
		})
		req.Empty(f.out.historyFor)

		f.dispatcher.handleEvent(context.Background(), event.HistoryLoaded{
			Messages: []domain.Message{message("carol", "current")},
		})
		req.Equal([]string{"carol"}, f.out.historyFor)
	})
}

func TestDispatcher_Messages(t *testing.T) {
	peers := []domain.User{
		{Username: "bob", Online: true},
		{Username: "carol", Online: true},
	}

	t.Run("should append a focused peer message without alerting", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("bob")

		f.dispatcher.messageReceived(message("bob", "hi"))

		req.Len(f.out.appended, 1)
		req.Equal(0, f.out.beeps)
		req.Zero(f.store.UnseenCount("bob"))
	})

	t.Run("should count and alert for a non-focused peer message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("bob")
		f.out.peersShown = nil

		f.dispatcher.messageReceived(message("carol", "yo"))

		req.Equal(1, f.store.UnseenCount("carol"))
		req.Equal(1, f.out.beeps)
		req.Empty(f.out.appended)
		// Counter change re-renders the peer list
		req.NotEmpty(f.out.peersShown)
		shown := f.out.peersShown[len(f.out.peersShown)-1]
		req.Equal("carol", shown[1].Username)
		req.Equal(1, shown[1].Unseen)
	})

	t.Run("should clear the counter when the peer gains focus", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("bob")
		f.dispatcher.messageReceived(message("carol", "yo"))
		req.Equal(1, f.store.UnseenCount("carol"))

		f.dispatcher.selectPeer("carol")
		req.Zero(f.store.UnseenCount("carol"))
	})

	t.Run("should display the echo of an own message in the focused conversation", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.selectPeer("bob")
		f.emitted = nil

		f.dispatcher.send("hi bob")
		req.Equal([]domain.Command{domain.ChatMessageCommand{To: "bob", Msg: "hi bob"}}, f.emitted)
		req.Empty(f.out.appended)

		// The message shows up only once the service echoes it back
		f.dispatcher.messageReceived(message("alice", "hi bob"))
		req.Len(f.out.appended, 1)
		req.Equal(0, f.out.beeps)
	})

	t.Run("should drop a send without a focused peer", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)

		authenticate(f, "alice", peers...)
		f.dispatcher.send("into the void")

		req.Empty(f.emitted)
	})
}

func TestDispatcher_Disconnect(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, false)

	authenticate(f, "alice", domain.User{Username: "bob", Online: true})
	f.dispatcher.selectPeer("bob")
	f.dispatcher.messageReceived(message("bob", "hi"))

	f.dispatcher.handleEvent(context.Background(), event.Disconnected{Err: nil})

	req.Equal(domain.Disconnected, f.session.State())
	req.Empty(f.session.CurrentUser())
	req.Empty(f.store.Focused())
	req.Equal(1, f.out.authPrompts)
}

func TestDispatcher_Find_IsDisabledWithoutAnIndex(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, false)

	f.dispatcher.find("/find anything")

	req.Equal([]string{"Search is disabled."}, f.out.infosShown)
}

func TestDispatcher_Run_StopsWhenTheEventStreamCloses(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, false)

	events := make(chan event.Event)
	f.transport.EXPECT().Events().Return(events)
	close(events)

	done := make(chan error, 1)
	go func() { done <- f.dispatcher.Run(context.Background()) }()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(500 * time.Millisecond):
		req.Fail("Run should have returned after the stream closed")
	}
}
