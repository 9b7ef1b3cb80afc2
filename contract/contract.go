//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"peerchat/domain"
	"peerchat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Panics and restarts are the supervisor's problem.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision without forcing a naming method on Worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ITransport is the bidirectional named-event channel to the routing service.
// The client core depends on this contract only, never on the wire protocol.
type ITransport interface {
	Emit(cmd domain.Command) error
	Events() <-chan event.Event
	Close() error
}

// IKeystore persists remembered credentials and the push subscription locally.
type IKeystore interface {
	RememberCredentials(creds domain.Credentials) error
	RememberedCredentials() (domain.Credentials, error)
	Forget() error
	StoreSubscription(sub domain.PushSubscription) error
	Subscription() (domain.PushSubscription, error)
}

// IPushService models the platform push service the client subscribes against.
type IPushService interface {
	Subscribe(ctx context.Context, applicationServerKey string) (domain.PushSubscription, error)
}

// INotifier is the platform alerting collaborator: permission prompt,
// system notification, and audible alert.
type INotifier interface {
	RequestPermission(ctx context.Context) (domain.Permission, error)
	Show(title, body string) error
	Beep()
}

// IWindowManager reacts to notification clicks.
type IWindowManager interface {
	FocusExisting() bool
	OpenNew() error
}

// IRenderer is the display collaborator. It owns markup and layout; the
// dispatcher only tells it what changed.
type IRenderer interface {
	ShowAuthPrompt()
	ShowInfo(message string)
	ShowError(message string)
	ShowPeers(peers []domain.PeerView)
	ShowHistory(peer string, messages []domain.Message)
	AppendMessage(message domain.Message, own bool)
}
