// Command peerchat is a console client for the peer routing service.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"peerchat/conversation"
	"peerchat/directory"
	"peerchat/domain"
	"peerchat/errors"
	"peerchat/keystore"
	"peerchat/notify"
	"peerchat/runtime"
	"peerchat/runtime/workers"
	"peerchat/search"
	"peerchat/session"
	"peerchat/transport"
	"peerchat/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the client lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Local stores (BadgerDB keystore, Bluge history index)
	db, err := badger.Open(badger.DefaultOptions(config.DataDir).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("keystore opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing keystore...")
		_ = db.Close()
	}()
	store := keystore.NewStore(db, log, config.RememberTTL)

	index, err := search.NewIndex(bluge.DefaultConfig(config.IndexDir), log)
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() { _ = index.Close() }()

	// 4. Transport
	socket, err := transport.Dial(ctx, log, config.ServerURL, config.BufferSize)
	if err != nil {
		return fmt.Errorf("could not connect to %s: %w", config.ServerURL, err)
	}
	defer func() { _ = socket.Close() }()

	// 5. Client core
	console := ui.NewConsole(os.Stdout)
	notifier := ui.NewNotifier(os.Stdout, domain.ParsePermission(config.Notifications))
	channel := notify.NewChannel(log, notify.NewPushService(config.PushEndpoint),
		notifier, store, config.VapidPublicKey)

	dispatcher := runtime.NewDispatcher(
		log,
		session.NewManager(log),
		directory.NewDirectory(log),
		conversation.NewStore(log),
		channel,
		socket,
		store,
		console,
		index,
		config.BufferSize,
		true,
	)

	// 6. Supervision. The dispatcher runs outside the supervisor: when its
	// event stream ends the whole client is over, so its exit drives shutdown
	// instead of being restarted or ignored.
	supervisor := workers.NewSupervisor(log)
	supervisor.Add(
		socket,
		workers.NewTelemetryWorker(log, config.TelemetryInterval),
	)
	done := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(done)
	}()

	dispatcherDone := make(chan struct{})
	go func() {
		_ = dispatcher.Run(ctx)
		close(dispatcherDone)
	}()

	// 7. Auto-login with remembered credentials, when still valid
	if creds, err := store.RememberedCredentials(); err == nil {
		log.Info("Auto-login", "user", creds.Username)
		dispatcher.Login(creds.Username, creds.Password)
	} else if err != errors.ErrNoCredentials {
		log.Warn("Remembered credentials unavailable", "err", err)
	}

	// 8. Input loop
	go readInput(ctx, dispatcher, store, log)

	// A retired dispatcher means the connection is gone for good; there is no
	// reconnection, so accepting further input would only mislead the user.
	<-dispatcherDone
	if ctx.Err() == nil {
		console.ShowError("Connection lost. Restart the client to reconnect.")
	}
	stop()
	<-done
	return nil
}

// readInput turns stdin lines into dispatcher actions. Plain text goes to
// the focused conversation; slash commands drive everything else.
func readInput(ctx context.Context, d *runtime.Dispatcher, store *keystore.Store, log *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "/login "):
			fields := strings.Fields(line)
			if len(fields) != 3 {
				fmt.Println("Usage: /login <username> <password>")
				continue
			}
			d.Login(fields[1], fields[2])
		case strings.HasPrefix(line, "/chat "):
			d.SelectPeer(strings.TrimSpace(strings.TrimPrefix(line, "/chat ")))
		case strings.HasPrefix(line, "/find"):
			d.Find(line)
		case line == "/peers":
			d.ShowPeers()
		case line == "/yes":
			d.ConfirmSignup()
		case line == "/no":
			d.DeclineSignup()
		case line == "/forget":
			if err := store.Forget(); err != nil {
				log.Warn("Forget failed", "err", err)
			}
		case strings.HasPrefix(line, "/"):
			fmt.Println("Commands: /login /chat /peers /find /yes /no /forget")
		default:
			d.Send(line)
		}
	}
}
