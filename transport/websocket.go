package transport

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fasthttp/websocket"

	"peerchat/domain"
	"peerchat/domain/event"
)

// Socket is the websocket-backed transport adapter. Its Run method is the
// read pump and implements contract.Worker so it lives under the supervisor;
// writes are serialized with a mutex since the dispatcher and the pump may
// touch the connection concurrently during shutdown.
type Socket struct {
	log     *slog.Logger
	conn    *websocket.Conn
	events  chan event.Event
	writeMu sync.Mutex
	once    sync.Once
}

// Dial connects to the routing service and returns a ready transport.
func Dial(ctx context.Context, log *slog.Logger, url string, bufferSize int) (*Socket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &Socket{
		log:    log,
		conn:   conn,
		events: make(chan event.Event, bufferSize),
	}, nil
}

// Emit encodes and writes one outbound command frame.
func (s *Socket) Emit(cmd domain.Command) error {
	data, err := EncodeCommand(cmd)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Events is the inbound stream consumed by the dispatcher. It is closed
// after the terminal Disconnected event.
func (s *Socket) Events() <-chan event.Event { return s.events }

// Run reads frames until the connection dies, forwarding decoded events in
// arrival order. Undecodable frames are logged and skipped: a bad frame must
// not take the channel down. The connection loss itself is delivered as a
// Disconnected event, then the stream closes and Run returns nil so the
// supervisor does not restart a dead socket.
func (s *Socket) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.conn.Close()
	}()

	defer close(s.events)
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				s.events <- event.Disconnected{Err: err}
			}
			return nil
		}

		evt, err := DecodeEvent(raw)
		if err != nil {
			s.log.Warn("Skipping undecodable frame", "err", err)
			continue
		}
		select {
		case s.events <- evt:
		case <-ctx.Done():
			return nil
		}
	}
}

// Close tears the connection down once.
func (s *Socket) Close() error {
	var err error
	s.once.Do(func() { err = s.conn.Close() })
	return err
}
