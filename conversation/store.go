// Package conversation holds per-peer message history, the focused
// conversation, and unseen counters. Invariants:
//   - the focused conversation always has an unseen count of 0;
//   - message order is arrival order, never re-sorted;
//   - at most one conversation is focused, and only Focus changes it.
package conversation

import (
	"log/slog"
	"strings"

	"peerchat/domain"
	"peerchat/errors"
)

// pendingLoad tags one in-flight "load messages" request. The wire contract
// answers requests in order and the response carries no peer, so the store
// keeps a FIFO of outstanding requests and drops answers whose target is no
// longer the focused conversation.
type pendingLoad struct {
	peer string
	gen  uint64
}

type Store struct {
	log       *slog.Logger
	histories map[string][]domain.Message
	unseen    map[string]int
	focused   string
	gen       uint64
	pending   []pendingLoad
}

func NewStore(log *slog.Logger) *Store {
	return &Store{
		log:       log,
		histories: make(map[string][]domain.Message),
		unseen:    make(map[string]int),
	}
}

func (s *Store) Focused() string { return s.focused }

// Focus makes peer the focused conversation, resets its unseen counter, and
// returns the history request to emit. Re-focusing the same peer is a no-op
// beyond re-issuing the load. Each call bumps the load generation so that a
// slow response to a superseded request is discarded, not misapplied.
func (s *Store) Focus(peer string) domain.LoadMessagesCommand {
	s.focused = peer
	delete(s.unseen, peer)
	s.gen++
	s.pending = append(s.pending, pendingLoad{peer: peer, gen: s.gen})
	return domain.LoadMessagesCommand{User: peer}
}

// ReceiveHistory replaces the local history for peer with the given sequence,
// preserving the service-provided order.
func (s *Store) ReceiveHistory(peer string, messages []domain.Message) {
	history := make([]domain.Message, len(messages))
	copy(history, messages)
	s.histories[peer] = history
}

// ApplyHistory resolves a "chat history" response against the oldest
// outstanding request. The result is applied only when that request still
// matches the current focus and generation; anything stale is discarded.
func (s *Store) ApplyHistory(messages []domain.Message) (string, bool) {
	if len(s.pending) == 0 {
		s.log.Debug("Unsolicited history response discarded")
		return "", false
	}
	head := s.pending[0]
	s.pending = s.pending[1:]

	if head.gen != s.gen || head.peer != s.focused {
		s.log.Debug("Stale history response discarded", "peer", head.peer)
		return "", false
	}
	s.ReceiveHistory(head.peer, messages)
	return head.peer, true
}

// ReceiveMessage appends an inbound or echoed message to its conversation and
// reports whether it must trigger an alert. Echoes of the current user's own
// sends land in the focused conversation and never count as unseen.
func (s *Store) ReceiveMessage(currentUser string, msg domain.Message) bool {
	if msg.From == currentUser {
		if s.focused == "" {
			// Echo with nothing focused: nowhere to put it. The send guard
			// makes this unreachable in practice.
			s.log.Debug("Own echo dropped, no focused conversation")
			return false
		}
		s.histories[s.focused] = append(s.histories[s.focused], msg)
		return false
	}

	s.histories[msg.From] = append(s.histories[msg.From], msg)
	if msg.From != s.focused {
		s.unseen[msg.From]++
		return true
	}
	return false
}

// Send validates and builds the outbound message event. The message is not
// appended locally: the client relies on the server echo for ordering, so a
// sent message only appears once the service confirms it.
func (s *Store) Send(text string) (domain.ChatMessageCommand, error) {
	if s.focused == "" {
		return domain.ChatMessageCommand{}, errors.ErrNoFocus
	}
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessageCommand{}, errors.ErrValidation
	}
	return domain.ChatMessageCommand{To: s.focused, Msg: text}, nil
}

// History returns a copy of the conversation with peer, in arrival order.
func (s *Store) History(peer string) []domain.Message {
	history := s.histories[peer]
	out := make([]domain.Message, len(history))
	copy(out, history)
	return out
}

func (s *Store) UnseenCount(peer string) int { return s.unseen[peer] }

// Reset drops all conversation state, used when the session is torn down.
func (s *Store) Reset() {
	s.histories = make(map[string][]domain.Message)
	s.unseen = make(map[string]int)
	s.focused = ""
	s.pending = nil
	s.gen = 0
}
