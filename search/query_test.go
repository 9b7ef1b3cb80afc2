package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	t.Run("should extract terms, peer, and limit", func(t *testing.T) {
		req := require.New(t)

		q := NewQuery(`/find "invoice" --peer bob --limit 5`)

		req.Equal("invoice", q.Terms)
		req.Equal("bob", q.Peer)
		req.Equal(5, q.Limit)
	})

	t.Run("should default the limit and leave the peer open", func(t *testing.T) {
		req := require.New(t)

		q := NewQuery("/find hello world")

		req.Equal("hello world", q.Terms)
		req.Empty(q.Peer)
		req.Equal(10, q.Limit)
	})

	t.Run("should ignore a non-numeric limit", func(t *testing.T) {
		req := require.New(t)

		q := NewQuery("/find hello --limit lots")

		req.Equal("hello", q.Terms)
		req.Equal(10, q.Limit)
	})
}
