package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"

	"peerchat/domain"
)

// Hit is one search result.
type Hit struct {
	Peer string
	From string
	Text string
	At   time.Time
}

type Index struct {
	log    *slog.Logger
	writer *bluge.Writer
}

// NewIndex opens the index for the given config. Use bluge.DefaultConfig for
// an on-disk index and bluge.InMemoryOnlyConfig in tests.
func NewIndex(cfg bluge.Config, log *slog.Logger) (*Index, error) {
	writer, err := bluge.OpenWriter(cfg)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Index{log: log, writer: writer}, nil
}

// IndexMessage adds one received message under its conversation peer.
// Indexing is keyed by the local message ID, so re-indexing the same message
// (a history reload) overwrites instead of duplicating.
func (x *Index) IndexMessage(peer string, m domain.Message) error {
	doc := bluge.NewDocument(m.ID.String()).
		AddField(bluge.NewTextField("text", m.Text).StoreValue()).
		AddField(bluge.NewKeywordField("peer", peer).StoreValue()).
		AddField(bluge.NewKeywordField("from", m.From).StoreValue()).
		AddField(bluge.NewDateTimeField("at", m.Timestamp)).
		AddField(bluge.NewStoredOnlyField("ts", []byte(m.Timestamp.UTC().Format(time.RFC3339Nano))))
	return x.writer.Update(doc.ID(), doc)
}

// Find runs a parsed query and returns the newest matches first.
func (x *Index) Find(ctx context.Context, q *Query) ([]Hit, error) {
	if q.Terms == "" {
		return nil, nil
	}

	reader, err := x.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			x.log.Warn("Index reader close failed", "err", err)
		}
	}()

	var query bluge.Query = bluge.NewMatchQuery(q.Terms).SetField("text")
	if q.Peer != "" {
		query = bluge.NewBooleanQuery().
			AddMust(query).
			AddMust(bluge.NewTermQuery(q.Peer).SetField("peer"))
	}

	request := bluge.NewTopNSearch(q.Limit, query).SortBy([]string{"-at"})
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	var hits []Hit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("index iterate: %w", err)
		}
		if match == nil {
			break
		}

		var hit Hit
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "peer":
				hit.Peer = string(value)
			case "from":
				hit.From = string(value)
			case "text":
				hit.Text = string(value)
			case "ts":
				if at, err := time.Parse(time.RFC3339Nano, string(value)); err == nil {
					hit.At = at
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("index visit: %w", err)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (x *Index) Close() error {
	return x.writer.Close()
}
