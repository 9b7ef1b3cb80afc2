// Package search keeps a local full-text index over every message the client
// has seen. The index is a convenience view: display ordering and history
// content always come from the conversation store, never from here.
package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters of a local history search.
// It decouples the raw chat input from the index engine requirements.
type Query struct {
	RawInput string // The original input from the user
	Terms    string // The actual text to search
	Peer     string // Restrict to one conversation, empty means all
	Limit    int    // Maximum number of results
}

// NewQuery parses a raw string to extract command-line style arguments.
// Example: /find "invoice" --peer bob --limit 5
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // Default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --peer bob or --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "peer":
				query.Peer = val
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a flag, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, strings.Trim(part, `"`))
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
