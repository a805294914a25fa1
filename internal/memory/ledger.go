// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package memory

import "strings"

// Ledger tracks every sub-query ever dispatched during a session, so no
// query is searched twice even when a later reflection proposes it again.
type Ledger struct {
	searched map[string]bool
}

// NewLedger returns an empty query ledger.
func NewLedger() *Ledger {
	return &Ledger{searched: make(map[string]bool)}
}

// Seen reports whether the query has already been marked searched.
func (l *Ledger) Seen(query string) bool { return l.searched[query] }

// Mark records the query as searched. Marking twice is a no-op.
func (l *Ledger) Mark(query string) { l.searched[query] = true }

// FilterNew returns the subsequence of queries not yet searched, in
// input order. Empty and whitespace-only strings are dropped, as are
// duplicates within the input itself.
func (l *Ledger) FilterNew(queries []string) []string {
	var out []string
	inBatch := make(map[string]bool, len(queries))
	for _, q := range queries {
		if strings.TrimSpace(q) == "" || l.searched[q] || inBatch[q] {
			continue
		}
		inBatch[q] = true
		out = append(out, q)
	}
	return out
}
