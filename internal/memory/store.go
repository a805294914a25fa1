// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package memory holds the research session's working state: an ordered,
// URL-deduplicated store of curated findings and a ledger of every
// sub-query dispatched to the search provider. Both live only for the
// duration of a single run.
package memory

import (
	"fmt"
	"strings"

	"github.com/pdiddy/industry-analyst/pkg/types"
)

// summaryCap bounds each summary's length inside the reflection context.
// Applied per item before the overall character budget is accounted.
const summaryCap = 250

// emptyContext is rendered when the store holds no findings yet.
const emptyContext = "No relevant information has been collected yet."

// Store is the ordered collection of findings gathered across passes.
// Insertion order is preserved; URL is the sole identity key.
type Store struct {
	findings []types.Finding
	seen     map[string]bool
}

// NewStore returns an empty result store.
func NewStore() *Store {
	return &Store{seen: make(map[string]bool)}
}

// Add inserts a finding if its URL has not been seen and it carries text
// in either Summary or Snippet. It reports whether the insertion
// happened. The URL is remembered even when the finding is rejected for
// lacking text, so a later duplicate cannot resurrect a textless source;
// the first-seen finding for a URL always wins.
func (s *Store) Add(f types.Finding) bool {
	if f.URL == "" || s.seen[f.URL] {
		return false
	}
	s.seen[f.URL] = true

	if strings.TrimSpace(f.Summary) == "" {
		f.Summary = f.Snippet
	}
	if strings.TrimSpace(f.Summary) == "" {
		return false
	}

	s.findings = append(s.findings, f)
	return true
}

// Prune removes every finding whose URL appears in urls and returns the
// number removed. Unknown URLs are ignored. Pruned URLs stay in the
// seen set, so a pruned source cannot be re-added by a later search.
func (s *Store) Prune(urls []string) int {
	if len(urls) == 0 || len(s.findings) == 0 {
		return 0
	}
	drop := make(map[string]bool, len(urls))
	for _, u := range urls {
		drop[u] = true
	}

	kept := s.findings[:0]
	removed := 0
	for _, f := range s.findings {
		if drop[f.URL] {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	s.findings = kept
	return removed
}

// Len returns the number of findings currently held.
func (s *Store) Len() int { return len(s.findings) }

// IsEmpty reports whether the store holds no findings.
func (s *Store) IsEmpty() bool { return len(s.findings) == 0 }

// Findings returns a copy of the stored findings in insertion order.
func (s *Store) Findings() []types.Finding {
	out := make([]types.Finding, len(s.findings))
	copy(out, s.findings)
	return out
}

// Summaries returns the summary text of every finding in insertion order.
func (s *Store) Summaries() []string {
	out := make([]string, 0, len(s.findings))
	for _, f := range s.findings {
		out = append(out, f.Summary)
	}
	return out
}

// RenderContext serializes findings into a bounded textual context for
// reflection. Selection walks newest-first so recent evidence survives a
// tight budget; each summary is capped at 250 runes before budget
// accounting; an item that would push the running total past maxChars
// stops the walk. The selected subset is then emitted oldest-first.
func (s *Store) RenderContext(maxChars int) string {
	if s.IsEmpty() {
		return emptyContext
	}

	var blocks []string
	used := 0
	for i := len(s.findings) - 1; i >= 0; i-- {
		f := s.findings[i]
		block := fmt.Sprintf("  - query %q: %s (source: %s)\n",
			f.Subquery, truncateRunes(f.Summary, summaryCap), f.URL)
		used += len(block)
		if maxChars > 0 && used > maxChars {
			break
		}
		blocks = append(blocks, block)
	}

	// Restore chronological order for readability.
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return strings.Join(blocks, "")
}

// RenderFullContext serializes every finding at full fidelity for the
// final synthesis prompt. No budget applies.
func (s *Store) RenderFullContext() string {
	blocks := make([]string, 0, len(s.findings))
	for _, f := range s.findings {
		blocks = append(blocks, fmt.Sprintf(
			"Source URL: %s\nSubquery: %s\nTitle: %s\nSummary: %s",
			f.URL, f.Subquery, f.Title, f.Summary))
	}
	return strings.Join(blocks, "\n\n")
}

// truncateRunes caps s at max runes, appending an ellipsis when cut.
// Rune-based so CJK summaries are never split mid-character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
