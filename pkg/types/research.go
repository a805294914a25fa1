// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the industry-analyst
// research loop: search results, curated findings, reflection verdicts,
// and the configuration structs consumed by the CLI and adapters.
package types

import "strings"

// SearchItem is one candidate result returned by a web search provider.
// Only items with a URL and at least one of Summary or Snippet are usable.
type SearchItem struct {
	// URL is the source page address and the sole deduplication key.
	URL string `json:"url"`

	// Title is the page title as returned by the provider.
	Title string `json:"title"`

	// Summary is the provider-generated summary of the page, when requested.
	Summary string `json:"summary"`

	// Snippet is the short excerpt shown on the result page; used as a
	// fallback body when no summary is available.
	Snippet string `json:"snippet"`
}

// Text returns the item's primary body: the summary when present,
// otherwise the snippet.
func (s SearchItem) Text() string {
	if strings.TrimSpace(s.Summary) != "" {
		return s.Summary
	}
	return s.Snippet
}

// Finding is one consolidated unit of evidence held in the result store.
// Findings are created from search items, never mutated in place, and
// removed only by a reflection-driven prune.
type Finding struct {
	// URL uniquely identifies the finding within a session.
	URL string `json:"url"`

	// Title is the source page title.
	Title string `json:"title"`

	// Summary is the primary text body. On creation it falls back to the
	// snippet when the provider returned no summary.
	Summary string `json:"summary"`

	// Snippet is the original short excerpt, kept for reference.
	Snippet string `json:"snippet,omitempty"`

	// Subquery records which search query produced this finding.
	Subquery string `json:"subquery"`
}

// Reflection is the verdict returned by the reflection step of each
// research pass.
type Reflection struct {
	// CanAnswer reports whether the collected evidence is judged
	// sufficient to answer the root question.
	CanAnswer bool `json:"can_answer"`

	// IrrelevantURLs lists findings to discard from the result store.
	IrrelevantURLs []string `json:"irrelevant_urls"`

	// NewSubqueries proposes the next pass's search queries.
	NewSubqueries []string `json:"new_subqueries"`
}
