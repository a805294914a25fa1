package memory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/industry-analyst/pkg/types"
)

func finding(url, summary, query string) types.Finding {
	return types.Finding{URL: url, Title: "t-" + url, Summary: summary, Subquery: query}
}

// --- Add ---

func TestAddDeduplicatesByURL(t *testing.T) {
	s := NewStore()

	if !s.Add(finding("http://a", "first", "q1")) {
		t.Fatal("first insert should succeed")
	}
	if s.Add(finding("http://a", "second", "q2")) {
		t.Error("duplicate URL should be rejected")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if got := s.Findings()[0].Summary; got != "first" {
		t.Errorf("retained summary = %q, want first-seen %q", got, "first")
	}
}

func TestAddRequiresText(t *testing.T) {
	s := NewStore()

	if s.Add(types.Finding{URL: "http://a", Summary: "  "}) {
		t.Error("textless finding should be rejected")
	}
	// The URL is remembered even for the rejected insert.
	if s.Add(finding("http://a", "now with text", "q")) {
		t.Error("URL seen via a textless result must not be re-added")
	}
	if !s.IsEmpty() {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestAddFallsBackToSnippet(t *testing.T) {
	s := NewStore()

	ok := s.Add(types.Finding{URL: "http://a", Snippet: "snippet text", Subquery: "q"})
	if !ok {
		t.Fatal("finding with snippet only should be accepted")
	}
	if got := s.Findings()[0].Summary; got != "snippet text" {
		t.Errorf("Summary = %q, want snippet fallback", got)
	}
}

func TestAddRejectsEmptyURL(t *testing.T) {
	s := NewStore()
	if s.Add(types.Finding{Summary: "text"}) {
		t.Error("finding without URL should be rejected")
	}
}

// --- Prune ---

func TestPruneRemovesListedURLs(t *testing.T) {
	s := NewStore()
	s.Add(finding("u1", "a", "q"))
	s.Add(finding("u2", "b", "q"))
	s.Add(finding("u3", "c", "q"))

	removed := s.Prune([]string{"u1", "u3", "unknown"})
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if s.Len() != 1 || s.Findings()[0].URL != "u2" {
		t.Errorf("remaining = %v, want only u2", s.Findings())
	}
}

func TestPruneUnknownURLsIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(finding("u1", "a", "q"))

	if removed := s.Prune([]string{"nope", "also-nope"}); removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestPrunedURLStaysSeen(t *testing.T) {
	s := NewStore()
	s.Add(finding("u1", "a", "q"))
	s.Prune([]string{"u1"})

	if s.Add(finding("u1", "back again", "q2")) {
		t.Error("pruned URL should not be re-addable")
	}
}

// --- RenderContext ---

func TestRenderContextEmptyStore(t *testing.T) {
	s := NewStore()
	if got := s.RenderContext(1000); got != emptyContext {
		t.Errorf("RenderContext() = %q, want placeholder", got)
	}
}

func TestRenderContextChronologicalOrder(t *testing.T) {
	s := NewStore()
	s.Add(finding("u1", "oldest", "q1"))
	s.Add(finding("u2", "middle", "q2"))
	s.Add(finding("u3", "newest", "q3"))

	ctx := s.RenderContext(100000)
	i1 := strings.Index(ctx, "oldest")
	i2 := strings.Index(ctx, "middle")
	i3 := strings.Index(ctx, "newest")
	if i1 < 0 || i2 < 0 || i3 < 0 {
		t.Fatalf("missing entries in context: %q", ctx)
	}
	if !(i1 < i2 && i2 < i3) {
		t.Errorf("entries out of chronological order: %d %d %d", i1, i2, i3)
	}
}

func TestRenderContextBudgetPrefersNewest(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.Add(finding(fmt.Sprintf("u%d", i), strings.Repeat("x", 200), fmt.Sprintf("q%d", i)))
	}

	// A budget that fits roughly two blocks must keep the newest entries.
	ctx := s.RenderContext(500)
	if !strings.Contains(ctx, "u9") {
		t.Error("newest finding should survive a tight budget")
	}
	if strings.Contains(ctx, "\"q0\"") {
		t.Error("oldest finding should be dropped under a tight budget")
	}
}

func TestRenderContextCapsSummaries(t *testing.T) {
	s := NewStore()
	long := strings.Repeat("a", 400)
	s.Add(finding("u1", long, "q"))

	ctx := s.RenderContext(100000)
	if strings.Contains(ctx, long) {
		t.Error("summary should be capped at 250 runes")
	}
	if !strings.Contains(ctx, strings.Repeat("a", 250)+"...") {
		t.Error("capped summary should end with an ellipsis")
	}
}

func TestRenderContextCapIsRuneSafe(t *testing.T) {
	s := NewStore()
	long := strings.Repeat("市", 300)
	s.Add(finding("u1", long, "q"))

	ctx := s.RenderContext(100000)
	if !strings.Contains(ctx, strings.Repeat("市", 250)+"...") {
		t.Error("CJK summary should be capped on rune boundaries")
	}
}

// --- RenderFullContext ---

func TestRenderFullContext(t *testing.T) {
	s := NewStore()
	long := strings.Repeat("detail ", 100)
	s.Add(types.Finding{URL: "u1", Title: "Title One", Summary: long, Subquery: "q1"})
	s.Add(types.Finding{URL: "u2", Title: "Title Two", Summary: "short", Subquery: "q2"})

	full := s.RenderFullContext()
	for _, want := range []string{"Source URL: u1", "Title: Title One", long, "Subquery: q2"} {
		if !strings.Contains(full, want) {
			t.Errorf("full context missing %q", want)
		}
	}
	if strings.Contains(full, "...") {
		t.Error("full context must not truncate summaries")
	}
}
