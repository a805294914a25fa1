// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research implements the iterative research loop that turns a
// single question into a cited analytical report: plan sub-queries,
// search, merge and deduplicate findings, reflect on sufficiency, repeat
// until convergence or budget exhaustion, then synthesize.
package research

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/industry-analyst/internal/industry"
	"github.com/pdiddy/industry-analyst/internal/memory"
	"github.com/pdiddy/industry-analyst/pkg/types"
)

// Planner decomposes the root question into initial sub-queries.
type Planner interface {
	Plan(ctx context.Context, prompt string) ([]string, error)
}

// Searcher returns candidate findings for one sub-query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]types.SearchItem, error)
}

// Reflector judges the collected evidence: sufficiency, findings to
// discard, and new sub-queries to pursue.
type Reflector interface {
	Reflect(ctx context.Context, prompt string) (types.Reflection, error)
}

// Analyzer produces a short statistical digest of the collected
// summaries, or an empty string when nothing quantifiable was found.
type Analyzer interface {
	Digest(texts, keywords []string) string
}

// Synthesizer streams the final report, invoking emit once per text chunk.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string, emit func(chunk string)) error
}

// Outcome records how the research loop ended.
type Outcome string

const (
	// OutcomeConverged means reflection judged the evidence sufficient.
	OutcomeConverged Outcome = "converged"

	// OutcomeExhausted means the iteration budget ran out first.
	OutcomeExhausted Outcome = "exhausted"

	// OutcomeStalled means reflection produced no searchable new
	// sub-queries without declaring sufficiency, so the loop exited
	// early rather than spinning through the remaining budget.
	OutcomeStalled Outcome = "stalled"
)

// The two hard-stop conditions. Every other failure is recovered with a
// documented fallback inside the loop.
var (
	// ErrConfiguration indicates an incomplete industry bundle. Nothing
	// is attempted.
	ErrConfiguration = errors.New("incomplete industry configuration")

	// ErrNoFindings indicates the loop finished with an empty store, so
	// no synthesis was attempted.
	ErrNoFindings = errors.New("no findings collected")
)

// Result is the output of one research run.
type Result struct {
	// Report is the synthesized text, or a degraded placeholder when
	// synthesis failed (see Degraded).
	Report string

	// Outcome records how the loop terminated.
	Outcome Outcome

	// Iterations is the number of passes executed.
	Iterations int

	// Findings is the store size at synthesis time.
	Findings int

	// Digest is the data-scan summary included in the synthesis prompt,
	// empty when the scan was skipped or found nothing.
	Digest string

	// Degraded reports that synthesis failed and Report holds the
	// placeholder text instead of a real report.
	Degraded bool
}

// Orchestrator drives the research loop over a set of capability
// adapters. All adapter calls are sequential and blocking; the store and
// ledger have a single owner.
type Orchestrator struct {
	planner     Planner
	searcher    Searcher
	reflector   Reflector
	analyzer    Analyzer
	synthesizer Synthesizer
	cfg         types.ResearchConfig
	progress    io.Writer
	chunks      io.Writer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithAnalyzer enables the optional data scan before synthesis.
func WithAnalyzer(a Analyzer) Option {
	return func(o *Orchestrator) { o.analyzer = a }
}

// WithConfig overrides the loop parameters. Zero fields keep defaults.
func WithConfig(cfg types.ResearchConfig) Option {
	return func(o *Orchestrator) {
		if cfg.MaxIterations > 0 {
			o.cfg.MaxIterations = cfg.MaxIterations
		}
		if cfg.SearchDelay >= 0 {
			o.cfg.SearchDelay = cfg.SearchDelay
		}
		if cfg.ContextChars > 0 {
			o.cfg.ContextChars = cfg.ContextChars
		}
		if cfg.DigestThreshold > 0 {
			o.cfg.DigestThreshold = cfg.DigestThreshold
		}
	}
}

// WithProgress sets the writer for progress lines (default: discarded).
func WithProgress(w io.Writer) Option {
	return func(o *Orchestrator) { o.progress = w }
}

// WithChunkWriter mirrors streamed report chunks to w as they arrive,
// for incremental display.
func WithChunkWriter(w io.Writer) Option {
	return func(o *Orchestrator) { o.chunks = w }
}

// New constructs an Orchestrator over the required adapters.
func New(p Planner, s Searcher, r Reflector, syn Synthesizer, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		planner:     p,
		searcher:    s,
		reflector:   r,
		synthesizer: syn,
		cfg: types.ResearchConfig{
			MaxIterations:   3,
			SearchDelay:     1500 * time.Millisecond,
			ContextChars:    20000,
			DigestThreshold: 4,
		},
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the full loop for question under the given industry
// bundle. It returns ErrConfiguration when the bundle is missing prompt
// templates and ErrNoFindings when every search came back empty; any
// other adapter failure degrades per its documented fallback.
func (o *Orchestrator) Run(ctx context.Context, question string, ind industry.Config) (Result, error) {
	if err := ind.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	store := memory.NewStore()
	ledger := memory.NewLedger()

	var subqueries []string
	outcome := OutcomeExhausted
	iterations := 0

	for iter := 0; iter < o.cfg.MaxIterations; iter++ {
		iterations = iter + 1
		fmt.Fprintf(o.progress, "--- %s: iteration %d/%d ---\n", ind.Name, iter+1, o.cfg.MaxIterations)

		if iter == 0 {
			subqueries = o.plan(ctx, question, ind)
		}

		toSearch := ledger.FilterNew(subqueries)
		noProgress := iter > 0 && len(toSearch) == 0
		if noProgress {
			fmt.Fprintln(o.progress, "no unsearched sub-queries; reflecting on unchanged memory")
		}

		added := o.searchAndMerge(ctx, toSearch, ledger, store)
		fmt.Fprintf(o.progress, "added %d new findings (store size %d)\n", added, store.Len())

		refl := o.reflect(ctx, question, ind, store)

		// Pruning applies before the convergence check, so a converging
		// pass still discards what reflection flagged.
		if n := store.Prune(refl.IrrelevantURLs); n > 0 {
			fmt.Fprintf(o.progress, "pruned %d irrelevant findings (store size %d)\n", n, store.Len())
		}

		if refl.CanAnswer {
			fmt.Fprintln(o.progress, "reflection: evidence judged sufficient")
			outcome = OutcomeConverged
			break
		}

		subqueries = refl.NewSubqueries
		if len(subqueries) == 0 {
			if iter < o.cfg.MaxIterations-1 {
				fmt.Fprintln(o.progress, "reflection proposed no new sub-queries; stopping early")
				outcome = OutcomeStalled
			}
			break
		}
		if noProgress && len(ledger.FilterNew(subqueries)) == 0 {
			fmt.Fprintln(o.progress, "reflection repeated already-searched sub-queries; stopping early")
			outcome = OutcomeStalled
			break
		}
	}

	if store.IsEmpty() {
		return Result{Outcome: outcome, Iterations: iterations},
			fmt.Errorf("%w after %d iteration(s)", ErrNoFindings, iterations)
	}

	digest := o.enrich(ind, store)

	report, degraded := o.synthesize(ctx, question, ind, store, digest)
	return Result{
		Report:     report,
		Outcome:    outcome,
		Iterations: iterations,
		Findings:   store.Len(),
		Digest:     digest,
		Degraded:   degraded,
	}, nil
}

// plan asks the planner for initial sub-queries. Any failure — prompt
// rendering, the adapter call, or an empty decomposition — falls back to
// the root question itself so the loop always makes forward progress.
func (o *Orchestrator) plan(ctx context.Context, question string, ind industry.Config) []string {
	prompt, err := ind.RenderPlanPrompt(question)
	if err == nil {
		var queries []string
		if queries, err = o.planner.Plan(ctx, prompt); err == nil {
			if queries = dropBlank(queries); len(queries) > 0 {
				fmt.Fprintf(o.progress, "planned %d sub-queries\n", len(queries))
				return queries
			}
			err = errors.New("planner returned no usable sub-queries")
		}
	}
	fmt.Fprintf(o.progress, "warning: planning failed (%v); falling back to the root question\n", err)
	return []string{question}
}

// searchAndMerge dispatches each query, marks it in the ledger, and
// merges results into the store. A fixed pause separates consecutive
// search calls. Individual search failures are logged and skipped.
func (o *Orchestrator) searchAndMerge(ctx context.Context, queries []string, ledger *memory.Ledger, store *memory.Store) int {
	added := 0
	for i, q := range queries {
		if i > 0 && o.cfg.SearchDelay > 0 {
			time.Sleep(o.cfg.SearchDelay)
		}
		ledger.Mark(q)
		fmt.Fprintf(o.progress, "searching: %s\n", q)

		items, err := o.searcher.Search(ctx, q)
		if err != nil {
			fmt.Fprintf(o.progress, "warning: search %q failed: %v\n", q, err)
			continue
		}
		for _, it := range items {
			f := types.Finding{
				URL:      it.URL,
				Title:    it.Title,
				Summary:  it.Text(),
				Snippet:  it.Snippet,
				Subquery: q,
			}
			if store.Add(f) {
				added++
			}
		}
	}
	return added
}

// reflect builds the bounded context and asks the reflector for a
// verdict. Failure yields the zero verdict: cannot answer, nothing to
// prune, no new sub-queries.
func (o *Orchestrator) reflect(ctx context.Context, question string, ind industry.Config, store *memory.Store) types.Reflection {
	bounded := store.RenderContext(o.cfg.ContextChars)
	prompt, err := ind.RenderReflectionPrompt(question, bounded)
	if err != nil {
		fmt.Fprintf(o.progress, "warning: reflection prompt failed: %v\n", err)
		return types.Reflection{}
	}

	refl, err := o.reflector.Reflect(ctx, prompt)
	if err != nil {
		fmt.Fprintf(o.progress, "warning: reflection failed: %v\n", err)
		return types.Reflection{}
	}
	refl.NewSubqueries = dropBlank(refl.NewSubqueries)
	return refl
}

// enrich runs the optional data scan once the store is large enough.
func (o *Orchestrator) enrich(ind industry.Config, store *memory.Store) string {
	if o.analyzer == nil || store.Len() < o.cfg.DigestThreshold {
		return ""
	}
	digest := o.analyzer.Digest(store.Summaries(), ind.AnalyzerKeywords)
	if digest != "" {
		fmt.Fprintln(o.progress, "data scan produced a digest for synthesis")
	}
	return digest
}

// synthesize assembles the full context and streams the report. Any
// failure returns the degraded placeholder instead of propagating.
func (o *Orchestrator) synthesize(ctx context.Context, question string, ind industry.Config, store *memory.Store, digest string) (report string, degraded bool) {
	prompt, err := ind.RenderSynthesisPrompt(question, store.RenderFullContext(), digestSection(digest))
	if err != nil {
		fmt.Fprintf(o.progress, "warning: synthesis prompt failed: %v\n", err)
		return degradedReport(ind.Name), true
	}

	var b strings.Builder
	emit := func(chunk string) {
		b.WriteString(chunk)
		if o.chunks != nil {
			io.WriteString(o.chunks, chunk)
		}
	}

	fmt.Fprintf(o.progress, "synthesizing final %s report from %d findings\n", ind.Name, store.Len())
	if err := o.synthesizer.Synthesize(ctx, prompt, emit); err != nil {
		fmt.Fprintf(o.progress, "warning: synthesis failed: %v\n", err)
		return degradedReport(ind.Name), true
	}
	return b.String(), false
}

// digestSection wraps a non-empty digest for inclusion in the synthesis
// prompt.
func digestSection(digest string) string {
	if digest == "" {
		return ""
	}
	return "\n\nSupplemental data scan summary:\n" + digest + "\n"
}

func degradedReport(industryName string) string {
	return fmt.Sprintf("Sorry, an error occurred while generating the final %s report.", industryName)
}

func dropBlank(queries []string) []string {
	var out []string
	for _, q := range queries {
		if strings.TrimSpace(q) != "" {
			out = append(out, q)
		}
	}
	return out
}
