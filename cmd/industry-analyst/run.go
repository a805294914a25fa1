// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/industry-analyst/internal/analyze"
	"github.com/pdiddy/industry-analyst/internal/archive"
	"github.com/pdiddy/industry-analyst/internal/industry"
	"github.com/pdiddy/industry-analyst/internal/llm"
	"github.com/pdiddy/industry-analyst/internal/report"
	"github.com/pdiddy/industry-analyst/internal/research"
	"github.com/pdiddy/industry-analyst/internal/websearch"
)

var runCmd = &cobra.Command{
	Use:   "run [question]",
	Short: "Research a question and synthesize a cited report",
	Long: `Run executes the full research loop for one question: plan sub-questions,
search the web, reflect on the evidence, and stream a cited analysis
report to stdout. Progress goes to stderr; the finished report is saved
under the reports directory unless --no-save is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResearch,
}

func init() {
	runCmd.Flags().String("industry", "tech", "industry bundle to use (see 'industries')")
	runCmd.Flags().Int("max-iterations", 0, "override the research iteration budget")
	runCmd.Flags().String("output-dir", "", "override the reports directory")
	runCmd.Flags().Bool("no-save", false, "print the report without saving it")

	rootCmd.AddCommand(runCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question must not be empty")
	}

	cfg := loadConfig()
	if v, _ := cmd.Flags().GetInt("max-iterations"); v > 0 {
		cfg.Research.MaxIterations = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Output.ReportsDir = v
	}

	industryKey, _ := cmd.Flags().GetString("industry")
	bundles, err := industry.Load(cfg.IndustriesDir)
	if err != nil {
		return err
	}
	ind, ok := bundles[industryKey]
	if !ok {
		return fmt.Errorf("unknown industry %q: run 'industry-analyst industries' to list available bundles", industryKey)
	}

	if cfg.Search.APIKey == "" {
		return fmt.Errorf("search API key missing: set .secrets/bocha-api-key or search.api_key")
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("chat API key missing: set .secrets/dashscope-api-key or llm.api_key")
	}

	client := &llm.Client{
		BaseURL:    cfg.LLM.BaseURL,
		APIKey:     cfg.LLM.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.LLM.Timeout},
		MaxRetries: cfg.LLM.MaxRetries,
		UserAgent:  cfg.LLM.UserAgent,
	}
	assistant := &llm.Assistant{Client: client, Model: cfg.LLM.Model, System: ind.AssistantPrompt}
	synthesizer := &llm.Synthesizer{Client: client, Model: cfg.LLM.SynthesisModel, System: ind.SynthesizerPrompt}

	orch := research.New(assistant, websearch.New(cfg.Search), assistant, synthesizer,
		research.WithConfig(cfg.Research),
		research.WithAnalyzer(analyze.Scanner{}),
		research.WithProgress(os.Stderr),
		research.WithChunkWriter(os.Stdout),
	)

	res, err := orch.Run(context.Background(), question, ind)
	if err != nil {
		switch {
		case errors.Is(err, research.ErrConfiguration):
			return fmt.Errorf("industry %q is misconfigured: %w", industryKey, err)
		case errors.Is(err, research.ErrNoFindings):
			return fmt.Errorf("no usable search results: %w", err)
		}
		return err
	}
	fmt.Fprintln(os.Stdout)

	reportPath := ""
	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		reportPath = filepath.Join(cfg.Output.ReportsDir, report.Filename(ind.FilenamePrefix, question))
		if err := report.Write(reportPath, ind.Name, question, res.Report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", reportPath)
	}

	recordRun(cfg.Archive.Dir, archive.Entry{
		Industry:   ind.Name,
		Question:   question,
		Outcome:    string(res.Outcome),
		Findings:   res.Findings,
		Iterations: res.Iterations,
		Degraded:   res.Degraded,
		ReportPath: reportPath,
	})

	fmt.Fprintf(os.Stderr, "Done: %s after %d iteration(s), %d findings\n",
		res.Outcome, res.Iterations, res.Findings)
	if res.Degraded {
		return fmt.Errorf("report synthesis failed; degraded report produced")
	}
	return nil
}

// recordRun archives the run metadata. Archive failures are warnings;
// the report itself already exists.
func recordRun(dir string, e archive.Entry) {
	store, err := archive.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open archive: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(e); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not archive run: %v\n", err)
	}
}
