// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes finished reports to disk under predictable,
// filesystem-safe names derived from the question.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const questionRunes = 30

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separators  = regexp.MustCompile(`[-\s]+`)
)

// Filename derives a report filename from the industry prefix and the
// question: the first 30 runes of the question with unsafe characters
// stripped and whitespace collapsed to underscores.
func Filename(prefix, question string) string {
	runes := []rune(question)
	if len(runes) > questionRunes {
		runes = runes[:questionRunes]
	}
	name := unsafeChars.ReplaceAllString(string(runes), "")
	name = separators.ReplaceAllString(strings.TrimSpace(name), "_")
	if name == "" {
		name = "report"
	}
	return prefix + name + ".txt"
}

// Write saves the report body with a metadata header to path, creating
// parent directories as needed.
func Write(path, industryName, question, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating reports directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Industry: %s\n", industryName)
	fmt.Fprintf(&b, "Question: %s\n", question)
	b.WriteString("========== Report ==========\n\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
