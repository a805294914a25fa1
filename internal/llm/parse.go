// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/industry-analyst/pkg/types"
)

// ParsePlan extracts the sub-query list from a planning response. The
// model is asked for {"subqueries": [...]}; a response that is not a
// JSON object or carries no usable sub-queries is an error, which the
// caller handles with its root-question fallback.
func ParsePlan(raw string) ([]string, error) {
	var plan struct {
		Subqueries []any `json:"subqueries"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &plan); err != nil {
		return nil, fmt.Errorf("parsing plan response: %w", err)
	}

	queries := stringList(plan.Subqueries)
	if len(queries) == 0 {
		return nil, fmt.Errorf("plan response contained no sub-queries")
	}
	return queries, nil
}

// ParseReflection extracts the verdict from a reflection response.
// Individual fields with the wrong type fall back to their zero value;
// only an entirely unparseable response is an error.
func ParseReflection(raw string) (types.Reflection, error) {
	var verdict struct {
		CanAnswer      any `json:"can_answer"`
		IrrelevantURLs any `json:"irrelevant_urls"`
		NewSubqueries  any `json:"new_subqueries"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &verdict); err != nil {
		return types.Reflection{}, fmt.Errorf("parsing reflection response: %w", err)
	}

	refl := types.Reflection{
		IrrelevantURLs: anyStringList(verdict.IrrelevantURLs),
		NewSubqueries:  anyStringList(verdict.NewSubqueries),
	}
	if b, ok := verdict.CanAnswer.(bool); ok {
		refl.CanAnswer = b
	}
	return refl, nil
}

// stripFences removes a Markdown code fence wrapper some models add
// around JSON output despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func anyStringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	return stringList(list)
}

func stringList(list []any) []string {
	var out []string
	for _, v := range list {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
