// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze runs a lightweight lexical scan over collected
// summaries: detected numbers, percentages, and industry keyword
// frequencies. The digest supplements the synthesis prompt; it is a
// rough text scan, not parsed financial data.
package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Percentages are matched first so "3.5%" is not double-counted as a
// plain number. Plain numbers accept comma grouping ("1,234,567.89").
var (
	percentPattern = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?\s*%`)
	numberPattern  = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)
)

const topKeywords = 5

// Scanner implements the research Analyzer interface.
type Scanner struct{}

// Digest scans texts for numbers, percentages, and keyword occurrences
// and formats the result as a short plain-text summary. It returns an
// empty string when nothing was detected.
func (Scanner) Digest(texts, keywords []string) string {
	joined := strings.Join(texts, "\n")

	percents := parseAll(percentPattern.FindAllString(joined, -1))
	numbers := parseAll(numberPattern.FindAllString(percentPattern.ReplaceAllString(joined, " "), -1))
	freqs := keywordFrequencies(joined, keywords)

	if len(percents) == 0 && len(numbers) == 0 && len(freqs) == 0 {
		return ""
	}

	var lines []string
	if len(numbers) > 0 {
		lines = append(lines, statLine("numeric values", numbers, ""))
	}
	if len(percents) > 0 {
		lines = append(lines, statLine("percentages", percents, "%"))
	}
	if len(freqs) > 0 {
		var parts []string
		for _, kf := range freqs {
			parts = append(parts, fmt.Sprintf("%s (%d)", kf.keyword, kf.count))
		}
		lines = append(lines, "Most frequent keywords: "+strings.Join(parts, ", "))
	}
	return strings.Join(lines, "\n")
}

func statLine(label string, values []float64, unit string) string {
	min, max, mean := values[0], values[0], 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		mean += v
	}
	mean /= float64(len(values))
	return fmt.Sprintf("Detected %d %s (min %s%s, max %s%s, mean %s%s)",
		len(values), label,
		formatValue(min), unit, formatValue(max), unit, formatValue(mean), unit)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAll(matches []string) []float64 {
	var out []float64
	for _, m := range matches {
		cleaned := strings.TrimSuffix(strings.TrimSpace(m), "%")
		cleaned = strings.ReplaceAll(strings.TrimSpace(cleaned), ",", "")
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

type keywordFreq struct {
	keyword string
	count   int
}

// keywordFrequencies counts case-insensitive substring occurrences and
// keeps the top entries. Ties keep the keyword list's order.
func keywordFrequencies(text string, keywords []string) []keywordFreq {
	lower := strings.ToLower(text)

	var freqs []keywordFreq
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		if n := strings.Count(lower, strings.ToLower(kw)); n > 0 {
			freqs = append(freqs, keywordFreq{keyword: kw, count: n})
		}
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].count > freqs[j].count
	})
	if len(freqs) > topKeywords {
		freqs = freqs[:topKeywords]
	}
	return freqs
}
