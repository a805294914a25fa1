package analyze

import (
	"reflect"
	"strings"
	"testing"
)

func TestDigestEmptyInput(t *testing.T) {
	var s Scanner
	if got := s.Digest(nil, []string{"stock"}); got != "" {
		t.Errorf("Digest(nil) = %q, want empty", got)
	}
	if got := s.Digest([]string{"nothing quantifiable here"}, nil); got != "" {
		t.Errorf("Digest = %q, want empty", got)
	}
}

func TestDigestNumbers(t *testing.T) {
	var s Scanner
	got := s.Digest([]string{"Revenue reached 1,234,567.5 against a forecast of 1000000"}, nil)
	if !strings.Contains(got, "Detected 2 numeric values") {
		t.Errorf("Digest = %q, want 2 numeric values", got)
	}
	if !strings.Contains(got, "max 1234567.5") {
		t.Errorf("Digest = %q, comma-grouped number not parsed", got)
	}
}

func TestDigestPercentagesNotDoubleCounted(t *testing.T) {
	var s Scanner
	got := s.Digest([]string{"The index fell -2.5% while volume rose 10 %"}, nil)
	if !strings.Contains(got, "Detected 2 percentages") {
		t.Errorf("Digest = %q, want 2 percentages", got)
	}
	if !strings.Contains(got, "min -2.5%") || !strings.Contains(got, "max 10%") {
		t.Errorf("Digest = %q, wrong percentage stats", got)
	}
	if strings.Contains(got, "numeric values") {
		t.Errorf("Digest = %q, percentage digits leaked into the number scan", got)
	}
}

func TestDigestKeywords(t *testing.T) {
	var s Scanner
	texts := []string{
		"AI chips and more AI chips. The AI race continues.",
		"Cloud Computing adoption grows; cloud computing is everywhere.",
	}
	keywords := []string{"AI", "cloud computing", "metaverse"}

	got := s.Digest(texts, keywords)
	if !strings.Contains(got, "Most frequent keywords:") {
		t.Fatalf("Digest = %q, missing keyword line", got)
	}
	// Matching is case-insensitive; absent keywords are omitted.
	if !strings.Contains(got, "AI (3)") || !strings.Contains(got, "cloud computing (2)") {
		t.Errorf("Digest = %q, wrong keyword counts", got)
	}
	if strings.Contains(got, "metaverse") {
		t.Errorf("Digest = %q, unmatched keyword listed", got)
	}
}

func TestKeywordFrequenciesTopFiveStableTies(t *testing.T) {
	text := strings.Repeat("alpha ", 6) + strings.Repeat("beta ", 4) +
		"gamma delta epsilon zeta"
	keywords := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}

	freqs := keywordFrequencies(text, keywords)
	if len(freqs) != 5 {
		t.Fatalf("len = %d, want 5", len(freqs))
	}
	var order []string
	for _, kf := range freqs {
		order = append(order, kf.keyword)
	}
	// Singletons tie and keep the keyword list's order; zeta falls off.
	want := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}
