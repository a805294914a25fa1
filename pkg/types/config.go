// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by adapters that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "industry-analyst/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the web search adapter.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the web search API URL.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// APIKey authenticates against the search API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Count is the number of results requested per query (default 5).
	Count int `json:"count" yaml:"count"`

	// MaxRetries is the number of retry attempts on rate limiting.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// LLMConfig holds settings for the OpenAI-compatible chat API used for
// planning, reflection, and synthesis.
type LLMConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API base (e.g. a DashScope compatible-mode endpoint).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates against the chat API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is used for the structured planning and reflection calls.
	Model string `json:"model" yaml:"model"`

	// SynthesisModel is used for the streaming report synthesis call.
	SynthesisModel string `json:"synthesis_model" yaml:"synthesis_model"`

	// MaxRetries is the number of retry attempts on rate limiting.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ResearchConfig holds the orchestrator's loop parameters.
type ResearchConfig struct {
	// MaxIterations bounds the number of search-reflect passes (default 3).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	// SearchDelay is the fixed pause between consecutive search calls
	// within a pass (default 1.5s). It is a rate-limiting pause, not a
	// backoff schedule.
	SearchDelay time.Duration `json:"search_delay" yaml:"search_delay"`

	// ContextChars is the character budget for the bounded reflection
	// context (default 20000).
	ContextChars int `json:"context_chars" yaml:"context_chars"`

	// DigestThreshold is the minimum store size before the keyword and
	// number scan runs (default 4).
	DigestThreshold int `json:"digest_threshold" yaml:"digest_threshold"`
}

// OutputConfig holds settings for report files.
type OutputConfig struct {
	// ReportsDir is the directory for generated reports (e.g. "output/reports/").
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`
}

// ArchiveConfig holds settings for the local report archive.
type ArchiveConfig struct {
	// Dir is the directory holding the SQLite report index.
	Dir string `json:"dir" yaml:"dir"`
}

// AppConfig groups all configuration for the industry-analyst CLI.
type AppConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	LLM      LLMConfig      `json:"llm" yaml:"llm"`
	Research ResearchConfig `json:"research" yaml:"research"`
	Output   OutputConfig   `json:"output" yaml:"output"`
	Archive  ArchiveConfig  `json:"archive" yaml:"archive"`

	// IndustriesDir is the directory of user-defined industry bundles
	// merged over the built-ins (e.g. "configs/industries/").
	IndustriesDir string `json:"industries_dir" yaml:"industries_dir"`
}
