// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/industry-analyst/pkg/types"
)

func init() {
	viper.SetDefault("search.endpoint", "https://api.bochaai.com/v1/web-search")
	viper.SetDefault("search.count", 5)
	viper.SetDefault("search.timeout", 45*time.Second)
	viper.SetDefault("search.max_retries", 3)

	viper.SetDefault("llm.base_url", "https://dashscope.aliyuncs.com/compatible-mode/v1")
	viper.SetDefault("llm.model", "qwen-plus")
	viper.SetDefault("llm.synthesis_model", "deepseek-v3")
	viper.SetDefault("llm.timeout", 120*time.Second)
	viper.SetDefault("llm.max_retries", 3)

	viper.SetDefault("research.max_iterations", 3)
	viper.SetDefault("research.search_delay", 1500*time.Millisecond)
	viper.SetDefault("research.context_chars", 20000)
	viper.SetDefault("research.digest_threshold", 4)

	viper.SetDefault("output.reports_dir", "output/reports")
	viper.SetDefault("archive.dir", "output/archive")
	viper.SetDefault("industries_dir", "configs/industries")
}

// loadConfig assembles the application configuration from viper (config
// file, environment, defaults) plus API keys from the secrets directory.
func loadConfig() types.AppConfig {
	userAgent := "industry-analyst/" + version

	return types.AppConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: userAgent,
			},
			Endpoint:   viper.GetString("search.endpoint"),
			APIKey:     secretDefault("bocha-api-key", viper.GetString("search.api_key")),
			Count:      viper.GetInt("search.count"),
			MaxRetries: viper.GetInt("search.max_retries"),
		},
		LLM: types.LLMConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("llm.timeout"),
				UserAgent: userAgent,
			},
			BaseURL:        viper.GetString("llm.base_url"),
			APIKey:         secretDefault("dashscope-api-key", viper.GetString("llm.api_key")),
			Model:          viper.GetString("llm.model"),
			SynthesisModel: viper.GetString("llm.synthesis_model"),
			MaxRetries:     viper.GetInt("llm.max_retries"),
		},
		Research: types.ResearchConfig{
			MaxIterations:   viper.GetInt("research.max_iterations"),
			SearchDelay:     viper.GetDuration("research.search_delay"),
			ContextChars:    viper.GetInt("research.context_chars"),
			DigestThreshold: viper.GetInt("research.digest_threshold"),
		},
		Output: types.OutputConfig{
			ReportsDir: viper.GetString("output.reports_dir"),
		},
		Archive: types.ArchiveConfig{
			Dir: viper.GetString("archive.dir"),
		},
		IndustriesDir: viper.GetString("industries_dir"),
	}
}
