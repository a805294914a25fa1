// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package industry defines the per-industry configuration bundles that
// parameterize a research run: display name, the three prompt templates
// (planning, reflection, synthesis), system prompts, and the keyword
// list for the data scan. Bundles are data; the research loop never
// hard-codes industry-specific text.
package industry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"
)

// Config is one industry's bundle. Templates are Go text/template
// sources over the fields of promptData.
type Config struct {
	// Name is the industry display name (e.g. "Technology Industry").
	Name string `json:"name" yaml:"name"`

	// FilenamePrefix prefixes generated report filenames.
	FilenamePrefix string `json:"filename_prefix" yaml:"filename_prefix"`

	// AssistantPrompt is the system prompt for planning and reflection calls.
	AssistantPrompt string `json:"assistant_system_prompt" yaml:"assistant_system_prompt"`

	// SynthesizerPrompt is the system prompt for the synthesis call.
	SynthesizerPrompt string `json:"synthesizer_system_prompt" yaml:"synthesizer_system_prompt"`

	// AnalyzerKeywords are counted by the data scan over collected summaries.
	AnalyzerKeywords []string `json:"analyzer_keywords" yaml:"analyzer_keywords"`

	// PlanTemplate renders the planning prompt ({{.IndustryName}}, {{.Question}}).
	PlanTemplate string `json:"plan_prompt_template" yaml:"plan_prompt_template"`

	// ReflectionTemplate renders the reflection prompt
	// ({{.IndustryName}}, {{.Question}}, {{.Context}}).
	ReflectionTemplate string `json:"reflection_prompt_template" yaml:"reflection_prompt_template"`

	// SynthesisTemplate renders the synthesis prompt
	// ({{.IndustryName}}, {{.Question}}, {{.Context}}, {{.DigestSection}}).
	SynthesisTemplate string `json:"synthesis_prompt_template" yaml:"synthesis_prompt_template"`
}

// promptData carries the named placeholders available to all templates.
type promptData struct {
	IndustryName  string
	Question      string
	Context       string
	DigestSection string
}

// Validate checks that the bundle carries all three prompt templates and
// that each parses and renders. A bundle failing validation aborts a run
// before any work is attempted.
func (c Config) Validate() error {
	var missing []string
	for _, t := range []struct{ name, src string }{
		{"plan_prompt_template", c.PlanTemplate},
		{"reflection_prompt_template", c.ReflectionTemplate},
		{"synthesis_prompt_template", c.SynthesisTemplate},
	} {
		if strings.TrimSpace(t.src) == "" {
			missing = append(missing, t.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing prompt templates: %s", strings.Join(missing, ", "))
	}

	sample := promptData{IndustryName: c.Name, Question: "q", Context: "c", DigestSection: ""}
	for _, t := range []struct{ name, src string }{
		{"plan_prompt_template", c.PlanTemplate},
		{"reflection_prompt_template", c.ReflectionTemplate},
		{"synthesis_prompt_template", c.SynthesisTemplate},
	} {
		if _, err := render(t.name, t.src, sample); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}
	return nil
}

// RenderPlanPrompt builds the planning prompt for the root question.
func (c Config) RenderPlanPrompt(question string) (string, error) {
	return render("plan", c.PlanTemplate, promptData{
		IndustryName: c.Name,
		Question:     question,
	})
}

// RenderReflectionPrompt builds the reflection prompt over the bounded
// memory context.
func (c Config) RenderReflectionPrompt(question, context string) (string, error) {
	return render("reflection", c.ReflectionTemplate, promptData{
		IndustryName: c.Name,
		Question:     question,
		Context:      context,
	})
}

// RenderSynthesisPrompt builds the final synthesis prompt over the full
// memory context and the optional data-scan section.
func (c Config) RenderSynthesisPrompt(question, context, digestSection string) (string, error) {
	return render("synthesis", c.SynthesisTemplate, promptData{
		IndustryName:  c.Name,
		Question:      question,
		Context:       context,
		DigestSection: digestSection,
	})
}

func render(name, src string, data promptData) (string, error) {
	t, err := template.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return b.String(), nil
}

// Load returns the built-in bundles merged with user-defined YAML files
// from dir. Each *.yaml/*.yml file defines one industry keyed by its
// base filename; a user file overrides a built-in of the same key. A
// missing directory yields just the built-ins.
func Load(dir string) (map[string]Config, error) {
	configs := Builtin()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return configs, nil
		}
		return nil, fmt.Errorf("reading industries directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading industry file %s: %w", name, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing industry file %s: %w", name, err)
		}
		configs[strings.TrimSuffix(name, ext)] = cfg
	}

	return configs, nil
}
