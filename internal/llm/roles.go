// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"

	"github.com/pdiddy/industry-analyst/pkg/types"
)

// Low temperature keeps planning and reflection output close to the
// requested JSON contract; synthesis runs warmer for readable prose.
const (
	structuredTemperature = 0.2
	synthesisTemperature  = 0.5
)

// Assistant handles the structured calls of the loop. It satisfies the
// research Planner and Reflector interfaces.
type Assistant struct {
	Client *Client
	Model  string
	System string
}

// Plan asks the model to decompose the question and parses the
// sub-query list from its JSON response.
func (a *Assistant) Plan(ctx context.Context, prompt string) ([]string, error) {
	raw, err := a.Client.Chat(ctx, a.Model, a.System, prompt, structuredTemperature, true)
	if err != nil {
		return nil, err
	}
	return ParsePlan(raw)
}

// Reflect asks the model to judge the collected evidence and parses the
// verdict from its JSON response.
func (a *Assistant) Reflect(ctx context.Context, prompt string) (types.Reflection, error) {
	raw, err := a.Client.Chat(ctx, a.Model, a.System, prompt, structuredTemperature, true)
	if err != nil {
		return types.Reflection{}, err
	}
	return ParseReflection(raw)
}

// Synthesizer streams the final report. It satisfies the research
// Synthesizer interface.
type Synthesizer struct {
	Client *Client
	Model  string
	System string
}

// Synthesize streams the report text, forwarding each chunk to emit.
func (s *Synthesizer) Synthesize(ctx context.Context, prompt string, emit func(chunk string)) error {
	return s.Client.ChatStream(ctx, s.Model, s.System, prompt, synthesisTemperature, emit)
}
