package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aaraainfra/weekly-mis/internal/config"
	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/rs/zerolog/log"
)

// Generator turns a weekly document snapshot into narrative report sections.
// Generate is a pure projection: it never mutates the document, and it never
// fails — every error path degrades to the canned fallback, tagged with a
// reason so callers can tell the two apart.
type Generator interface {
	Generate(ctx context.Context, doc domain.WeeklyData) domain.NarrativeResult
}

// textModel is the narrow slice of the generative backend the client needs:
// prompt in, raw JSON text out.
type textModel interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	model textModel
}

// NewClient builds a generator backed by Gemini. With no API key configured
// it still returns a working client whose every call yields the fallback.
func NewClient(ctx context.Context, cfg config.NarrativeConfig) (*Client, error) {
	if cfg.APIKey == "" {
		log.Warn().Msg("narrative service not configured, reports will use fallback text")
		return &Client{}, nil
	}

	backend, err := newGeminiModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init narrative client: %w", err)
	}

	return &Client{model: backend}, nil
}

// NewClientWithModel wires an explicit backend. Used by tests and by any
// deployment that swaps the generative provider.
func NewClientWithModel(model textModel) *Client {
	return &Client{model: model}
}

// Generate builds the report prompt from the snapshot, asks the model for
// the five narrative sections and parses the structured reply.
func (c *Client) Generate(ctx context.Context, doc domain.WeeklyData) domain.NarrativeResult {
	if c.model == nil {
		return domain.FallbackNarrative("narrative service not configured")
	}

	prompt, err := buildPrompt(doc)
	if err != nil {
		log.Error().Err(err).Msg("narrative prompt build failed")
		return domain.FallbackNarrative("could not serialize report data")
	}

	text, err := c.model.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("narrative generation failed")
		return domain.FallbackNarrative(err.Error())
	}
	if text == "" {
		log.Error().Msg("narrative generation returned empty response")
		return domain.FallbackNarrative("empty response from model")
	}

	var sections domain.NarrativeSections
	if err := json.Unmarshal([]byte(text), &sections); err != nil {
		log.Error().Err(err).Msg("narrative response did not match schema")
		return domain.FallbackNarrative("malformed response from model")
	}
	if !sections.Complete() {
		log.Error().Msg("narrative response missing sections")
		return domain.FallbackNarrative("incomplete response from model")
	}

	return domain.NarrativeResult{Sections: sections, Source: domain.SourceGenerated}
}

func buildPrompt(doc domain.WeeklyData) (string, error) {
	snapshot, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a Senior Procurement Analyst for AARAA INFRA.
Generate the narrative sections for the Weekly MIS Report based on the data below.

The report has a strict 9-section structure. You need to provide the content for the narrative-heavy sections.

Input Data:
%s

Requirements for generated fields:
1. executiveSummary: 4-5 bullet points summarizing key highlights, wins, and major risks of the week.
2. vendorFollowUps: specific bullet points on which vendors need follow-up regarding delayed deliveries or pending items.
3. risksAndIssues: bullet points covering material shortages, vendor non-performance, pricing fluctuations, or timeline impacts.
4. actionItems: actions for procurement team, management, and vendor follow-ups.
5. conclusion: a short summary of readiness and focus for next week.

Tone: Corporate, concise, data-focused.

Do NOT output Markdown. Output pure JSON matching the schema.`, snapshot)

	return prompt, nil
}
