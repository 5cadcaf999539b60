package narrative

import (
	"context"
	"fmt"

	"github.com/aaraainfra/weekly-mis/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// sectionsSchema constrains the model to exactly the five narrative fields.
var sectionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"executiveSummary": {Type: genai.TypeString},
		"vendorFollowUps":  {Type: genai.TypeString},
		"risksAndIssues":   {Type: genai.TypeString},
		"actionItems":      {Type: genai.TypeString},
		"conclusion":       {Type: genai.TypeString},
	},
	Required: []string{
		"executiveSummary",
		"vendorFollowUps",
		"risksAndIssues",
		"actionItems",
		"conclusion",
	},
}

type geminiModel struct {
	client *genai.Client
	model  string
}

func newGeminiModel(ctx context.Context, cfg config.NarrativeConfig) (*geminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &geminiModel{client: client, model: model}, nil
}

func (m *geminiModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx,
		m.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   sectionsSchema,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}
