package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel returns a fixed response or error and records the prompt.
type stubModel struct {
	response string
	err      error
	prompt   string
}

func (s *stubModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func validResponse(t *testing.T) string {
	t.Helper()
	payload, err := json.Marshal(domain.NarrativeSections{
		ExecutiveSummary: "• Strong PO momentum this week.",
		VendorFollowUps:  "• Chase RDC Concrete on the delayed RMC delivery.",
		RisksAndIssues:   "• TMT Steel 16mm shortage on Highway Package 4A.",
		ActionItems:      "• Expedite pending approvals.",
		Conclusion:       "On track for next week.",
	})
	require.NoError(t, err)
	return string(payload)
}

func TestGenerateParsesModelOutput(t *testing.T) {
	model := &stubModel{response: validResponse(t)}
	client := NewClientWithModel(model)

	result := client.Generate(context.Background(), domain.DefaultWeeklyData())

	assert.Equal(t, domain.SourceGenerated, result.Source)
	assert.Empty(t, result.Reason)
	assert.True(t, result.Sections.Complete())
	assert.Contains(t, result.Sections.VendorFollowUps, "RDC Concrete")
}

func TestGeneratePromptCarriesSnapshotAndContract(t *testing.T) {
	model := &stubModel{response: validResponse(t)}
	client := NewClientWithModel(model)

	doc := domain.DefaultWeeklyData()
	client.Generate(context.Background(), doc)

	assert.Contains(t, model.prompt, "Senior Procurement Analyst")
	assert.Contains(t, model.prompt, doc.WeekStarting)
	assert.Contains(t, model.prompt, "executiveSummary")
	assert.Contains(t, model.prompt, "conclusion")
	assert.Contains(t, model.prompt, "Do NOT output Markdown")
}

func TestGenerateFallsBackOnModelError(t *testing.T) {
	model := &stubModel{err: errors.New("deadline exceeded")}
	client := NewClientWithModel(model)

	result := client.Generate(context.Background(), domain.DefaultWeeklyData())

	assert.Equal(t, domain.SourceFallback, result.Source)
	assert.Equal(t, "deadline exceeded", result.Reason)
	assert.True(t, result.Sections.Complete())
}

func TestGenerateFallsBackOnMalformedJSON(t *testing.T) {
	model := &stubModel{response: "Here is your report: {"}
	client := NewClientWithModel(model)

	result := client.Generate(context.Background(), domain.DefaultWeeklyData())

	assert.Equal(t, domain.SourceFallback, result.Source)
	assert.Equal(t, "malformed response from model", result.Reason)
	assert.True(t, result.Sections.Complete())
}

func TestGenerateFallsBackOnMissingSection(t *testing.T) {
	payload, err := json.Marshal(map[string]string{
		"executiveSummary": "only one field",
	})
	require.NoError(t, err)

	model := &stubModel{response: string(payload)}
	client := NewClientWithModel(model)

	result := client.Generate(context.Background(), domain.DefaultWeeklyData())

	assert.Equal(t, domain.SourceFallback, result.Source)
	assert.Equal(t, "incomplete response from model", result.Reason)
	assert.True(t, result.Sections.Complete())
}

func TestGenerateFallsBackOnEmptyResponse(t *testing.T) {
	model := &stubModel{response: ""}
	client := NewClientWithModel(model)

	result := client.Generate(context.Background(), domain.DefaultWeeklyData())

	assert.Equal(t, domain.SourceFallback, result.Source)
	assert.Equal(t, "empty response from model", result.Reason)
}

func TestUnconfiguredClientFallsBack(t *testing.T) {
	client := &Client{}

	result := client.Generate(context.Background(), domain.DefaultWeeklyData())

	assert.Equal(t, domain.SourceFallback, result.Source)
	assert.Equal(t, "narrative service not configured", result.Reason)
	assert.True(t, result.Sections.Complete())
}

func TestGenerateDoesNotMutateDocument(t *testing.T) {
	model := &stubModel{response: validResponse(t)}
	client := NewClientWithModel(model)

	doc := domain.DefaultWeeklyData()
	before, err := json.Marshal(doc)
	require.NoError(t, err)

	client.Generate(context.Background(), doc)

	after, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}
