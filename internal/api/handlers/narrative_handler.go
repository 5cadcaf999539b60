package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/aaraainfra/weekly-mis/internal/narrative"
	"github.com/aaraainfra/weekly-mis/internal/service"
	"github.com/aaraainfra/weekly-mis/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type NarrativeHandler struct {
	reports   *service.ReportService
	generator narrative.Generator
	archive   storage.ReportArchive
}

func NewNarrativeHandler(reports *service.ReportService, generator narrative.Generator, archive storage.ReportArchive) *NarrativeHandler {
	if archive == nil {
		archive = storage.NoopArchive{}
	}
	return &NarrativeHandler{reports: reports, generator: generator, archive: archive}
}

// Generate produces the narrative sections for the current weekly document.
// The response always carries five sections; the source tag tells the
// client whether it got genuine model output or the canned fallback.
func (h *NarrativeHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	doc := h.reports.Fetch(ctx)
	result := h.generator.Generate(ctx, doc)

	resp := gin.H{
		"weekStarting": doc.WeekStarting,
		"sections":     result.Sections,
		"source":       result.Source,
	}
	if result.Reason != "" {
		resp["reason"] = result.Reason
	}

	if c.Query("archive") == "true" && result.Source == domain.SourceGenerated {
		if key, err := h.archiveReport(ctx, doc, result); err != nil {
			log.Warn().Err(err).Msg("report archive upload failed")
		} else {
			resp["archiveKey"] = key
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *NarrativeHandler) archiveReport(ctx context.Context, doc domain.WeeklyData, result domain.NarrativeResult) (string, error) {
	payload, err := json.Marshal(gin.H{
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"data":        doc,
		"sections":    result.Sections,
	})
	if err != nil {
		return "", fmt.Errorf("encode archived report: %w", err)
	}

	key := fmt.Sprintf("reports/%s-%d.json", doc.WeekStarting, time.Now().Unix())
	if err := h.archive.Put(ctx, key, payload); err != nil {
		return "", err
	}
	return key, nil
}
