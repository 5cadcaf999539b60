package handlers

import (
	"net/http"

	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/aaraainfra/weekly-mis/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetReport returns the current weekly document. Storage failures degrade
// to the default document inside the service, so this never reports a
// storage error.
func (h *ReportHandler) GetReport(c *gin.Context) {
	doc := h.reports.Fetch(c.Request.Context())
	c.JSON(http.StatusOK, doc)
}

// SaveReport persists a full edited document. Write failures are surfaced
// so the client keeps its draft and can retry.
func (h *ReportHandler) SaveReport(c *gin.Context) {
	var doc domain.WeeklyData
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report document"})
		return
	}

	if err := h.reports.Save(c.Request.Context(), doc); err != nil {
		log.Error().Err(err).Msg("weekly report save failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save data. Your changes were not persisted; please retry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data updated successfully"})
}

// SaveFinance persists only the finance section, merged into the stored
// document. This is the save path available to the finance role.
func (h *ReportHandler) SaveFinance(c *gin.Context) {
	var finance domain.FinanceData
	if err := c.ShouldBindJSON(&finance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid finance data"})
		return
	}

	doc, err := h.reports.SaveFinance(c.Request.Context(), finance)
	if err != nil {
		log.Error().Err(err).Msg("finance section save failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save data. Your changes were not persisted; please retry."})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Status reports the advisory storage connection indicator.
func (h *ReportHandler) Status(c *gin.Context) {
	connected := h.reports.CheckConnection(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"connected": connected})
}
