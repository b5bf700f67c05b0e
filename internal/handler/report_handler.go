package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/response"
)

// ReportHandler exposes dashboard counts and derived reports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Stats godoc
// @Summary System statistics
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats [get]
func (h *ReportHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.SystemStats(c.Request.Context()))
}

// Enrollment godoc
// @Summary Enrollment report
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/enrollment [get]
func (h *ReportHandler) Enrollment(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.Enrollment(c.Request.Context()))
}

// Certificate godoc
// @Summary Completion certificate
// @Tags Reports
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/certificate [get]
func (h *ReportHandler) Certificate(c *gin.Context) {
	cert, err := h.reports.Certificate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cert)
}
