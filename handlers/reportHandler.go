package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/models/reports"
)

type reportParams struct {
	reportType reports.ReportType
	fromDate   models.DateString
	toDate     models.DateString
	sectionId  *int
}

// parseReportParams validates all four inputs before any query runs:
// unknown report key and unparseable dates are request-level failures.
func parseReportParams(c *gin.Context) (*reportParams, bool) {
	reportType, err := reports.ParseReportType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var fromDate models.DateString
	if err := fromDate.ParseDate(c.Query("from")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return nil, false
	}
	var toDate models.DateString
	if err := toDate.ParseDate(c.Query("to")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return nil, false
	}

	sectionId, ok := queryIntPtr(c, "section_id")
	if !ok {
		return nil, false
	}

	return &reportParams{
		reportType: reportType,
		fromDate:   fromDate,
		toDate:     toDate,
		sectionId:  sectionId,
	}, true
}

func GetReport(c *gin.Context) {
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	report, err := reports.Run(c.Request.Context(), params.reportType, params.fromDate, params.toDate, params.sectionId)
	if err != nil {
		abortWithError(c, "GetReport", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func ExportReport(c *gin.Context) {
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	report, err := reports.Run(c.Request.Context(), params.reportType, params.fromDate, params.toDate, params.sectionId)
	if err != nil {
		abortWithError(c, "ExportReport", err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+string(report.Type)+".xlsx")
	if err := reports.WriteExcel(c.Writer, report); err != nil {
		abortWithError(c, "ExportReport", err)
	}
}
