package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/cgpatracker/internal/app/services"
	"github.com/yigit/cgpatracker/internal/middleware"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

// Download names and content types
const (
	PDFFileName  = "CGPA_Report.pdf"
	XLSXFileName = "CGPA_Report.xlsx"

	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePNG  = "image/png"
)

// ReportController serves the chart and report downloads for the session gradebook
type ReportController struct {
	gradebookService services.GradebookService
	reportService    services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(gradebookService services.GradebookService, reportService services.ReportService) *ReportController {
	return &ReportController{
		gradebookService: gradebookService,
		reportService:    reportService,
	}
}

// evaluate runs the session evaluation, writing the error response on failure
func (c *ReportController) evaluate(ctx *gin.Context) (*grading.Evaluation, grading.Gradebook, bool) {
	extra, err := extraHoursQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, grading.Gradebook{}, false
	}

	eval, gb, err := c.gradebookService.Evaluate(ctx, middleware.SessionID(ctx), extra)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, gb, false
	}
	return eval, gb, true
}

func attachment(ctx *gin.Context, name, contentType string, body []byte) {
	ctx.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	ctx.Data(http.StatusOK, contentType, body)
}

// DownloadPDF returns the PDF report
// @Summary Download PDF report
// @Description Renders the CGPA, the subject table and the study-hours chart as a PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} file "CGPA_Report.pdf"
// @Failure 422 {object} dto.ErrorResponse "No subjects to evaluate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook/report.pdf [get]
func (c *ReportController) DownloadPDF(ctx *gin.Context) {
	eval, gb, ok := c.evaluate(ctx)
	if !ok {
		return
	}

	body, err := c.reportService.PDF(gb, eval)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	attachment(ctx, PDFFileName, contentTypePDF, body)
}

// DownloadXLSX returns the spreadsheet export
// @Summary Download XLSX export
// @Description Exports the subject table with study hours and the CGPA as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "CGPA_Report.xlsx"
// @Failure 422 {object} dto.ErrorResponse "No subjects to evaluate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook/report.xlsx [get]
func (c *ReportController) DownloadXLSX(ctx *gin.Context) {
	eval, gb, ok := c.evaluate(ctx)
	if !ok {
		return
	}

	body, err := c.reportService.XLSX(gb, eval)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	attachment(ctx, XLSXFileName, contentTypeXLSX, body)
}

// Chart returns the suggested study-hours chart
// @Summary Study hours chart
// @Description Horizontal bar chart of suggested weekly study hours, one bar per subject labelled with its grade
// @Tags reports
// @Produce image/png
// @Success 200 {file} file "PNG image"
// @Failure 422 {object} dto.ErrorResponse "No subjects to evaluate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook/chart.png [get]
func (c *ReportController) Chart(ctx *gin.Context) {
	eval, _, ok := c.evaluate(ctx)
	if !ok {
		return
	}

	body, err := c.reportService.Chart(eval)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, contentTypePNG, body)
}
