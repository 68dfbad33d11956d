package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
	"github.com/yigit/cgpatracker/internal/app/services"
	"github.com/yigit/cgpatracker/internal/middleware"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

const (
	defaultBatchRows = 3
	maxBatchRows     = 20
)

// Flash is a one-line message shown above the forms
type Flash struct {
	Kind string // success, info, warning, error
	Text string
}

// indexPage is the data for the session form
type indexPage struct {
	Flash      *Flash
	Scale      grading.GradeScale
	Scales     []grading.GradeScale
	Limits     services.Limits
	Subjects   []grading.SubjectRecord
	Form       dto.AddSubjectRequest
	Evaluation *dto.EvaluationResponse
	ExtraHours int
}

// batchRow is one subject row of the batch form
type batchRow struct {
	Index int
	dto.AddSubjectRequest
}

// batchPage is the data for the batch form and its result
type batchPage struct {
	Flash      *Flash
	Scale      grading.GradeScale
	Scales     []grading.GradeScale
	Limits     services.Limits
	Rows       []batchRow
	ExtraHours int
	Subjects   []grading.SubjectRecord
	Evaluation *dto.EvaluationResponse
	ChartURI   template.URL
}

// WebController serves the HTML forms
type WebController struct {
	gradebookService services.GradebookService
	reportService    services.ReportService
	logger           zerolog.Logger
}

// NewWebController creates a new WebController
func NewWebController(gradebookService services.GradebookService, reportService services.ReportService, logger zerolog.Logger) *WebController {
	return &WebController{
		gradebookService: gradebookService,
		reportService:    reportService,
		logger:           logger,
	}
}

// flashFor turns an error into the message the page shows
func flashFor(err error) *Flash {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return &Flash{Kind: "error", Text: dto.HandleValidationError(err).Summary()}
	}

	switch {
	case errors.Is(err, apperrors.ErrEmptyInput):
		return &Flash{Kind: "info", Text: "Add at least one subject to see your CGPA."}
	case apperrors.Is(err, apperrors.ErrInvalidGrade, apperrors.ErrOutOfRange, apperrors.ErrUnknownScale, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return &Flash{Kind: "error", Text: err.Error()}
	default:
		return &Flash{Kind: "error", Text: "Something went wrong, please try again."}
	}
}

// statusFor returns the page status for err; HTML pages still render
func statusFor(err error) int {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}
	status, _ := middleware.ErrorStatus(err)
	return status
}

func (c *WebController) scaleNamed(name string) grading.GradeScale {
	scales, def := c.gradebookService.Scales()
	for _, s := range scales {
		if s.Name == name {
			return s
		}
	}
	for _, s := range scales {
		if s.Name == def {
			return s
		}
	}
	return grading.Extended()
}

// renderIndex loads the session and renders the session form
func (c *WebController) renderIndex(ctx *gin.Context, status int, flash *Flash, form dto.AddSubjectRequest, extra *int) {
	sessionID := middleware.SessionID(ctx)
	scales, _ := c.gradebookService.Scales()
	limits := c.gradebookService.Limits()

	page := indexPage{
		Flash:      flash,
		Scales:     scales,
		Limits:     limits,
		Form:       form,
		ExtraHours: limits.DefaultExtraHours,
	}
	if extra != nil {
		page.ExtraHours = *extra
	}

	gb, err := c.gradebookService.Gradebook(ctx, sessionID)
	if err != nil {
		c.logger.Error().Err(err).Str("session", sessionID).Msg("Failed to load gradebook for page")
		page.Scale = c.scaleNamed("")
		page.Flash = flashFor(err)
		ctx.HTML(statusFor(err), "index.html", page)
		return
	}
	page.Scale = gb.Scale
	page.Subjects = gb.Records

	if gb.Len() > 0 {
		eval, _, err := c.gradebookService.Evaluate(ctx, sessionID, extra)
		if err != nil {
			if page.Flash == nil {
				page.Flash = flashFor(err)
			}
			status = statusFor(err)
		} else {
			resp := dto.NewEvaluationResponse(eval)
			page.Evaluation = &resp
		}
	}

	ctx.HTML(status, "index.html", page)
}

// Index renders the session form
func (c *WebController) Index(ctx *gin.Context) {
	var flash *Flash
	if name := ctx.Query("added"); name != "" {
		flash = &Flash{Kind: "success", Text: fmt.Sprintf("✅ %s added!", name)}
	} else if ctx.Query("reset") != "" {
		flash = &Flash{Kind: "info", Text: "Gradebook cleared."}
	}

	extra, err := extraHoursQuery(ctx)
	if err != nil {
		c.renderIndex(ctx, http.StatusBadRequest, flashFor(err), dto.AddSubjectRequest{}, nil)
		return
	}

	c.renderIndex(ctx, http.StatusOK, flash, dto.AddSubjectRequest{}, extra)
}

// AddSubject handles the add subject form
func (c *WebController) AddSubject(ctx *gin.Context) {
	var req dto.AddSubjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.renderIndex(ctx, statusFor(err), flashFor(err), req, nil)
		return
	}

	if _, err := c.gradebookService.AddSubject(ctx, middleware.SessionID(ctx), req); err != nil {
		c.renderIndex(ctx, statusFor(err), flashFor(err), req, nil)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/?added="+url.QueryEscape(strings.TrimSpace(req.Name)))
}

// Reset handles the reset form
func (c *WebController) Reset(ctx *gin.Context) {
	if _, err := c.gradebookService.Reset(ctx, middleware.SessionID(ctx), ctx.PostForm("scale")); err != nil {
		c.renderIndex(ctx, statusFor(err), flashFor(err), dto.AddSubjectRequest{}, nil)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/?reset=1")
}

// batchRowCount reads the requested number of subject rows
func batchRowCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultBatchRows
	}
	if n > maxBatchRows {
		return maxBatchRows
	}
	return n
}

func (c *WebController) newBatchPage(scaleName string, rows []batchRow) batchPage {
	scales, _ := c.gradebookService.Scales()
	limits := c.gradebookService.Limits()
	return batchPage{
		Scale:      c.scaleNamed(scaleName),
		Scales:     scales,
		Limits:     limits,
		Rows:       rows,
		ExtraHours: limits.DefaultExtraHours,
	}
}

func blankRows(n int) []batchRow {
	rows := make([]batchRow, n)
	for i := range rows {
		rows[i] = batchRow{Index: i + 1, AddSubjectRequest: dto.AddSubjectRequest{Credits: 1}}
	}
	return rows
}

// BatchForm renders the batch form with n empty subject rows
func (c *WebController) BatchForm(ctx *gin.Context) {
	page := c.newBatchPage(ctx.Query("scale"), blankRows(batchRowCount(ctx.Query("n"))))
	ctx.HTML(http.StatusOK, "batch.html", page)
}

// parseBatchForm reads the repeated name/credits/grade/hours fields. Rows
// with a blank name keep whatever was typed but are skipped by the service.
func parseBatchForm(ctx *gin.Context) (dto.BatchEvaluationRequest, []batchRow, error) {
	names := ctx.PostFormArray("name")
	credits := ctx.PostFormArray("credits")
	grades := ctx.PostFormArray("grade")
	hours := ctx.PostFormArray("hours")

	req := dto.BatchEvaluationRequest{Scale: ctx.PostForm("scale")}
	rows := make([]batchRow, 0, len(names))

	field := func(values []string, i int) string {
		if i < len(values) {
			return strings.TrimSpace(values[i])
		}
		return ""
	}
	number := func(values []string, i int, label, name string) (int, error) {
		raw := field(values, i)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("subject %d: %s must be a whole number", i+1, label)).WithField(name)
		}
		return v, nil
	}

	var firstErr error
	for i := range names {
		sub := dto.AddSubjectRequest{Name: field(names, i), Grade: field(grades, i)}
		var err error
		if sub.Credits, err = number(credits, i, "credits", "credits"); err != nil && firstErr == nil && sub.Name != "" {
			firstErr = err
		}
		if sub.StudyHoursPerWeek, err = number(hours, i, "study hours", "hours"); err != nil && firstErr == nil && sub.Name != "" {
			firstErr = err
		}
		rows = append(rows, batchRow{Index: i + 1, AddSubjectRequest: sub})
		req.Subjects = append(req.Subjects, sub)
	}

	if raw := strings.TrimSpace(ctx.PostForm("extraHours")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil && firstErr == nil {
			firstErr = apperrors.NewCustomError(apperrors.ErrValidationFailed, "extra hours must be a whole number").WithField("extraHours")
		}
		req.ExtraHours = &v
	}

	return req, rows, firstErr
}

// BatchSubmit evaluates the batch form and renders the result with the chart
func (c *WebController) BatchSubmit(ctx *gin.Context) {
	req, rows, err := parseBatchForm(ctx)
	page := c.newBatchPage(req.Scale, rows)
	if len(rows) == 0 {
		page.Rows = blankRows(defaultBatchRows)
	}
	if req.ExtraHours != nil {
		page.ExtraHours = *req.ExtraHours
	}
	if err != nil {
		page.Flash = flashFor(err)
		ctx.HTML(statusFor(err), "batch.html", page)
		return
	}

	eval, gb, err := c.gradebookService.EvaluateBatch(req)
	if err != nil {
		page.Flash = flashFor(err)
		ctx.HTML(statusFor(err), "batch.html", page)
		return
	}

	resp := dto.NewEvaluationResponse(eval)
	page.Subjects = gb.Records
	page.Evaluation = &resp
	page.Flash = &Flash{Kind: "success", Text: "🎓 " + resp.CGPAText}

	png, err := c.reportService.Chart(eval)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Chart unavailable for batch result")
	} else {
		page.ChartURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	ctx.HTML(http.StatusOK, "batch.html", page)
}

// BatchReport evaluates the posted batch form and returns the PDF report
func (c *WebController) BatchReport(ctx *gin.Context) {
	req, rows, err := parseBatchForm(ctx)
	if err != nil {
		c.renderBatchError(ctx, req, rows, err)
		return
	}

	eval, gb, err := c.gradebookService.EvaluateBatch(req)
	if err != nil {
		c.renderBatchError(ctx, req, rows, err)
		return
	}

	body, err := c.reportService.PDF(gb, eval)
	if err != nil {
		c.renderBatchError(ctx, req, rows, err)
		return
	}
	attachment(ctx, PDFFileName, contentTypePDF, body)
}

func (c *WebController) renderBatchError(ctx *gin.Context, req dto.BatchEvaluationRequest, rows []batchRow, err error) {
	page := c.newBatchPage(req.Scale, rows)
	if len(rows) == 0 {
		page.Rows = blankRows(defaultBatchRows)
	}
	page.Flash = flashFor(err)
	ctx.HTML(statusFor(err), "batch.html", page)
}
