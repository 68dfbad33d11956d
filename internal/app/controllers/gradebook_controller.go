package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
	"github.com/yigit/cgpatracker/internal/app/services"
	"github.com/yigit/cgpatracker/internal/middleware"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

// GradebookController handles the JSON gradebook API
type GradebookController struct {
	gradebookService services.GradebookService
}

// NewGradebookController creates a new GradebookController
func NewGradebookController(gradebookService services.GradebookService) *GradebookController {
	return &GradebookController{
		gradebookService: gradebookService,
	}
}

// extraHoursQuery reads the optional extraHours query parameter
func extraHoursQuery(ctx *gin.Context) (*int, error) {
	raw, ok := ctx.GetQuery("extraHours")
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf("extraHours must be a whole number, got %q", raw)).WithField("extraHours")
	}
	return &v, nil
}

// ListScales returns the available grade scales
// @Summary List grade scales
// @Description Returns every registered grade scale in display order and marks the default one
// @Tags scales
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ScaleResponse} "Scales retrieved successfully"
// @Router /scales [get]
func (c *GradebookController) ListScales(ctx *gin.Context) {
	scales, def := c.gradebookService.Scales()

	resp := make([]dto.ScaleResponse, 0, len(scales))
	for _, s := range scales {
		resp = append(resp, dto.NewScaleResponse(s, s.Name == def))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// GetGradebook returns the caller's session gradebook
// @Summary Get session gradebook
// @Description Returns the subjects entered in the current session
// @Tags gradebook
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GradebookResponse} "Gradebook retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook [get]
func (c *GradebookController) GetGradebook(ctx *gin.Context) {
	gb, err := c.gradebookService.Gradebook(ctx, middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradebookResponse(gb), ""))
}

// AddSubject appends a subject to the session gradebook
// @Summary Add a subject
// @Description Validates the subject against the active scale and the configured bounds, then appends it
// @Tags gradebook
// @Accept json
// @Produce json
// @Param request body dto.AddSubjectRequest true "Subject"
// @Success 201 {object} dto.APIResponse{data=dto.GradebookResponse} "Subject added"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade, out-of-range value or malformed request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook/subjects [post]
func (c *GradebookController) AddSubject(ctx *gin.Context) {
	var req dto.AddSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	gb, err := c.gradebookService.AddSubject(ctx, middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewGradebookResponse(gb), fmt.Sprintf("%s added", req.Name)))
}

// ResetGradebook discards the session's subjects
// @Summary Reset session gradebook
// @Description Discards every subject and optionally switches the grade scale
// @Tags gradebook
// @Produce json
// @Param scale query string false "Grade scale for the new gradebook" example(coarse)
// @Success 200 {object} dto.APIResponse{data=dto.GradebookResponse} "Gradebook reset"
// @Failure 400 {object} dto.ErrorResponse "Unknown scale"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook [delete]
func (c *GradebookController) ResetGradebook(ctx *gin.Context) {
	gb, err := c.gradebookService.Reset(ctx, middleware.SessionID(ctx), ctx.Query("scale"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewGradebookResponse(gb), "Gradebook reset"))
}

// EvaluateGradebook evaluates the session gradebook
// @Summary Evaluate session gradebook
// @Description Computes the CGPA, suggested study hours and the predicted CGPA
// @Tags gradebook
// @Produce json
// @Param extraHours query int false "Extra study hours per week for the prediction" minimum(0) maximum(20)
// @Success 200 {object} dto.APIResponse{data=dto.EvaluationResponse} "Evaluation"
// @Failure 400 {object} dto.ErrorResponse "Extra hours out of range"
// @Failure 422 {object} dto.ErrorResponse "No subjects to evaluate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradebook/evaluation [get]
func (c *GradebookController) EvaluateGradebook(ctx *gin.Context) {
	extra, err := extraHoursQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	eval, _, err := c.gradebookService.Evaluate(ctx, middleware.SessionID(ctx), extra)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEvaluationResponse(eval), ""))
}

// EvaluateBatch evaluates a subject list without touching the session
// @Summary Evaluate a subject list
// @Description Stateless evaluation of a full subject list; subjects with a blank name are skipped
// @Tags evaluations
// @Accept json
// @Produce json
// @Param request body dto.BatchEvaluationRequest true "Subjects"
// @Success 200 {object} dto.APIResponse{data=dto.BatchEvaluationResponse} "Evaluation"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade, unknown scale or out-of-range value"
// @Failure 422 {object} dto.ErrorResponse "No named subjects"
// @Router /evaluations [post]
func (c *GradebookController) EvaluateBatch(ctx *gin.Context) {
	var req dto.BatchEvaluationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	eval, gb, err := c.gradebookService.EvaluateBatch(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.BatchEvaluationResponse{
		Gradebook:  dto.NewGradebookResponse(gb),
		Evaluation: dto.NewEvaluationResponse(eval),
	}, ""))
}
