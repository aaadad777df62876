// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dolma/backend/internal/application/usecase/goal"
	domainerror "github.com/dolma/backend/internal/domain/error"
	"github.com/dolma/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	getUseCase    *goal.GetGoalUseCase
	createUseCase *goal.CreateGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		Status: ctx.Query("status"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: ctx.Param("id"),
	})
	if err != nil {
		c.writeError(ctx, err, "Failed to retrieve goal")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGoalTitle),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		Title:         req.Title,
		Description:   req.Description,
		TargetDate:    req.TargetDate,
		TargetValue:   req.TargetValue,
		TargetUnit:    req.TargetUnit,
		TargetPeriod:  req.TargetPeriod,
		ProgressValue: req.ProgressValue,
	})
	if err != nil {
		c.writeError(ctx, err, "Failed to create goal")
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGoalStatus),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:        ctx.Param("id"),
		Title:         req.Title,
		Description:   req.Description,
		TargetDate:    req.TargetDate,
		TargetValue:   req.TargetValue,
		TargetUnit:    req.TargetUnit,
		TargetPeriod:  req.TargetPeriod,
		Progress:      req.Progress,
		ProgressValue: req.ProgressValue,
		Status:        req.Status,
		Note:          req.Note,
	})
	if err != nil {
		c.writeError(ctx, err, "Failed to update goal")
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: ctx.Param("id"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete goal",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteGoalResponse{Deleted: output.Deleted})
}

// writeError maps domain errors onto HTTP statuses.
func (c *GoalController) writeError(ctx *gin.Context, err error, fallback string) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
}
