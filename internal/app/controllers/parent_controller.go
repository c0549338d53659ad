package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/services"
	"github.com/tuteuradom/backend/internal/middleware"
)

// ParentController handles parent profile and moderation operations
type ParentController struct {
	parentService *services.ParentService
}

// NewParentController creates a new ParentController
func NewParentController(parentService *services.ParentService) *ParentController {
	return &ParentController{
		parentService: parentService,
	}
}

// GetProfile retrieves the authenticated parent's profile
// @Summary Get my parent profile
// @Description Retrieves the calling parent's profile with children
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/parent [get]
func (c *ParentController) GetProfile(ctx *gin.Context) {
	parent, err := c.parentService.GetParent(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      parent,
		Timestamp: time.Now(),
	})
}

// UpdateProfile updates the authenticated parent's name fields
// @Summary Update my parent profile
// @Description Updates the calling parent's first and last name
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateParentProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/parent [put]
func (c *ParentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateParentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	parent, err := c.parentService.UpdateProfile(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      parent,
		Timestamp: time.Now(),
	})
}

// UpdateChildren replaces the authenticated parent's children list
// @Summary Update my children
// @Description Replaces the calling parent's children list in the given order
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateChildrenRequest true "Children data"
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Children updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/parent/children [put]
func (c *ParentController) UpdateChildren(ctx *gin.Context) {
	var req dto.UpdateChildrenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	parent, err := c.parentService.UpdateChildren(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      parent,
		Timestamp: time.Now(),
	})
}

// UpdateStatus applies an admin moderation decision to a parent
// @Summary Update parent status
// @Description Moves a parent account between ACTIVE and BLOCKED
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parent ID"
// @Param request body dto.UpdateParentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/parents/{id}/status [put]
func (c *ParentController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateParentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	parent, err := c.parentService.UpdateStatus(ctx, ctx.Param("id"), models.ParentStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      parent,
		Timestamp: time.Now(),
	})
}
