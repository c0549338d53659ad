package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/services"
	"github.com/tuteuradom/backend/internal/middleware"
)

// RequestController handles course request lifecycle operations
type RequestController struct {
	lifecycleService *services.LifecycleService
	resolverService  *services.ResolverService
}

// NewRequestController creates a new RequestController
func NewRequestController(lifecycleService *services.LifecycleService, resolverService *services.ResolverService) *RequestController {
	return &RequestController{
		lifecycleService: lifecycleService,
		resolverService:  resolverService,
	}
}

// CreateRequest handles course request submission
// @Summary Submit a course request
// @Description Creates a PENDING course request addressed to a teacher. References are stored as given and resolved lazily.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRequestRequest true "Request data"
// @Success 201 {object} dto.APIResponse{data=models.Request} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests [post]
func (c *RequestController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.lifecycleService.CreateRequest(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// GetRequest retrieves a request with its resolved references
// @Summary Get a request
// @Description Retrieves a request by id, enriched with its parent, teacher and course when they still resolve
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.RequestDetails} "Request retrieved"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{id} [get]
func (c *RequestController) GetRequest(ctx *gin.Context) {
	request, err := c.lifecycleService.GetRequest(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveRequest(ctx, request),
		Timestamp: time.Now(),
	})
}

// ListPendingRequests lists requests awaiting a decision
// @Summary List pending requests
// @Description Retrieves all PENDING requests, oldest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RequestDetails} "Pending requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests [get]
func (c *RequestController) ListPendingRequests(ctx *gin.Context) {
	requests, err := c.lifecycleService.ListPendingRequests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveRequests(ctx, requests),
		Timestamp: time.Now(),
	})
}

// ListAllRequests lists every request for the admin view
// @Summary List all requests
// @Description Retrieves all requests regardless of status, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RequestDetails} "Requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/requests [get]
func (c *RequestController) ListAllRequests(ctx *gin.Context) {
	requests, err := c.lifecycleService.ListAllRequests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveRequests(ctx, requests),
		Timestamp: time.Now(),
	})
}

// ListMyRequests lists the authenticated parent's requests
// @Summary List my requests
// @Description Retrieves the calling parent's requests, oldest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RequestDetails} "Requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/requests [get]
func (c *RequestController) ListMyRequests(ctx *gin.Context) {
	requests, err := c.lifecycleService.ListRequestsByParent(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveRequests(ctx, requests),
		Timestamp: time.Now(),
	})
}

// ListIncomingRequests lists the authenticated teacher's incoming requests
// @Summary List incoming requests
// @Description Retrieves the calling teacher's incoming requests, oldest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RequestDetails} "Requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/teacher/requests [get]
func (c *RequestController) ListIncomingRequests(ctx *gin.Context) {
	requests, err := c.lifecycleService.ListRequestsByTeacher(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveRequests(ctx, requests),
		Timestamp: time.Now(),
	})
}

// ApproveRequest approves a pending request and schedules its appointment
// @Summary Approve a request
// @Description Moves a PENDING request to APPROVED and creates the SCHEDULED appointment in one step
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body dto.ScheduleRequest true "Scheduling details"
// @Success 201 {object} dto.APIResponse{data=dto.AppointmentResponse} "Appointment scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request is not pending"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{id}/approve [post]
func (c *RequestController) ApproveRequest(ctx *gin.Context) {
	var schedule dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&schedule); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	appointment, err := c.lifecycleService.ApproveRequest(ctx, ctx.Param("id"), &schedule)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewAppointmentResponse(appointment),
		Timestamp: time.Now(),
	})
}

// RejectRequest rejects a pending request
// @Summary Reject a request
// @Description Moves a PENDING request to REJECTED. No appointment is created.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.Request} "Request rejected"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request is not pending"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{id}/reject [post]
func (c *RequestController) RejectRequest(ctx *gin.Context) {
	request, err := c.lifecycleService.RejectRequest(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}
