package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/services"
	"github.com/tuteuradom/backend/internal/middleware"
)

// AppointmentController handles appointment lifecycle operations
type AppointmentController struct {
	lifecycleService *services.LifecycleService
	resolverService  *services.ResolverService
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(lifecycleService *services.LifecycleService, resolverService *services.ResolverService) *AppointmentController {
	return &AppointmentController{
		lifecycleService: lifecycleService,
		resolverService:  resolverService,
	}
}

// GetAppointment retrieves an appointment with its resolved references
// @Summary Get an appointment
// @Description Retrieves an appointment by id, enriched with its parent and teacher when they still resolve
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.APIResponse{data=dto.AppointmentDetails} "Appointment retrieved"
// @Failure 404 {object} dto.ErrorResponse "Appointment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appointments/{id} [get]
func (c *AppointmentController) GetAppointment(ctx *gin.Context) {
	appointment, err := c.lifecycleService.GetAppointment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveAppointment(ctx, appointment),
		Timestamp: time.Now(),
	})
}

// ListMyAppointments lists the authenticated parent's appointments
// @Summary List my appointments
// @Description Retrieves the calling parent's appointments, oldest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AppointmentDetails} "Appointments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/appointments [get]
func (c *AppointmentController) ListMyAppointments(ctx *gin.Context) {
	appointments, err := c.lifecycleService.ListAppointmentsByParent(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveAppointments(ctx, appointments),
		Timestamp: time.Now(),
	})
}

// ListTeachingAppointments lists the authenticated teacher's appointments
// @Summary List teaching appointments
// @Description Retrieves the calling teacher's appointments, oldest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AppointmentDetails} "Appointments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/teacher/appointments [get]
func (c *AppointmentController) ListTeachingAppointments(ctx *gin.Context) {
	appointments, err := c.lifecycleService.ListAppointmentsByTeacher(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveAppointments(ctx, appointments),
		Timestamp: time.Now(),
	})
}

// ListAllAppointments lists every appointment for the admin view
// @Summary List all appointments
// @Description Retrieves all appointments regardless of status, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AppointmentDetails} "Appointments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/appointments [get]
func (c *AppointmentController) ListAllAppointments(ctx *gin.Context) {
	appointments, err := c.lifecycleService.ListAllAppointments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.resolverService.ResolveAppointments(ctx, appointments),
		Timestamp: time.Now(),
	})
}

// CompleteAppointment marks an appointment as held
// @Summary Complete an appointment
// @Description Moves a SCHEDULED appointment to COMPLETED. Terminal appointments are refused.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.APIResponse{data=dto.AppointmentResponse} "Appointment completed"
// @Failure 404 {object} dto.ErrorResponse "Appointment not found"
// @Failure 409 {object} dto.ErrorResponse "Appointment is not scheduled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appointments/{id}/complete [post]
func (c *AppointmentController) CompleteAppointment(ctx *gin.Context) {
	appointment, err := c.lifecycleService.CompleteAppointment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewAppointmentResponse(appointment),
		Timestamp: time.Now(),
	})
}

// CancelAppointment calls an appointment off
// @Summary Cancel an appointment
// @Description Moves a SCHEDULED appointment to CANCELLED. The originating request stays APPROVED.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.APIResponse{data=dto.AppointmentResponse} "Appointment cancelled"
// @Failure 404 {object} dto.ErrorResponse "Appointment not found"
// @Failure 409 {object} dto.ErrorResponse "Appointment is not scheduled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /appointments/{id}/cancel [post]
func (c *AppointmentController) CancelAppointment(ctx *gin.Context) {
	appointment, err := c.lifecycleService.CancelAppointment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewAppointmentResponse(appointment),
		Timestamp: time.Now(),
	})
}
