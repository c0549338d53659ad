package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/services"
	"github.com/tuteuradom/backend/internal/middleware"
)

// TeacherController handles teacher listing, profile and moderation operations
type TeacherController struct {
	teacherService *services.TeacherService
	reviewService  *services.ReviewService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService, reviewService *services.ReviewService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		reviewService:  reviewService,
	}
}

// ListTeachers lists active teachers matching the optional filters
// @Summary List teachers
// @Description Retrieves ACTIVE teacher profiles, best rated first. Supports subject, location and rate filters.
// @Tags teachers
// @Produce json
// @Param subject query string false "Substring match on subject"
// @Param location query string false "Teaching location (ONLINE, HOME, TEACHER_PLACE)"
// @Param maxRate query number false "Inclusive upper bound on hourly rate"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	filter := dto.TeacherFilter{
		Subject:  ctx.Query("subject"),
		Location: ctx.Query("location"),
	}

	if raw := ctx.Query("maxRate"); raw != "" {
		maxRate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid maxRate").
				WithField("maxRate").
				WithDetails("maxRate must be a number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.MaxRate = &maxRate
	}

	teachers, err := c.teacherService.ListTeachers(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teachers,
		Timestamp: time.Now(),
	})
}

// GetTeacher retrieves a teacher profile
// @Summary Get a teacher
// @Description Retrieves a teacher profile with its course catalogue
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.teacherService.GetTeacher(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// UpdateProfile updates the authenticated teacher's profile
// @Summary Update my teacher profile
// @Description Updates the calling teacher's profile fields
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateTeacherProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/teacher [put]
func (c *TeacherController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateTeacherProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	teacher, err := c.teacherService.UpdateProfile(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// UpdateStatus applies an admin moderation decision to a teacher
// @Summary Update teacher status
// @Description Moves a teacher profile between PENDING, ACTIVE and SUSPENDED
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Param request body dto.UpdateTeacherStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/teachers/{id}/status [put]
func (c *TeacherController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateTeacherStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	teacher, err := c.teacherService.UpdateStatus(ctx, ctx.Param("id"), models.TeacherStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// CreateReview records a review of a teacher
// @Summary Review a teacher
// @Description Records the calling parent's rating of a teacher and refreshes the average
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Param request body dto.CreateReviewRequest true "Review data"
// @Success 201 {object} dto.APIResponse{data=models.Review} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/reviews [post]
func (c *TeacherController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	review, err := c.reviewService.CreateReview(ctx, middleware.CurrentUserID(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      review,
		Timestamp: time.Now(),
	})
}

// ListReviews lists a teacher's reviews
// @Summary List teacher reviews
// @Description Retrieves all reviews of a teacher, newest first
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Review} "Reviews"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/reviews [get]
func (c *TeacherController) ListReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.ListReviews(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reviews,
		Timestamp: time.Now(),
	})
}
