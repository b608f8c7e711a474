package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// Create targets a notification at a user
// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Notification true "Notification"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var n models.Notification
	if err := ctx.ShouldBindJSON(&n); err != nil {
		bindError(ctx, "Invalid notification data", err)
		return
	}

	id, err := c.notificationService.Create(ctx.Request.Context(), &n)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}
