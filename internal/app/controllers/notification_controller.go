package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// NotificationController handles notification endpoints
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ScheduleNotification handles POST /notifications
func (c *NotificationController) ScheduleNotification(ctx *gin.Context) {
	var req dto.ScheduleNotificationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	n, err := c.notificationService.Schedule(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(n, "Notification scheduled"))
}

// ListNotifications handles GET /notifications. It requires either
// ?recipient=<id> or ?pending=true.
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	if recipient, ok := ctx.GetQuery("recipient"); ok {
		list := c.notificationService.ListForRecipient(ctx, recipient)
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.Paginate(list, page, size), ""))
		return
	}
	if pending, _ := strconv.ParseBool(ctx.Query("pending")); pending {
		list := c.notificationService.ListPending(ctx)
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.Paginate(list, page, size), ""))
		return
	}

	middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("recipient or pending=true query parameter is required"))
}

// GetNotification handles GET /notifications/:id
func (c *NotificationController) GetNotification(ctx *gin.Context) {
	n, err := c.notificationService.GetNotification(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(n, ""))
}

// MarkSent handles POST /notifications/:id/sent
func (c *NotificationController) MarkSent(ctx *gin.Context) {
	if err := c.notificationService.MarkSent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteNotification handles DELETE /notifications/:id
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	if err := c.notificationService.DeleteNotification(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
