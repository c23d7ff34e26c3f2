package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/request"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/response"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/middleware"
	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

const defaultNotificationLimit = 50

type NotificationService interface {
	List(ctx context.Context, userID uint, limit int) ([]domain.Notification, error)
	SendPartnerRequest(ctx context.Context, fromID, toID uint) (domain.PartnerRequest, error)
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
	}
}

func (h *NotificationHandler) HandleListNotifications(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultNotificationLimit)))
	if err != nil || limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := h.svc.List(ctx.Request.Context(), middleware.UserIDFromContext(ctx), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListNotifications -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) HandleSendPartnerRequest(ctx *gin.Context) {
	var req request.SendPartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	partnerRequest, err := h.svc.SendPartnerRequest(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.ToUserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleSendPartnerRequest -> h.svc.SendPartnerRequest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, partnerRequest)
}
