package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/request"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/response"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/middleware"
	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/service"
)

type InvitationalService interface {
	CreateInvitational(ctx context.Context, hostID uint, name string, ghostNames []string) (domain.Invitational, error)
	GetInvitational(ctx context.Context, id uint) (domain.Invitational, error)
	ClaimInviteCode(ctx context.Context, userID uint, code string) (domain.ClaimInviteResult, error)
}

type InvitationalHandler struct {
	svc InvitationalService
}

func NewInvitationalHandler(svc InvitationalService) *InvitationalHandler {
	return &InvitationalHandler{
		svc: svc,
	}
}

func (h *InvitationalHandler) HandleCreateInvitational(ctx *gin.Context) {
	var req request.CreateInvitationalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invitational, err := h.svc.CreateInvitational(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.Name, req.GhostNames)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateInvitational -> h.svc.CreateInvitational -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, invitational)
}

func (h *InvitationalHandler) HandleGetInvitational(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("invitationalID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid invitational id")))
		return
	}

	invitational, err := h.svc.GetInvitational(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrInvitationalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrInvitationalNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetInvitational -> h.svc.GetInvitational -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, invitational)
}

// HandleClaimInvite returns 200 with a failure payload for the domain
// rejections (bad code, claimed, already rostered); only infrastructure
// failures become HTTP errors.
func (h *InvitationalHandler) HandleClaimInvite(ctx *gin.Context) {
	var req request.ClaimInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.ClaimInviteCode(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.Code)
	if err != nil {
		err = fmt.Errorf("v1.HandleClaimInvite -> h.svc.ClaimInviteCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
