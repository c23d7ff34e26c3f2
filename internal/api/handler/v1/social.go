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

type SocialService interface {
	CreateThread(ctx context.Context, creatorID uint, participantIDs []uint) (domain.MessageThread, error)
	CreateLeague(ctx context.Context, founderID uint, name string) (domain.League, error)
	JoinLeague(ctx context.Context, leagueID, userID uint) (domain.LeagueMember, error)
}

type SocialHandler struct {
	svc SocialService
}

func NewSocialHandler(svc SocialService) *SocialHandler {
	return &SocialHandler{
		svc: svc,
	}
}

func (h *SocialHandler) HandleCreateThread(ctx *gin.Context) {
	var req request.CreateThreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	thread, err := h.svc.CreateThread(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.ParticipantIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrThreadNeedsParticipants):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrThreadNeedsParticipants))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
		default:
			err = fmt.Errorf("v1.HandleCreateThread -> h.svc.CreateThread -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, thread)
}

func (h *SocialHandler) HandleCreateLeague(ctx *gin.Context) {
	var req request.CreateLeagueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	league, err := h.svc.CreateLeague(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.Name)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateLeague -> h.svc.CreateLeague -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, league)
}

func (h *SocialHandler) HandleJoinLeague(ctx *gin.Context) {
	leagueID, err := strconv.ParseUint(ctx.Param("leagueID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid league id")))
		return
	}

	member, err := h.svc.JoinLeague(ctx.Request.Context(), uint(leagueID), middleware.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleJoinLeague -> h.svc.JoinLeague -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, member)
}
