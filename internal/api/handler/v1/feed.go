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

const defaultFeedLimit = 50

type FeedService interface {
	PostThought(ctx context.Context, authorID uint, body string) (domain.Thought, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Thought, error)
	LikeThought(ctx context.Context, thoughtID, userID uint) (domain.Like, error)
	UnlikeThought(ctx context.Context, thoughtID, userID uint) error
}

type FeedHandler struct {
	svc FeedService
}

func NewFeedHandler(svc FeedService) *FeedHandler {
	return &FeedHandler{
		svc: svc,
	}
}

func (h *FeedHandler) HandlePostThought(ctx *gin.Context) {
	var req request.PostThoughtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	thought, err := h.svc.PostThought(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.Body)
	if err != nil {
		err = fmt.Errorf("v1.HandlePostThought -> h.svc.PostThought -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, thought)
}

func (h *FeedHandler) HandleListThoughts(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultFeedLimit)))
	if err != nil || limit <= 0 {
		limit = defaultFeedLimit
	}

	thoughts, err := h.svc.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListThoughts -> h.svc.ListRecent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, thoughts)
}

func (h *FeedHandler) HandleLikeThought(ctx *gin.Context) {
	thoughtID, err := strconv.ParseUint(ctx.Param("thoughtID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid thought id")))
		return
	}

	like, err := h.svc.LikeThought(ctx.Request.Context(), uint(thoughtID), middleware.UserIDFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrThoughtNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrThoughtNotFound))
		case errors.Is(err, service.ErrAlreadyLiked):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyLiked))
		case errors.Is(err, service.ErrLikeRateLimited):
			response.RenderErr(ctx, response.ErrTooManyRequests(service.ErrLikeRateLimited))
		default:
			err = fmt.Errorf("v1.HandleLikeThought -> h.svc.LikeThought -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, like)
}

func (h *FeedHandler) HandleUnlikeThought(ctx *gin.Context) {
	thoughtID, err := strconv.ParseUint(ctx.Param("thoughtID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid thought id")))
		return
	}

	if err := h.svc.UnlikeThought(ctx.Request.Context(), uint(thoughtID), middleware.UserIDFromContext(ctx)); err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotLiked))
			return
		}

		err = fmt.Errorf("v1.HandleUnlikeThought -> h.svc.UnlikeThought -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
