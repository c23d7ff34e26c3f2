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

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.UserProfile, error)
	SetUserType(ctx context.Context, userID uint, userType domain.UserType) (domain.UserProfile, error)
	SetupProfile(ctx context.Context, userID uint, displayName string, handicap float64) (domain.UserProfile, error)
	CompleteLocker(ctx context.Context, userID uint) (domain.UserProfile, error)
	SubmitVerification(ctx context.Context, userID uint) (domain.UserProfile, error)
	AcceptTerms(ctx context.Context, userID uint) (domain.UserProfile, error)
	CompleteWelcomeTour(ctx context.Context, userID uint) (domain.UserProfile, error)
	UpdateGameIdentity(ctx context.Context, userID uint, gameIdentity string) (domain.UserProfile, error)
	UpdateChallengeBadges(ctx context.Context, userID uint, badgeIDs []string) (domain.UserProfile, error)
	RegisterPushToken(ctx context.Context, userID uint, token string) (domain.UserProfile, error)
}

type VerificationNotifier interface {
	NotifyVerificationSubmitted(ctx context.Context, userID uint)
}

type UserHandler struct {
	svc      UserService
	notifier VerificationNotifier
}

func NewUserHandler(svc UserService, notifier VerificationNotifier) *UserHandler {
	return &UserHandler{
		svc:      svc,
		notifier: notifier,
	}
}

func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid user id")))
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, err := h.svc.GetUser(ctx.Request.Context(), middleware.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleSetUserType(ctx *gin.Context) {
	var req request.SetUserTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.SetUserType(ctx.Request.Context(), middleware.UserIDFromContext(ctx), domain.UserType(req.UserType))
	if err != nil {
		h.renderMutationErr(ctx, "HandleSetUserType", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleSetupProfile(ctx *gin.Context) {
	var req request.SetupProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.SetupProfile(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.DisplayName, *req.Handicap)
	if err != nil {
		if errors.Is(err, service.ErrDisplayNameTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDisplayNameTaken))
			return
		}

		h.renderMutationErr(ctx, "HandleSetupProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleCompleteLocker(ctx *gin.Context) {
	user, err := h.svc.CompleteLocker(ctx.Request.Context(), middleware.UserIDFromContext(ctx))
	if err != nil {
		h.renderMutationErr(ctx, "HandleCompleteLocker", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleSubmitVerification(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	user, err := h.svc.SubmitVerification(ctx.Request.Context(), userID)
	if err != nil {
		h.renderMutationErr(ctx, "HandleSubmitVerification", err)
		return
	}

	if h.notifier != nil {
		h.notifier.NotifyVerificationSubmitted(ctx.Request.Context(), userID)
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleAcceptTerms(ctx *gin.Context) {
	user, err := h.svc.AcceptTerms(ctx.Request.Context(), middleware.UserIDFromContext(ctx))
	if err != nil {
		h.renderMutationErr(ctx, "HandleAcceptTerms", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleCompleteWelcomeTour(ctx *gin.Context) {
	user, err := h.svc.CompleteWelcomeTour(ctx.Request.Context(), middleware.UserIDFromContext(ctx))
	if err != nil {
		h.renderMutationErr(ctx, "HandleCompleteWelcomeTour", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleUpdateGameIdentity(ctx *gin.Context) {
	var req request.UpdateGameIdentityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.UpdateGameIdentity(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.GameIdentity)
	if err != nil {
		h.renderMutationErr(ctx, "HandleUpdateGameIdentity", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleUpdateChallengeBadges(ctx *gin.Context) {
	var req request.UpdateChallengeBadgesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.UpdateChallengeBadges(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.BadgeIDs)
	if err != nil {
		if errors.Is(err, service.ErrTooManyChallengeBadges) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTooManyChallengeBadges))
			return
		}

		h.renderMutationErr(ctx, "HandleUpdateChallengeBadges", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) HandleRegisterPushToken(ctx *gin.Context) {
	var req request.RegisterPushTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.RegisterPushToken(ctx.Request.Context(), middleware.UserIDFromContext(ctx), req.Token)
	if err != nil {
		h.renderMutationErr(ctx, "HandleRegisterPushToken", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) renderMutationErr(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
