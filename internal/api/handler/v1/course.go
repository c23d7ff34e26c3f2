package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/response"
	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/service"
)

type CourseService interface {
	GetCourseLeader(ctx context.Context, courseID string) (domain.CourseLeader, error)
	ListLeaderboards(ctx context.Context) ([]domain.Leaderboard, error)
}

type CourseHandler struct {
	svc CourseService
}

func NewCourseHandler(svc CourseService) *CourseHandler {
	return &CourseHandler{
		svc: svc,
	}
}

func (h *CourseHandler) HandleGetCourseLeader(ctx *gin.Context) {
	courseID := ctx.Param("courseID")

	leader, err := h.svc.GetCourseLeader(ctx.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseLeaderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCourseLeaderNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetCourseLeader -> h.svc.GetCourseLeader -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, leader)
}

func (h *CourseHandler) HandleListLeaderboards(ctx *gin.Context) {
	boards, err := h.svc.ListLeaderboards(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLeaderboards -> h.svc.ListLeaderboards -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, boards)
}
