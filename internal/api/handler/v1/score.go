package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/request"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/response"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/middleware"
	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type ScoreService interface {
	SubmitScore(ctx context.Context, score domain.Score, hadHoleInOne bool, holeNumber int) (domain.Score, []domain.Badge, error)
}

type ScoreHandler struct {
	svc ScoreService
}

func NewScoreHandler(svc ScoreService) *ScoreHandler {
	return &ScoreHandler{
		svc: svc,
	}
}

type submitScoreResponse struct {
	Score         domain.Score   `json:"score"`
	AwardedBadges []domain.Badge `json:"awarded_badges"`
}

func (h *ScoreHandler) HandleSubmitScore(ctx *gin.Context) {
	var req request.SubmitScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	score, badges, err := h.svc.SubmitScore(ctx.Request.Context(), domain.Score{
		UserID:     middleware.UserIDFromContext(ctx),
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Gross:      req.Gross,
		Net:        req.Net,
		Holes:      req.Holes,
	}, req.HoleInOne, req.HoleNumber)
	if err != nil {
		err = fmt.Errorf("v1.HandleSubmitScore -> h.svc.SubmitScore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, submitScoreResponse{
		Score:         score,
		AwardedBadges: badges,
	})
}
