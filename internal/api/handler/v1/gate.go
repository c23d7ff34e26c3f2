package v1

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/request"
	"github.com/swingthoughts/swing-thoughts-api/internal/api/handler/v1/response"
	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/pkg/jwthelper"
)

type GateService interface {
	Resolve(ctx context.Context, session *domain.GateSession, userID uint, currentRoute string) domain.GateDecision
}

// GateHandler resolves navigation decisions. It is mounted without the auth
// middleware: anonymous callers are a valid input to the gate, so the token
// is parsed here and a missing or bad one just means userID zero.
type GateHandler struct {
	signingKey []byte
	svc        GateService

	mu       sync.Mutex
	sessions map[uint]*domain.GateSession
}

func NewGateHandler(signingKey string, svc GateService) *GateHandler {
	return &GateHandler{
		signingKey: []byte(signingKey),
		svc:        svc,
		sessions:   make(map[uint]*domain.GateSession),
	}
}

func (h *GateHandler) HandleResolve(ctx *gin.Context) {
	var req request.ResolveGateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	userID := h.userIDFromHeader(ctx)

	decision := h.svc.Resolve(ctx.Request.Context(), h.session(userID), userID, req.CurrentRoute)

	ctx.JSON(http.StatusOK, decision)
}

func (h *GateHandler) userIDFromHeader(ctx *gin.Context) uint {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return 0
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0
	}

	claims, err := jwthelper.ParseToken(h.signingKey, parts[1])
	if err != nil {
		return 0
	}

	return claims.UserID
}

// session returns the per-user gate session, creating it on first use. The
// session scopes the one-shot app-open side effects to the process lifetime.
func (h *GateHandler) session(userID uint) *domain.GateSession {
	if userID == 0 {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.sessions[userID]
	if !ok {
		s = domain.NewGateSession()
		h.sessions[userID] = s
	}
	return s
}
