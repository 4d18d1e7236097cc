package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"trustgate/internal/verification"
	"trustgate/pkg/httputil"
	"trustgate/pkg/requestcontext"
)

// Service defines the verification operations the handler depends on.
type Service interface {
	Verify(ctx context.Context, req verification.Request) verification.Result
	CompleteCaptcha(ctx context.Context, email, origin string, responseLength int)
}

// Handler wires the public verification endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the verification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/verify-human", h.HandleVerifyHuman)
	r.Post("/api/verify-captcha", h.HandleVerifyCaptcha)
}

// HandleVerifyHuman handles POST /api/verify-human.
func (h *Handler) HandleVerifyHuman(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req VerifyHumanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, VerifyResponse{Message: "Invalid request body."})
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, VerifyResponse{Message: "Email is required."})
		return
	}

	result := h.service.Verify(ctx, verification.Request{
		Email:             req.Email,
		Phone:             req.Phone,
		NetworkOrigin:     requestcontext.ClientIP(ctx),
		UserAgent:         requestcontext.UserAgent(ctx),
		Behavior:          req.BehaviorData,
		DeviceFingerprint: req.DeviceFingerprint,
	})

	h.logger.InfoContext(ctx, "verification completed",
		slog.String("request_id", requestcontext.RequestID(ctx)),
		slog.Bool("is_human", result.IsHuman),
		slog.Int("risk_score", result.RiskScore),
		slog.Bool("rate_limited", result.RateLimited),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	httputil.WriteJSON(w, statusForResult(result), VerifyResponse{
		Success:   result.IsHuman,
		IsHuman:   result.IsHuman,
		RiskScore: result.RiskScore,
		Message:   result.Message,
	})
}

func statusForResult(result verification.Result) int {
	switch {
	case result.RateLimited:
		return http.StatusTooManyRequests
	case result.Banned, !result.IsHuman:
		return http.StatusForbidden
	default:
		return http.StatusOK
	}
}

// HandleVerifyCaptcha handles POST /api/verify-captcha.
func (h *Handler) HandleVerifyCaptcha(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyCaptchaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, CaptchaResponse{Message: "CAPTCHA verification required."})
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, CaptchaResponse{Message: "CAPTCHA verification required."})
		return
	}

	h.service.CompleteCaptcha(ctx, strings.TrimSpace(req.Email), requestcontext.ClientIP(ctx), len(req.CaptchaResponse))
	httputil.WriteJSON(w, http.StatusOK, CaptchaResponse{
		Success: true,
		Message: "CAPTCHA verified successfully.",
	})
}
