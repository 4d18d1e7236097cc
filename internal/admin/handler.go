// Package admin exposes the JWT-guarded operator endpoints: activity review,
// ban management, and pipeline statistics.
package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trustgate/internal/activity"
	"trustgate/internal/ban"
	"trustgate/pkg/httputil"
	"trustgate/pkg/requestcontext"
)

// recentListLimit bounds the admin listings; older rows stay queryable in
// the database directly.
const recentListLimit = 100

type Handler struct {
	activity activity.Store
	bans     ban.Store
	logger   *slog.Logger
}

func New(activityStore activity.Store, banStore ban.Store, logger *slog.Logger) *Handler {
	return &Handler{activity: activityStore, bans: banStore, logger: logger}
}

// Register mounts the admin endpoints. The caller wraps them in the admin
// auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/admin/suspicious-activity", h.HandleListActivity)
	r.Get("/api/admin/banned-users", h.HandleListBanned)
	r.Get("/api/admin/security-stats", h.HandleSecurityStats)
	r.Post("/api/admin/ban", h.HandleBan)
}

// HandleListActivity handles GET /api/admin/suspicious-activity.
func (h *Handler) HandleListActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.activity.ListRecent(ctx, recentListLimit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list activity records",
			slog.String("request_id", requestcontext.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		httputil.WriteError(w, err)
		return
	}

	entries := make([]ActivityEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, toActivityEntry(rec))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"activities": entries})
}

// HandleListBanned handles GET /api/admin/banned-users.
func (h *Handler) HandleListBanned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	banned, err := h.bans.ListRecent(ctx, recentListLimit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list banned identities",
			slog.String("request_id", requestcontext.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		httputil.WriteError(w, err)
		return
	}

	entries := make([]BannedEntry, 0, len(banned))
	for _, b := range banned {
		entries = append(entries, toBannedEntry(b))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"banned_users": entries})
}

// HandleSecurityStats handles GET /api/admin/security-stats.
func (h *Handler) HandleSecurityStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.collectStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "collect security stats",
			slog.String("request_id", requestcontext.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) collectStats(ctx context.Context) (SecurityStats, error) {
	var stats SecurityStats
	counters := []struct {
		dst *int
		t   activity.Type
	}{
		{&stats.SignupAttempts, activity.TypeSignupAttempt},
		{&stats.VerificationsPass, activity.TypeVerificationPassed},
		{&stats.VerificationsFail, activity.TypeVerificationFailed},
		{&stats.CaptchasCompleted, activity.TypeCaptchaCompleted},
	}
	for _, c := range counters {
		n, err := h.activity.CountByType(ctx, c.t)
		if err != nil {
			return SecurityStats{}, err
		}
		*c.dst = n
	}
	n, err := h.bans.Count(ctx)
	if err != nil {
		return SecurityStats{}, err
	}
	stats.BannedIdentities = n
	return stats, nil
}

// HandleBan handles POST /api/admin/ban.
func (h *Handler) HandleBan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeJSON[BanRequest](w, r)
	if !ok {
		return
	}

	entry := ban.New(req.Email, req.Reason, nil, req.NetworkOrigin)
	if err := h.bans.Add(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "add ban entry",
			slog.String("request_id", requestcontext.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "identity banned",
		slog.String("request_id", requestcontext.RequestID(ctx)),
		slog.String("admin", requestcontext.AdminSubject(ctx)),
		slog.String("email", req.Email),
		slog.String("network_origin", req.NetworkOrigin),
	)
	httputil.WriteJSON(w, http.StatusCreated, toBannedEntry(entry))
}
