package admin

import (
	"strings"

	"trustgate/pkg/apperr"
)

// BanRequest is the HTTP request body for POST /api/admin/ban.
type BanRequest struct {
	Email         string `json:"email"`
	NetworkOrigin string `json:"network_origin"`
	Reason        string `json:"reason"`
}

// Validate requires at least one identity field; a ban with neither would
// never match anything.
func (r *BanRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.NetworkOrigin = strings.TrimSpace(r.NetworkOrigin)
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Email == "" && r.NetworkOrigin == "" {
		return apperr.New(apperr.CodeValidation, "email or network_origin is required")
	}
	if r.Reason == "" {
		return apperr.New(apperr.CodeValidation, "reason is required")
	}
	return nil
}
