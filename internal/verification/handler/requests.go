package handler

import (
	"strings"

	"trustgate/internal/verification"
	"trustgate/pkg/apperr"
)

// VerifyHumanRequest is the HTTP request body for POST /api/verify-human.
type VerifyHumanRequest struct {
	Email             string                       `json:"email"`
	Phone             string                       `json:"phoneNumber"`
	DeviceFingerprint string                       `json:"deviceFingerprint"`
	BehaviorData      *verification.BehaviorSample `json:"behaviorData"`
}

// Validate checks required fields and normalizes the request.
func (r *VerifyHumanRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return apperr.New(apperr.CodeValidation, "Email is required.")
	}
	return nil
}

// VerifyCaptchaRequest is the HTTP request body for POST /api/verify-captcha.
type VerifyCaptchaRequest struct {
	Email           string `json:"email"`
	CaptchaResponse string `json:"captchaResponse"`
}

// Validate rejects missing or implausibly short challenge responses.
func (r *VerifyCaptchaRequest) Validate() error {
	if len(strings.TrimSpace(r.CaptchaResponse)) < 3 {
		return apperr.New(apperr.CodeValidation, "CAPTCHA verification required.")
	}
	return nil
}
