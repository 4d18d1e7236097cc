// Package activity is the append-only suspicious-activity log. Records are
// written once and never updated or deleted; every security-relevant event
// in the verification pipeline lands here.
package activity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type classifies a logged event.
type Type string

const (
	TypeSignupAttempt      Type = "signup_attempt"
	TypeVerificationPassed Type = "human_verification_passed"
	TypeVerificationFailed Type = "human_verification_failed"
	TypeCaptchaCompleted   Type = "captcha_completed"
)

// Record is one entry in the activity log. Identity is usually an email but
// may be empty when the actor is known only by network origin.
type Record struct {
	ID            uuid.UUID       `json:"id"`
	Identity      string          `json:"identity"`
	Type          Type            `json:"activity_type"`
	Details       json.RawMessage `json:"details,omitempty"`
	NetworkOrigin string          `json:"network_origin"`
	CreatedAt     time.Time       `json:"created_at"`
}

func New(identity string, t Type, details json.RawMessage, origin string) Record {
	return Record{
		ID:            uuid.New(),
		Identity:      identity,
		Type:          t,
		Details:       details,
		NetworkOrigin: origin,
		CreatedAt:     time.Now().UTC(),
	}
}
