package admin

import (
	"encoding/json"
	"time"

	"trustgate/internal/activity"
	"trustgate/internal/ban"
)

// ActivityEntry is one row in the suspicious-activity listing. Details are
// re-expanded from their stored JSON so admin clients get structure, not a
// double-encoded string.
type ActivityEntry struct {
	ID            string         `json:"id"`
	Identity      string         `json:"identity"`
	Type          string         `json:"activity_type"`
	Details       map[string]any `json:"details,omitempty"`
	NetworkOrigin string         `json:"network_origin"`
	CreatedAt     time.Time      `json:"created_at"`
}

func toActivityEntry(rec activity.Record) ActivityEntry {
	entry := ActivityEntry{
		ID:            rec.ID.String(),
		Identity:      rec.Identity,
		Type:          string(rec.Type),
		NetworkOrigin: rec.NetworkOrigin,
		CreatedAt:     rec.CreatedAt,
	}
	if len(rec.Details) > 0 {
		// Best effort; malformed details stay omitted rather than failing
		// the whole listing.
		_ = json.Unmarshal(rec.Details, &entry.Details)
	}
	return entry
}

// BannedEntry is one row in the banned-users listing. Evidence is re-expanded
// the same way activity details are.
type BannedEntry struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Reason        string         `json:"reason"`
	Evidence      map[string]any `json:"evidence,omitempty"`
	NetworkOrigin string         `json:"network_origin"`
	BannedAt      time.Time      `json:"banned_at"`
}

func toBannedEntry(b ban.BannedIdentity) BannedEntry {
	entry := BannedEntry{
		ID:            b.ID.String(),
		Email:         b.Email,
		Reason:        b.Reason,
		NetworkOrigin: b.NetworkOrigin,
		BannedAt:      b.BannedAt,
	}
	if len(b.Evidence) > 0 {
		_ = json.Unmarshal(b.Evidence, &entry.Evidence)
	}
	return entry
}

// SecurityStats summarizes the verification pipeline for the admin console.
type SecurityStats struct {
	SignupAttempts    int `json:"signup_attempts"`
	VerificationsPass int `json:"verifications_passed"`
	VerificationsFail int `json:"verifications_failed"`
	CaptchasCompleted int `json:"captchas_completed"`
	BannedIdentities  int `json:"banned_identities"`
}
