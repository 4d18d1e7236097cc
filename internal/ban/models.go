// Package ban is the ledger of identities blocked from signup. An entry
// matches by email or by network origin; either alone is enough to refuse
// an attempt.
package ban

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BannedIdentity is one ban ledger entry. Evidence holds the serialized
// assessment that triggered the ban, when one exists.
type BannedIdentity struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Reason        string          `json:"reason"`
	Evidence      json.RawMessage `json:"evidence,omitempty"`
	NetworkOrigin string          `json:"network_origin"`
	BannedAt      time.Time       `json:"banned_at"`
}

func New(email, reason string, evidence json.RawMessage, origin string) BannedIdentity {
	return BannedIdentity{
		ID:            uuid.New(),
		Email:         email,
		Reason:        reason,
		Evidence:      evidence,
		NetworkOrigin: origin,
		BannedAt:      time.Now().UTC(),
	}
}
