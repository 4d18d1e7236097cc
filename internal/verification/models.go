package verification

import "time"

// Request carries everything submitted with one signup attempt. It is built
// once per attempt and never persisted; only its evaluation outcome is.
type Request struct {
	Email             string
	Phone             string
	NetworkOrigin     string
	UserAgent         string
	Behavior          *BehaviorSample
	DeviceFingerprint string
}

// BehaviorSample is the client-reported behavioral telemetry. All fields are
// optional; absent fields never contribute to the score.
type BehaviorSample struct {
	FormCompletionMillis *int  `json:"formCompletionMillis"`
	MouseMovementCount   *int  `json:"mouseMovementCount"`
	KeystrokeIntervalsMs []int `json:"keystrokeIntervalsMillis"`
}

// SignalResult is the verdict of a single evaluator for one request.
type SignalResult struct {
	Score   int
	Reasons []string
	// Suspect is the evaluator-local threshold flag. It is informational
	// only: the composite assessor sums scores and never consults it.
	Suspect bool
}

// Assessment is the composite risk verdict for one request.
type Assessment struct {
	RiskScore   int
	Confidence  float64
	IsBot       bool
	Reasons     []string
	Signals     SignalScores
	EvaluatedAt time.Time
}

// SignalScores breaks the total down by evaluator, for audit details.
type SignalScores struct {
	Email       int `json:"email"`
	Phone       int `json:"phone"`
	UserAgent   int `json:"user_agent"`
	Behavior    int `json:"behavior"`
	Fingerprint int `json:"fingerprint"`
}

// Result is what the workflow returns to the transport layer.
type Result struct {
	IsHuman   bool
	RiskScore int
	Message   string
	// RateLimited is set when the request was vetoed before evaluation.
	RateLimited bool
	// Banned is set when the identity was found in the ban ledger.
	Banned bool
}

const (
	// botThreshold is the composite score at which a request is classified
	// as automated.
	botThreshold = 70

	// confidenceDivisor normalizes the risk score into [0,1].
	confidenceDivisor = 100.0
)

// Messages returned to callers. Reasons stay internal; callers only ever see
// these generic strings.
const (
	msgHumanVerified = "Human verification successful."
	msgBotDetected   = "Bot behavior detected. Please contact support if you believe this is an error."
	msgRateLimited   = "Too many signup attempts. Please try again later."
	msgBanned        = "This account has been suspended."
)
