package verification

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Assessor runs every signal evaluator against a request and folds the
// results into a composite assessment. It holds no mutable state and is
// safe for concurrent use.
type Assessor struct {
	domainAge DomainAgeChecker
}

func NewAssessor(domainAge DomainAgeChecker) *Assessor {
	if domainAge == nil {
		domainAge = StaticTLDChecker{}
	}
	return &Assessor{domainAge: domainAge}
}

// Assess evaluates all signals in parallel. The evaluators are pure, so the
// composite is deterministic regardless of completion order.
func (a *Assessor) Assess(ctx context.Context, req Request) Assessment {
	var (
		email, phone, ua, behavior, fingerprint SignalResult
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		email = EvaluateEmail(req.Email, a.domainAge)
		return nil
	})
	g.Go(func() error {
		phone = EvaluatePhone(req.Phone)
		return nil
	})
	g.Go(func() error {
		ua = EvaluateUserAgent(req.UserAgent)
		return nil
	})
	g.Go(func() error {
		behavior = EvaluateBehavior(req.Behavior)
		return nil
	})
	g.Go(func() error {
		fingerprint = EvaluateFingerprint(req.DeviceFingerprint)
		return nil
	})
	_ = g.Wait() // evaluators cannot fail

	total := email.Score + phone.Score + ua.Score + behavior.Score + fingerprint.Score

	confidence := float64(total) / confidenceDivisor
	if confidence > 1.0 {
		confidence = 1.0
	}

	var reasons []string
	reasons = append(reasons, email.Reasons...)
	reasons = append(reasons, phone.Reasons...)
	reasons = append(reasons, ua.Reasons...)
	reasons = append(reasons, behavior.Reasons...)
	reasons = append(reasons, fingerprint.Reasons...)

	return Assessment{
		IsBot:      total >= botThreshold,
		RiskScore:  total,
		Confidence: confidence,
		Reasons:    reasons,
		Signals: SignalScores{
			Email:       email.Score,
			Phone:       phone.Score,
			UserAgent:   ua.Score,
			Behavior:    behavior.Score,
			Fingerprint: fingerprint.Score,
		},
		EvaluatedAt: time.Now().UTC(),
	}
}
