package verification

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"trustgate/internal/activity"
	"trustgate/internal/ratelimit"
	"trustgate/internal/verification/metrics"
)

var tracer = otel.Tracer("trustgate/verification")

// Service runs the full verification workflow: ban check, rate gate, signal
// evaluation, audit logging. It owns the ordering; the evaluators and stores
// stay oblivious to each other.
type Service struct {
	assessor  *Assessor
	activity  activity.Store
	bans      BanChecker
	limiter   ratelimit.SignupLimiter
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

// WithPublisher streams every activity record to an external topic in
// addition to the store.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithDomainAgeChecker(c DomainAgeChecker) Option {
	return func(s *Service) { s.assessor = NewAssessor(c) }
}

func NewService(activityStore activity.Store, bans BanChecker, limiter ratelimit.SignupLimiter, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		assessor: NewAssessor(nil),
		activity: activityStore,
		bans:     bans,
		limiter:  limiter,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// failedDetails is the audit payload recorded for a bot verdict. Browser and
// OS come from user-agent parsing and are telemetry only; they never feed
// the score.
type failedDetails struct {
	RiskScore       int          `json:"riskScore"`
	Confidence      float64      `json:"confidence"`
	Reasons         []string     `json:"reasons"`
	Signals         SignalScores `json:"signals"`
	Browser         string       `json:"browser,omitempty"`
	OS              string       `json:"os,omitempty"`
	FingerprintHash string       `json:"fingerprintHash,omitempty"`
}

type passedDetails struct {
	RiskScore int `json:"riskScore"`
}

// Verify runs one signup attempt through the pipeline.
//
// Ordering is deliberate: the ban ledger and rate gate run before any
// evaluation, and the signup attempt is logged only once it passes the rate
// gate, so blocked retries cannot inflate their own attempt count.
func (s *Service) Verify(ctx context.Context, req Request) Result {
	ctx, span := tracer.Start(ctx, "verification.verify")
	defer span.End()
	span.SetAttributes(attribute.String("network_origin", req.NetworkOrigin))

	if s.isBanned(ctx, req.Email, req.NetworkOrigin) {
		s.metrics.RecordOutcome("banned")
		return Result{Banned: true, Message: msgBanned}
	}

	if !s.limiter.Allow(ctx, req.NetworkOrigin) {
		s.logger.InfoContext(ctx, "signup attempt rate limited",
			slog.String("network_origin", req.NetworkOrigin),
		)
		s.metrics.RecordOutcome("rate_limited")
		return Result{RateLimited: true, Message: msgRateLimited}
	}

	s.appendRecord(ctx, activity.New(req.Email, activity.TypeSignupAttempt, nil, req.NetworkOrigin))

	start := time.Now()
	assessment := s.assessor.Assess(ctx, req)
	s.metrics.ObserveEvaluateLatency(time.Since(start).Seconds())

	span.SetAttributes(
		attribute.Int("risk_score", assessment.RiskScore),
		attribute.Bool("is_bot", assessment.IsBot),
	)
	s.metrics.ObserveSignal("email", assessment.Signals.Email)
	s.metrics.ObserveSignal("phone", assessment.Signals.Phone)
	s.metrics.ObserveSignal("user_agent", assessment.Signals.UserAgent)
	s.metrics.ObserveSignal("behavior", assessment.Signals.Behavior)
	s.metrics.ObserveSignal("fingerprint", assessment.Signals.Fingerprint)

	if assessment.IsBot {
		details, err := json.Marshal(s.buildFailedDetails(req, assessment))
		if err != nil {
			s.logger.ErrorContext(ctx, "marshal verification details",
				slog.String("error", err.Error()),
			)
		}
		s.appendRecord(ctx, activity.New(req.Email, activity.TypeVerificationFailed, details, req.NetworkOrigin))
		s.logger.InfoContext(ctx, "bot verdict",
			slog.String("network_origin", req.NetworkOrigin),
			slog.Int("risk_score", assessment.RiskScore),
		)
		s.metrics.RecordOutcome("bot")
		return Result{IsHuman: false, RiskScore: assessment.RiskScore, Message: msgBotDetected}
	}

	details, _ := json.Marshal(passedDetails{RiskScore: assessment.RiskScore})
	s.appendRecord(ctx, activity.New(req.Email, activity.TypeVerificationPassed, details, req.NetworkOrigin))
	s.metrics.RecordOutcome("human")
	return Result{IsHuman: true, RiskScore: assessment.RiskScore, Message: msgHumanVerified}
}

// CompleteCaptcha records a successful CAPTCHA challenge. Validation of the
// response happens at the transport layer; by the time this runs the
// challenge has already been accepted.
func (s *Service) CompleteCaptcha(ctx context.Context, email, origin string, responseLength int) {
	details, _ := json.Marshal(map[string]int{"responseLength": responseLength})
	s.appendRecord(ctx, activity.New(email, activity.TypeCaptchaCompleted, details, origin))
}

// isBanned fails open: a ledger read error lets the attempt proceed to
// evaluation rather than hard-failing the signup.
func (s *Service) isBanned(ctx context.Context, email, origin string) bool {
	banned, err := s.bans.Exists(ctx, email, origin)
	if err != nil {
		s.logger.WarnContext(ctx, "ban check failed, failing open",
			slog.String("error", err.Error()),
		)
		return false
	}
	return banned
}

func (s *Service) buildFailedDetails(req Request, assessment Assessment) failedDetails {
	d := failedDetails{
		RiskScore:  assessment.RiskScore,
		Confidence: assessment.Confidence,
		Reasons:    assessment.Reasons,
		Signals:    assessment.Signals,
	}
	if req.UserAgent != "" {
		ua := useragent.New(req.UserAgent)
		name, version := ua.Browser()
		if name != "" {
			d.Browser = name + " " + version
		}
		d.OS = ua.OS()
	}
	if req.DeviceFingerprint != "" {
		sum := sha256.Sum256([]byte(req.DeviceFingerprint))
		d.FingerprintHash = hex.EncodeToString(sum[:])
	}
	return d
}

// appendRecord writes to the store and, when configured, the publisher.
// Both are best-effort: the verdict is already decided and an audit hiccup
// must not turn into a signup failure.
func (s *Service) appendRecord(ctx context.Context, rec activity.Record) {
	if err := s.activity.Append(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "append activity record",
			slog.String("activity_type", string(rec.Type)),
			slog.String("error", err.Error()),
		)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, rec); err != nil {
			s.logger.WarnContext(ctx, "publish activity record",
				slog.String("activity_type", string(rec.Type)),
				slog.String("error", err.Error()),
			)
		}
	}
}
