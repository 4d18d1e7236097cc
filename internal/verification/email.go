package verification

import "strings"

// Email evaluator scores. The three checks are additive, not exclusive: a
// bot-shaped local part on a disposable domain collects both penalties.
const (
	scoreEmailBotPattern   = 40
	scoreEmailDisposable   = 60
	scoreEmailRecentDomain = 20

	emailSuspectThreshold = 40
)

// EvaluateEmail scores an email address against the bot pattern tables.
// Pure function: same input always yields the same result.
func EvaluateEmail(email string, domainAge DomainAgeChecker) SignalResult {
	var res SignalResult
	addr := strings.ToLower(strings.TrimSpace(email))

	for _, pattern := range botEmailPatterns {
		if pattern.MatchString(addr) {
			res.Score += scoreEmailBotPattern
			res.Reasons = append(res.Reasons, "Email follows bot-like pattern")
			break // one penalty regardless of how many patterns match
		}
	}

	domain := emailDomain(addr)
	if _, ok := disposableDomains[domain]; ok {
		res.Score += scoreEmailDisposable
		res.Reasons = append(res.Reasons, "Email uses disposable domain")
	}

	if domain != "" && domainAge != nil && domainAge.IsRecentlyRegistered(domain) {
		res.Score += scoreEmailRecentDomain
		res.Reasons = append(res.Reasons, "Email domain appears newly registered")
	}

	res.Suspect = res.Score >= emailSuspectThreshold
	return res
}

func emailDomain(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	return addr[at+1:]
}
