package verification

import "strings"

const (
	scoreUAMissing         = 70
	scoreUABotKeyword      = 90
	scoreUAHeadlessProduct = 85
	minPlausibleUALength   = 10

	userAgentSuspectThreshold = 70
)

// EvaluateUserAgent scores a raw User-Agent header. A missing or implausibly
// short value short-circuits: it is already a high-confidence signal and the
// remaining checks would only read noise.
func EvaluateUserAgent(ua string) SignalResult {
	var res SignalResult

	if len(strings.TrimSpace(ua)) < minPlausibleUALength {
		res.Score = scoreUAMissing
		res.Reasons = append(res.Reasons, "Missing or suspicious user agent")
		res.Suspect = true
		return res
	}

	lowered := strings.ToLower(ua)
	for _, keyword := range botUserAgentKeywords {
		if strings.Contains(lowered, keyword) {
			res.Score += scoreUABotKeyword
			res.Reasons = append(res.Reasons, "User agent matches bot signature: "+keyword)
			break
		}
	}

	// Exact headless product tokens stack with the keyword check.
	for _, sig := range headlessSignatures {
		if strings.Contains(ua, sig) {
			res.Score += scoreUAHeadlessProduct
			res.Reasons = append(res.Reasons, "Headless browser detected: "+sig)
			break
		}
	}

	res.Suspect = res.Score >= userAgentSuspectThreshold
	return res
}
