package verification

import "encoding/json"

const (
	scoreFingerprintMissing  = 30
	scoreFingerprintInvalid  = 20
	scoreFingerprintWebdrive = 90
	scoreFingerprintNoPlugin = 40
	scoreFingerprintHeadless = 60

	fingerprintSuspectThreshold = 60
)

// deviceFingerprint is the subset of the client-side fingerprint blob this
// evaluator inspects. Unknown fields are ignored.
type deviceFingerprint struct {
	Webdriver        *bool  `json:"webdriver"`
	Plugins          []any  `json:"plugins"`
	ScreenResolution string `json:"screenResolution"`
	Timezone         string `json:"timezone"`
}

// EvaluateFingerprint scores an opaque serialized-JSON fingerprint blob.
// Malformed input is never an error: it degrades into a partial score so the
// composite still reflects that something is off.
//
// A missing fingerprint scores but keeps Suspect false. This mirrors the
// observed production behavior, where absence alone was not treated as a
// local bot signal; the asymmetry is pinned by tests.
func EvaluateFingerprint(raw string) SignalResult {
	var res SignalResult

	if raw == "" {
		res.Score = scoreFingerprintMissing
		res.Reasons = append(res.Reasons, "Missing device fingerprint")
		res.Suspect = false
		return res
	}

	var fp deviceFingerprint
	if err := json.Unmarshal([]byte(raw), &fp); err != nil {
		res.Score = scoreFingerprintInvalid
		res.Reasons = append(res.Reasons, "Invalid device fingerprint format")
		res.Suspect = res.Score >= fingerprintSuspectThreshold
		return res
	}

	if fp.Webdriver != nil && *fp.Webdriver {
		res.Score += scoreFingerprintWebdrive
		res.Reasons = append(res.Reasons, "Webdriver flag set in fingerprint")
	}

	if fp.Plugins != nil && len(fp.Plugins) == 0 {
		res.Score += scoreFingerprintNoPlugin
		res.Reasons = append(res.Reasons, "No browser plugins reported")
	}

	// 1920x1080 + UTC is the out-of-the-box headless Chromium profile.
	if fp.ScreenResolution == "1920x1080" && fp.Timezone == "UTC" {
		res.Score += scoreFingerprintHeadless
		res.Reasons = append(res.Reasons, "Default headless browser configuration")
	}

	res.Suspect = res.Score >= fingerprintSuspectThreshold
	return res
}
