package verification

import "strings"

const (
	scorePhoneFakeNumber      = 80
	scorePhoneRepeatedDigits  = 50
	scorePhoneSequentialRun   = 30
	repeatedDigitRunThreshold = 7

	phoneSuspectThreshold = 50
)

// EvaluatePhone scores a phone number after stripping formatting. An empty
// number scores zero: phone is optional at signup.
//
// A known-fake match (555/111/000 prefix or a fully sequential number) is
// returned on its own; the repeated-digit and ascending-run checks only
// stack with each other. A fake number necessarily contains ascending runs,
// so letting them stack would double-count the same evidence.
func EvaluatePhone(phone string) SignalResult {
	var res SignalResult
	digits := stripNonDigits(phone)
	if digits == "" {
		return res
	}

	if isKnownFakeNumber(digits) {
		res.Score = scorePhoneFakeNumber
		res.Reasons = append(res.Reasons, "Phone matches known fake number pattern")
		res.Suspect = true
		return res
	}

	if hasRepeatedDigitRun(digits, repeatedDigitRunThreshold) {
		res.Score += scorePhoneRepeatedDigits
		res.Reasons = append(res.Reasons, "Phone contains repeated digit sequence")
	}
	if hasAscendingRun(digits, 4) {
		res.Score += scorePhoneSequentialRun
		res.Reasons = append(res.Reasons, "Phone contains sequential digit pattern")
	}

	res.Suspect = res.Score >= phoneSuspectThreshold
	return res
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isKnownFakeNumber(digits string) bool {
	for _, prefix := range fakePhonePrefixes {
		if strings.HasPrefix(digits, prefix) {
			return true
		}
	}
	return isFullySequential(digits)
}

// isFullySequential reports whether a 9 or 10 digit number is one unbroken
// ascending run. The step wraps modulo 10 so 1234567890, the canonical fake
// number, still counts as one run across its 9 to 0 step.
func isFullySequential(digits string) bool {
	if len(digits) != 9 && len(digits) != 10 {
		return false
	}
	for i := 1; i < len(digits); i++ {
		next := (digits[i-1]-'0'+1)%10 + '0'
		if digits[i] != next {
			return false
		}
	}
	return true
}

func hasRepeatedDigitRun(digits string, minRun int) bool {
	run := 1
	for i := 1; i < len(digits); i++ {
		if digits[i] == digits[i-1] {
			run++
			if run >= minRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasAscendingRun scans every window of the given width for consecutive
// ascending digits (e.g. 1234).
func hasAscendingRun(digits string, width int) bool {
	for i := 0; i+width <= len(digits); i++ {
		ok := true
		for j := 1; j < width; j++ {
			if digits[i+j] != digits[i+j-1]+1 {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
