package verification

const (
	scoreBehaviorFastForm      = 60
	scoreBehaviorNoMouse       = 40
	scoreBehaviorUniformKeys   = 70
	minHumanFormMillis         = 5000
	keystrokeJitterToleranceMs = 10

	behaviorSuspectThreshold = 50
)

// EvaluateBehavior scores client-reported behavioral telemetry. A nil sample
// is a no-op: clients that report nothing are given the benefit of the doubt
// rather than penalized for missing instrumentation.
func EvaluateBehavior(sample *BehaviorSample) SignalResult {
	var res SignalResult
	if sample == nil {
		return res
	}

	if sample.FormCompletionMillis != nil && *sample.FormCompletionMillis < minHumanFormMillis {
		res.Score += scoreBehaviorFastForm
		res.Reasons = append(res.Reasons, "Form completed suspiciously fast")
	}

	if sample.MouseMovementCount != nil && *sample.MouseMovementCount == 0 {
		res.Score += scoreBehaviorNoMouse
		res.Reasons = append(res.Reasons, "No mouse movement detected")
	}

	if hasUniformKeystrokes(sample.KeystrokeIntervalsMs) {
		res.Score += scoreBehaviorUniformKeys
		res.Reasons = append(res.Reasons, "Identical keystroke timing indicates automation")
	}

	res.Suspect = res.Score >= behaviorSuspectThreshold
	return res
}

// hasUniformKeystrokes reports whether the first interval is within the
// jitter tolerance of the next three. Humans do not type on a metronome.
func hasUniformKeystrokes(intervals []int) bool {
	if len(intervals) < 4 {
		return false
	}
	first := intervals[0]
	for _, v := range intervals[1:4] {
		if abs(v-first) > keystrokeJitterToleranceMs {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
