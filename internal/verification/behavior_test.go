package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestEvaluateBehavior(t *testing.T) {
	tests := []struct {
		name        string
		sample      *BehaviorSample
		wantScore   int
		wantSuspect bool
	}{
		{name: "nil sample is neutral", sample: nil, wantScore: 0},
		{name: "empty sample is neutral", sample: &BehaviorSample{}, wantScore: 0},
		{
			name:      "fast form completion",
			sample:    &BehaviorSample{FormCompletionMillis: intPtr(1200)},
			wantScore: 60, wantSuspect: true,
		},
		{
			name:      "slow form completion is neutral",
			sample:    &BehaviorSample{FormCompletionMillis: intPtr(12000)},
			wantScore: 0,
		},
		{
			name:      "zero mouse movement",
			sample:    &BehaviorSample{MouseMovementCount: intPtr(0)},
			wantScore: 40,
		},
		{
			name:      "absent mouse movement is neutral",
			sample:    &BehaviorSample{FormCompletionMillis: intPtr(12000)},
			wantScore: 0,
		},
		{
			name:      "uniform keystrokes",
			sample:    &BehaviorSample{KeystrokeIntervalsMs: []int{100, 105, 98, 102, 350}},
			wantScore: 70, wantSuspect: true,
		},
		{
			name:      "jittery keystrokes are neutral",
			sample:    &BehaviorSample{KeystrokeIntervalsMs: []int{100, 240, 95, 180}},
			wantScore: 0,
		},
		{
			name:      "too few keystroke samples are neutral",
			sample:    &BehaviorSample{KeystrokeIntervalsMs: []int{100, 100, 100}},
			wantScore: 0,
		},
		{
			name: "all signals stack",
			sample: &BehaviorSample{
				FormCompletionMillis: intPtr(900),
				MouseMovementCount:   intPtr(0),
				KeystrokeIntervalsMs: []int{50, 50, 50, 50},
			},
			wantScore: 170, wantSuspect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateBehavior(tt.sample)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantSuspect, got.Suspect)
		})
	}
}
