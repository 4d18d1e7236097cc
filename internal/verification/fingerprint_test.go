package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFingerprint(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantScore   int
		wantSuspect bool
	}{
		{name: "missing scores but is not suspect", raw: "", wantScore: 30},
		{name: "malformed json", raw: "{not json", wantScore: 20},
		{
			name:      "clean browser profile",
			raw:       `{"webdriver":false,"plugins":["pdf","flash"],"screenResolution":"2560x1440","timezone":"America/New_York"}`,
			wantScore: 0,
		},
		{
			name:      "webdriver flag",
			raw:       `{"webdriver":true,"plugins":["pdf"]}`,
			wantScore: 90, wantSuspect: true,
		},
		{
			name:      "empty plugin list",
			raw:       `{"plugins":[]}`,
			wantScore: 40,
		},
		{
			name:      "absent plugin field is neutral",
			raw:       `{"webdriver":false}`,
			wantScore: 0,
		},
		{
			name:      "default headless profile",
			raw:       `{"screenResolution":"1920x1080","timezone":"UTC"}`,
			wantScore: 60, wantSuspect: true,
		},
		{
			name:      "all signals stack",
			raw:       `{"webdriver":true,"plugins":[],"screenResolution":"1920x1080","timezone":"UTC"}`,
			wantScore: 190, wantSuspect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateFingerprint(tt.raw)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantSuspect, got.Suspect)
		})
	}
}
