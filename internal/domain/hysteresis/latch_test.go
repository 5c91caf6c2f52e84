package hysteresis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullLatch_Step(t *testing.T) {
	full := Full(100, 95)

	tests := []struct {
		name        string
		level       float64
		latched     bool
		wantLatched bool
		wantFired   bool
	}{
		{name: "reaches full first time", level: 100, latched: false, wantLatched: true, wantFired: true},
		{name: "repeat at full stays quiet", level: 100, latched: true, wantLatched: true, wantFired: false},
		{name: "inside band keeps latch", level: 97, latched: true, wantLatched: true, wantFired: false},
		{name: "rearm threshold itself keeps latch", level: 95, latched: true, wantLatched: true, wantFired: false},
		{name: "below rearm resets", level: 94.5, latched: true, wantLatched: false, wantFired: false},
		{name: "inside band unlatched stays quiet", level: 98, latched: false, wantLatched: false, wantFired: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, fired := full.Step(tt.level, tt.latched)
			assert.Equal(t, tt.wantLatched, next)
			assert.Equal(t, tt.wantFired, fired)
		})
	}
}

func TestEmptyLatch_Step(t *testing.T) {
	empty := Empty(5, 10)

	tests := []struct {
		name        string
		level       float64
		latched     bool
		wantLatched bool
		wantFired   bool
	}{
		{name: "reaches empty first time", level: 5, latched: false, wantLatched: true, wantFired: true},
		{name: "below empty while latched", level: 2, latched: true, wantLatched: true, wantFired: false},
		{name: "rearm threshold itself keeps latch", level: 10, latched: true, wantLatched: true, wantFired: false},
		{name: "above rearm resets", level: 11, latched: true, wantLatched: false, wantFired: false},
		{name: "inside band unlatched stays quiet", level: 8, latched: false, wantLatched: false, wantFired: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, fired := empty.Step(tt.level, tt.latched)
			assert.Equal(t, tt.wantLatched, next)
			assert.Equal(t, tt.wantFired, fired)
		})
	}
}

func TestLatch_FullCycle(t *testing.T) {
	full := Full(100, 95)
	latched := false
	fires := 0

	for _, level := range []float64{90, 100, 100, 99, 96, 94, 100} {
		var fired bool
		latched, fired = full.Step(level, latched)
		if fired {
			fires++
		}
	}

	assert.Equal(t, 2, fires)
	assert.True(t, latched)
}
