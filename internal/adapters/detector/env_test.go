package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/adapters/detector"
)

func env(tty bool, vars map[string]string) detector.Environment {
	return detector.Environment{
		IsTerminal: tty,
		Getenv:     func(k string) string { return vars[k] },
	}
}

func TestEnvironment_Detect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  detector.Environment
		want detector.OutputMode
	}{
		{name: "terminal", env: env(true, nil), want: detector.ModeTUI},
		{name: "pipe", env: env(false, nil), want: detector.ModeLinear},
		{name: "CI=true", env: env(true, map[string]string{"CI": "true"}), want: detector.ModeLinear},
		{name: "CI=1", env: env(true, map[string]string{"CI": "1"}), want: detector.ModeLinear},
		{name: "CI=false", env: env(true, map[string]string{"CI": "false"}), want: detector.ModeTUI},
		{name: "nil getenv", env: detector.Environment{IsTerminal: true}, want: detector.ModeTUI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.env.Detect())
		})
	}
}

func TestResolveMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		flag     string
		detected detector.OutputMode
		want     detector.OutputMode
	}{
		{flag: "tui", detected: detector.ModeLinear, want: detector.ModeTUI},
		{flag: "linear", detected: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "ci", detected: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "auto", detected: detector.ModeTUI, want: detector.ModeTUI},
		{flag: "", detected: detector.ModeLinear, want: detector.ModeLinear},
		{flag: "bogus", detected: detector.ModeLinear, want: detector.ModeLinear},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
