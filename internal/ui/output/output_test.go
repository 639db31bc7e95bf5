package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/ui/output"
)

func TestMode_Profile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.Detect.Profile())
	assert.Equal(t, termenv.Ascii, output.ANSI.Profile())

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ANSI.Profile())
	p := output.Detect.Profile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew_DefaultsToStderr(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestNewWithMode(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		want    string
	}{
		{name: "ansi", noColor: "", want: "\x1b[31mred\x1b[0m"},
		{name: "no color", noColor: "1", want: "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			var buf bytes.Buffer
			out := output.NewWithMode(&buf, output.ANSI)

			_, _ = out.WriteString(out.String("red").Foreground(termenv.ANSIRed).String())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
