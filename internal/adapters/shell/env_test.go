package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/adapters/shell"
)

func TestResolveEnvironment(t *testing.T) {
	t.Parallel()

	sys := []string{"PATH=/usr/bin", "HOME=/home/u", "SECRET=x", "NODE_OPTIONS=--max-old-space-size=4096"}
	extra := []string{"PATH=/project/node_modules/.bin", "FORCE_COLOR=0"}

	got := shell.ResolveEnvironment(sys, extra)

	assert.Equal(t, []string{
		"PATH=/project/node_modules/.bin:/usr/bin",
		"HOME=/home/u",
		"NODE_OPTIONS=--max-old-space-size=4096",
		"FORCE_COLOR=0",
	}, got)
}
