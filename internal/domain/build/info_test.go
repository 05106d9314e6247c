package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shortcutctl/internal/domain/build"
)

func TestInfo_String(t *testing.T) {
	info := build.Info{Version: "v0.3.0", Commit: "abc123", BuildDate: "2026-10-19", GoVersion: "go1.25.3"}
	assert.Equal(t, "v0.3.0 (commit abc123, built 2026-10-19, go1.25.3)", info.String())
}
