package main

import (
	"path/filepath"
	"testing"

	"github.com/kostyll/HudlFfmpeg/internal/preflight"
)

func TestDepsReportsStubbedBinaries(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "== Dependencies ==")
	requireContains(t, out, "FFprobe:")
	requireContains(t, out, "[OK]")
}

func TestDepsFailsWhenFFprobeMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.FFmpeg.FFprobeBinary = filepath.Join(env.baseDir, "nope", "ffprobe")
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err == nil {
		t.Fatal("expected missing ffprobe to fail")
	}
	requireContains(t, out, "[ERROR]")
}

func TestCheckStatusKind(t *testing.T) {
	tests := []struct {
		result preflight.Result
		want   statusKind
	}{
		{preflight.Result{Passed: true}, statusOK},
		{preflight.Result{Optional: true}, statusWarn},
		{preflight.Result{}, statusError},
	}
	for _, tc := range tests {
		if got := checkStatusKind(tc.result); got != tc.want {
			t.Fatalf("checkStatusKind(%+v) = %v, want %v", tc.result, got, tc.want)
		}
	}
}
