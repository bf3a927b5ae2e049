package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeStub(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	writeStub(t, present)
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Optional", Command: "also-not-present", Optional: true},
		{Name: "Empty"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[3].Detail != "command not configured" {
		t.Fatalf("unexpected detail for empty command: %q", results[3].Detail)
	}

	missing := MissingRequired(results)
	if len(missing) != 2 || missing[0].Name != "Missing" || missing[1].Name != "Empty" {
		t.Fatalf("unexpected missing list: %#v", missing)
	}
}

func TestRequirementCheckResolvesPathLookup(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts are POSIX only")
	}
	binDir := t.TempDir()
	writeStub(t, filepath.Join(binDir, "ffprobe"))
	t.Setenv("PATH", binDir)

	status := Requirement{Name: "FFprobe", Command: "  ffprobe ", Description: " probe "}.Check()
	if !status.Available {
		t.Fatalf("expected ffprobe on PATH, got %#v", status)
	}
	if status.Command != filepath.Join(binDir, "ffprobe") {
		t.Fatalf("expected resolved path, got %q", status.Command)
	}
	if status.Description != "probe" {
		t.Fatalf("expected trimmed description, got %q", status.Description)
	}
}

func TestResolveFFprobePrefersConfigured(t *testing.T) {
	if got := ResolveFFprobe("/opt/ff/bin/ffprobe", "ffmpeg"); got != "/opt/ff/bin/ffprobe" {
		t.Fatalf("expected configured binary, got %q", got)
	}
}

func TestResolveFFprobeUsesFFmpegSibling(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts are POSIX only")
	}
	dir := t.TempDir()
	ffmpeg := filepath.Join(dir, "ffmpeg")
	ffprobe := filepath.Join(dir, "ffprobe")
	writeStub(t, ffmpeg)
	writeStub(t, ffprobe)

	if got := ResolveFFprobe("ffprobe", ffmpeg); got != ffprobe {
		t.Fatalf("expected sibling %q, got %q", ffprobe, got)
	}
}

func TestResolveFFprobeFallsBackToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts are POSIX only")
	}
	binDir := t.TempDir()
	ffprobe := filepath.Join(binDir, "ffprobe")
	writeStub(t, ffprobe)
	t.Setenv("PATH", binDir)

	if got := ResolveFFprobe("", "not-installed-ffmpeg"); got != ffprobe {
		t.Fatalf("expected PATH lookup %q, got %q", ffprobe, got)
	}
}
