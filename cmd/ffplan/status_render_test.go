package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("FFprobe", statusError, "binary \"ffprobe\" not found", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "FFprobe:", "[ERROR] binary \"ffprobe\" not found")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("FFprobe", statusOK, "/usr/bin/ffprobe", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeRejectsBuffers(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := tableSpec{
		Title:   "Filterchains",
		Headers: []string{"Chain", "Filters"},
		Rows:    [][]string{{"scaled"}},
	}.render()
	if !strings.Contains(out, "Filterchains") {
		t.Fatalf("expected title, got %q", out)
	}
	if !strings.Contains(strings.ToUpper(out), "FILTERS") {
		t.Fatalf("expected headers, got %q", out)
	}
	if !strings.Contains(out, "scaled") {
		t.Fatalf("expected row content, got %q", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestRenderSectionHeader(t *testing.T) {
	if got := renderSectionHeader("  reel ", false); got != "== reel ==" {
		t.Fatalf("unexpected header %q", got)
	}
	if got := renderSectionHeader("reel", true); !strings.HasPrefix(got, ansiCyan) {
		t.Fatalf("expected colored header, got %q", got)
	}
}
