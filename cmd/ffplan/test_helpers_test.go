package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kostyll/HudlFfmpeg/internal/config"
	"github.com/kostyll/HudlFfmpeg/internal/planstore"
	"github.com/kostyll/HudlFfmpeg/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("FFPLAN_FFPROBE", "")

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithStubbedBinaries()}, opts...)...)

	configPath := filepath.Join(homeDir, ".config", "ffplan", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

// withStore opens the plan store for the duration of fn. The CLI takes the
// same lock, so the store must not stay open across runCLI calls.
func (e *cliTestEnv) withStore(t *testing.T, fn func(*planstore.Store)) {
	t.Helper()
	store, err := planstore.Open(e.cfg)
	if err != nil {
		t.Fatalf("planstore.Open: %v", err)
	}
	defer store.Close()
	fn(store)
}

func (e *cliTestEnv) writePlan(t *testing.T, name, content string) string {
	t.Helper()
	return testsupport.WritePlan(t, e.baseDir, name, content)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\nlog_dir = %q\n\n[ffmpeg]\nffprobe_binary = %q\nffmpeg_binary = %q\n\n[logging]\nformat = %q\nlevel = %q\n\n[store]\nenabled = %t\npath = %q\n",
		cfg.Paths.StateDir,
		cfg.Paths.LogDir,
		cfg.FFmpeg.FFprobeBinary,
		cfg.FFmpeg.FFmpegBinary,
		cfg.Logging.Format,
		"error",
		cfg.Store.Enabled,
		cfg.Store.Path,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
