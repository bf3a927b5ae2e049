package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kostyll/HudlFfmpeg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory. The plan
// store lives under the state directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Store.Path = filepath.Join(base, "state", "plans.db")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStoreDisabled turns the plan store off.
func WithStoreDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Store.Enabled = false
	}
}

// WithLogFormat overrides the log format on the test config.
func WithLogFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = format
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, ffprobe and ffmpeg are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffprobe", "ffmpeg"}
		}
		binDir := b.binDir()
		for _, name := range names {
			writeExecutable(b.t, filepath.Join(binDir, name), "#!/bin/sh\nexit 0\n")
		}
		b.prependPath(binDir)
	}
}

// WithFakeFFprobe installs an ffprobe stub that prints output for every
// locator and points the config at it.
func WithFakeFFprobe(output string) ConfigOption {
	return func(b *configBuilder) {
		target := filepath.Join(b.binDir(), "ffprobe")
		writeExecutable(b.t, target, "#!/bin/sh\ncat <<'JSON'\n"+output+"\nJSON\n")
		b.cfg.FFmpeg.FFprobeBinary = target
	}
}

func (b *configBuilder) binDir() string {
	dir := filepath.Join(b.baseDir, "bin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		b.t.Fatalf("mkdir bin dir: %v", err)
	}
	return dir
}

func (b *configBuilder) prependPath(dir string) {
	oldPath := os.Getenv("PATH")
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+oldPath); err != nil {
		b.t.Fatalf("set PATH: %v", err)
	}
	b.t.Cleanup(func() {
		_ = os.Setenv("PATH", oldPath)
	})
}

func writeExecutable(t testing.TB, path, script string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
}
