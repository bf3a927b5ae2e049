package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
}

// FFmpeg contains the external tool locations used for probing.
type FFmpeg struct {
	FFprobeBinary       string `toml:"ffprobe_binary"`
	FFmpegBinary        string `toml:"ffmpeg_binary"`
	ProbeTimeoutSeconds int    `toml:"probe_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Store contains configuration for the plan store.
type Store struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // Default: <state_dir>/plans.db
}

// Config encapsulates all configuration values for ffplan.
//
// Configuration sections by subsystem:
//   - Paths: state and log directories
//   - FFmpeg: ffprobe/ffmpeg binaries and probe timeout
//   - Logging: log format and level
//   - Store: SQLite plan store
type Config struct {
	Paths   Paths   `toml:"paths"`
	FFmpeg  FFmpeg  `toml:"ffmpeg"`
	Logging Logging `toml:"logging"`
	Store   Store   `toml:"store"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path that was consulted, and whether a file existed there. A
// missing file yields defaults. The returned config has all path fields
// expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// resolveConfigPath honours an explicit path even when the file is absent.
// Otherwise it tries the user config and then ./ffplan.toml, reporting the
// user config location when neither exists.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		exists, err := isRegularFile(expanded)
		if err != nil {
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, exists, nil
	}

	userPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("ffplan.toml")
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if ok, _ := isRegularFile(candidate); ok {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	return !info.IsDir(), nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if c.Store.Enabled {
		if dir := filepath.Dir(c.Store.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create store directory %q: %w", dir, err)
			}
		}
	}
	return nil
}

// FFprobeBinary returns the ffprobe executable used for metadata probing.
func (c *Config) FFprobeBinary() string {
	if c == nil || strings.TrimSpace(c.FFmpeg.FFprobeBinary) == "" {
		return defaultFFprobeBinary
	}
	return c.FFmpeg.FFprobeBinary
}

// FFmpegBinary returns the ffmpeg executable plans are compiled for.
func (c *Config) FFmpegBinary() string {
	if c == nil || strings.TrimSpace(c.FFmpeg.FFmpegBinary) == "" {
		return defaultFFmpegBinary
	}
	return c.FFmpeg.FFmpegBinary
}

// ProbeTimeout returns the per-probe deadline.
func (c *Config) ProbeTimeout() time.Duration {
	if c == nil || c.FFmpeg.ProbeTimeoutSeconds <= 0 {
		return time.Duration(defaultProbeTimeoutSeconds) * time.Second
	}
	return time.Duration(c.FFmpeg.ProbeTimeoutSeconds) * time.Second
}

// ExpandPath resolves a leading ~ against the user's home directory and
// returns an absolute, cleaned path. The empty string is returned unchanged.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") || strings.HasPrefix(pathValue, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimLeft(pathValue[1:], `/\`))
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
