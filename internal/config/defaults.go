package config

const (
	defaultConfigPath          = "~/.config/ffplan/config.toml"
	defaultStateDir            = "~/.local/share/ffplan"
	defaultStoreFile           = "plans.db"
	defaultFFprobeBinary       = "ffprobe"
	defaultFFmpegBinary        = "ffmpeg"
	defaultProbeTimeoutSeconds = 30
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults. LogDir is
// left empty so it follows StateDir unless set explicitly.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		FFmpeg: FFmpeg{
			FFprobeBinary:       defaultFFprobeBinary,
			FFmpegBinary:        defaultFFmpegBinary,
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Store: Store{
			Enabled: true,
		},
	}
}
