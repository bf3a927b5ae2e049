package deps

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ResolveFFprobe picks the ffprobe binary to run. An explicitly configured
// binary other than the bare default wins. Otherwise an ffprobe sitting next
// to the resolved ffmpeg is preferred, so both tools come from the same
// build, before falling back to PATH lookup.
func ResolveFFprobe(configured, ffmpegCommand string) string {
	configured = strings.TrimSpace(configured)
	if configured != "" && configured != "ffprobe" {
		return configured
	}
	if ffmpeg := strings.TrimSpace(ffmpegCommand); ffmpeg != "" {
		if resolved, err := exec.LookPath(ffmpeg); err == nil {
			candidate := siblingBinary(resolved, "ffprobe")
			if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
				return candidate
			}
		}
	}
	if resolved, err := exec.LookPath("ffprobe"); err == nil {
		return resolved
	}
	return "ffprobe"
}

func siblingBinary(path, name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(path), name)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
