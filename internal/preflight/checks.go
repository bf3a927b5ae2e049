package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"github.com/kostyll/HudlFfmpeg/internal/config"
	"github.com/kostyll/HudlFfmpeg/internal/deps"
)

// CheckDirectoryAccess verifies that path is a directory the current user can
// list, read and write.
func CheckDirectoryAccess(name, path string) Result {
	result := Result{Name: name, Detail: path + " (read/write ok)"}
	fail := func(reason string) Result {
		result.Detail = fmt.Sprintf("%s (error: %s)", path, reason)
		return result
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail("does not exist")
	case err != nil:
		return fail("stat: " + err.Error())
	case !info.IsDir():
		return fail("is not a directory")
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fail("insufficient permissions: " + err.Error())
	}
	result.Passed = true
	return result
}

// CheckSystemDeps evaluates the external binaries for cfg. ffprobe is needed
// for probing inputs; ffmpeg is optional since plans are never executed here.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "FFprobe",
			Command:     deps.ResolveFFprobe(cfg.FFprobeBinary(), cfg.FFmpegBinary()),
			Description: "Required for input metadata probing",
		},
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "Runs built plans",
			Optional:    true,
		},
	}
	return deps.CheckBinaries(requirements)
}
