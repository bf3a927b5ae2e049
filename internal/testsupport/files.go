package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WritePlan writes a plan document into the config's base directory and
// returns its path.
func WritePlan(t testing.TB, dir, name, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, name), content)
}

// ProbeJSON is a minimal ffprobe document with one video and one audio stream.
const ProbeJSON = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080, "avg_frame_rate": "30/1"},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "sample_rate": "48000", "channels": 2}
  ],
  "format": {"filename": "clip.mp4", "nb_streams": 2, "duration": "42.5", "size": "1048576", "bit_rate": "197000", "format_name": "mov,mp4,m4a,3gp,3g2,mj2"}
}`
