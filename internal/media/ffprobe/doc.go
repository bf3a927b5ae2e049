// Package ffprobe runs ffprobe against a media locator and decodes its
// -show_format -show_streams JSON into Result.
//
// Prober satisfies resource.Prober, so the command graph never imports this
// package directly. Tests swap the process runner for canned output.
package ffprobe
