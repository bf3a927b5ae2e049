// Package resource provides immutable handles to named media artefacts.
//
// A Resource is identified by its locator (a file path or stream URL). Creating
// one performs no I/O; metadata is attached explicitly through LoadMetadata,
// which returns an enriched copy and leaves the original untouched.
package resource

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/media/ffprobe"
)

// Prober inspects a locator and returns its media metadata.
type Prober interface {
	Probe(ctx context.Context, locator string) (ffprobe.Result, error)
}

// Resource is a handle to a media source or destination.
type Resource struct {
	locator  string
	metadata *ffprobe.Result
}

// From constructs a handle for locator without touching the filesystem.
func From(locator string) (Resource, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return Resource{}, fault.Wrap(fault.ErrValidation, "resource from", "locator cannot be empty", nil)
	}
	return Resource{locator: locator}, nil
}

// Locator returns the resource locator as supplied.
func (r Resource) Locator() string { return r.locator }

// Name returns the final path element of the locator.
func (r Resource) Name() string {
	if r.locator == "" {
		return ""
	}
	return filepath.Base(r.locator)
}

// IsZero reports whether the resource was never created through From.
func (r Resource) IsZero() bool { return r.locator == "" }

// Same reports whether two resources refer to the same locator.
func (r Resource) Same(other Resource) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return canonical(r.locator) == canonical(other.locator)
}

// HasMetadata reports whether probe results are attached.
func (r Resource) HasMetadata() bool { return r.metadata != nil }

// Metadata returns a copy of the attached probe results.
func (r Resource) Metadata() (ffprobe.Result, bool) {
	if r.metadata == nil {
		return ffprobe.Result{}, false
	}
	return *r.metadata, true
}

// Duration returns the probed container duration, or 0 without metadata.
func (r Resource) Duration() time.Duration {
	if r.metadata == nil {
		return 0
	}
	return r.metadata.Duration()
}

// VideoStreams returns the probed video streams.
func (r Resource) VideoStreams() []ffprobe.Stream {
	if r.metadata == nil {
		return nil
	}
	return r.metadata.StreamsOfType("video")
}

// AudioStreams returns the probed audio streams.
func (r Resource) AudioStreams() []ffprobe.Stream {
	if r.metadata == nil {
		return nil
	}
	return r.metadata.StreamsOfType("audio")
}

// LoadMetadata probes the resource synchronously. On failure the original
// resource is returned unchanged together with an error marked ErrProbe.
func (r Resource) LoadMetadata(ctx context.Context, prober Prober) (Resource, error) {
	if r.IsZero() {
		return r, fault.Wrap(fault.ErrValidation, "load metadata", "resource has no locator", nil)
	}
	if prober == nil {
		return r, fault.Wrap(fault.ErrProbe, "load metadata", "no prober configured for "+r.locator, nil)
	}
	result, err := prober.Probe(ctx, r.locator)
	if err != nil {
		return r, fault.Wrap(fault.ErrProbe, "load metadata", r.locator, err)
	}
	return Resource{locator: r.locator, metadata: &result}, nil
}

// WithMetadata returns a copy carrying result, for callers that probed elsewhere.
func (r Resource) WithMetadata(result ffprobe.Result) Resource {
	return Resource{locator: r.locator, metadata: &result}
}

func (r Resource) String() string { return r.locator }

func canonical(locator string) string {
	if strings.Contains(locator, "://") {
		return locator
	}
	return filepath.Clean(locator)
}
