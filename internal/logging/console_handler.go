package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one human readable line per record:
//
//	2026-01-02T15:04:05Z INFO command[reel]: message key=value ...
//
// The component and plan attributes are lifted into the prefix instead of
// being repeated as key=value pairs.
type consoleHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	groups    []string
	addSource bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &consoleHandler{mu: &sync.Mutex{}, writer: w, level: lvl, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	fields := make(pairs, 0, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		fields.add(h.groups, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		fields.add(h.groups, attr)
		return true
	})
	component := fields.take(FieldComponent)
	plan := fields.take(FieldPlan)

	var buf bytes.Buffer
	buf.Grow(128 + len(fields)*24)
	h.writePrefix(&buf, record, component, plan)
	for _, p := range fields {
		fmt.Fprintf(&buf, " %s=%s", p.key, render(p.value, true))
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) writePrefix(buf *bytes.Buffer, record slog.Record, component, plan string) {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	buf.WriteString(timestamp.UTC().Format(time.RFC3339))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	buf.WriteByte(' ')

	switch {
	case component != "" && plan != "":
		fmt.Fprintf(buf, "%s[%s]: ", component, plan)
	case component != "":
		buf.WriteString(component + ": ")
	case plan != "":
		fmt.Fprintf(buf, "[%s]: ", plan)
	}

	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}
	buf.WriteString(msg)

	if !h.addSource {
		return
	}
	if src := recordSource(record); src != nil {
		fmt.Fprintf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
	}
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		mu:        h.mu,
		writer:    h.writer,
		level:     h.level,
		addSource: h.addSource,
		attrs:     slices.Clone(h.attrs),
		groups:    slices.Clone(h.groups),
	}
}

type pair struct {
	key   string
	value slog.Value
}

// pairs is the flattened attribute list of one record. Group names become
// dotted key prefixes.
type pairs []pair

func (ps *pairs) add(groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Key == "" && attr.Value.Kind() != slog.KindGroup {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			groups = append(slices.Clone(groups), attr.Key)
		}
		for _, member := range attr.Value.Group() {
			ps.add(groups, member)
		}
		return
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	*ps = append(*ps, pair{key: key, value: attr.Value})
}

// take drops every pair named key and returns the first value, unquoted.
func (ps *pairs) take(key string) string {
	var found string
	kept := (*ps)[:0]
	for _, p := range *ps {
		if p.key != key {
			kept = append(kept, p)
			continue
		}
		if found == "" {
			found = render(p.value, false)
		}
	}
	*ps = kept
	return found
}

func render(v slog.Value, quote bool) string {
	var s string
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if quote && needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	return s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// recordSource mirrors slog.Record.Source (Go 1.25+) for older toolchains.
func recordSource(r slog.Record) *slog.Source {
	if r.PC == 0 {
		return nil
	}
	fs := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := fs.Next()
	return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}
}
