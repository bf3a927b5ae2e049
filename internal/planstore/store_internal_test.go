package planstore

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestDataSourceNameCarriesPragmas(t *testing.T) {
	dsn := dataSourceName("/tmp/plans.db")
	path, query, ok := strings.Cut(dsn, "?")
	if !ok || path != "file:/tmp/plans.db" {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	got := values["_pragma"]
	if len(got) != 2 || got[0] != "journal_mode(WAL)" || got[1] != "busy_timeout(5000)" {
		t.Fatalf("unexpected pragmas %v", got)
	}
}

func TestRetryOnBusyStopsOnOtherErrors(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := retryOnBusy(context.Background(), func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 1 {
		t.Fatalf("expected single call returning boom, got %d calls, err %v", calls, err)
	}
}

func TestRetryOnBusyGivesUpAfterLimit(t *testing.T) {
	calls := 0
	err := retryOnBusy(context.Background(), func() error {
		calls++
		return errors.New("database is locked (SQLITE_BUSY)")
	})
	if err == nil || calls != busyAttempts {
		t.Fatalf("expected %d attempts ending in error, got %d calls, err %v", busyAttempts, calls, err)
	}
}

func TestRetryOnBusyHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := retryOnBusy(ctx, func() error {
		return errors.New("SQLITE_BUSY")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
