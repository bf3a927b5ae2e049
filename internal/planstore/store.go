package planstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/kostyll/HudlFfmpeg/internal/config"
)

// ErrLocked is returned by Open when another process holds the store.
var ErrLocked = errors.New("plan store is locked by another process")

// Store manages plan persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	sqliteBusyCode   = 5
	busyAttempts     = 5
	busyBackoffStart = 10 * time.Millisecond
	busyBackoffLimit = 200 * time.Millisecond
)

// connPragmas are applied by the driver to every pooled connection.
var connPragmas = []string{"journal_mode(WAL)", "busy_timeout(5000)"}

// Open creates or connects to the plan database configured in cfg. The store
// holds an exclusive lock file next to the database until Close.
func Open(cfg *config.Config) (*Store, error) {
	switch {
	case cfg == nil:
		return nil, errors.New("plan store requires config")
	case !cfg.Store.Enabled:
		return nil, errors.New("plan store is disabled in config")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	store := &Store{path: cfg.Store.Path, lock: flock.New(cfg.Store.Path + ".lock")}
	locked, err := store.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, store.path)
	}

	if store.db, err = sql.Open("sqlite", dataSourceName(store.path)); err != nil {
		_ = store.lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func dataSourceName(path string) string {
	q := make(url.Values)
	for _, pragma := range connPragmas {
		q.Add("_pragma", pragma)
	}
	return "file:" + path + "?" + q.Encode()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the database and releases the file lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release store lock: %w", unlockErr)
		}
	}
	return err
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

// retryOnBusy reruns op while SQLite reports the database as busy, doubling
// the pause between attempts up to busyBackoffLimit.
func retryOnBusy(ctx context.Context, op func() error) error {
	pause := busyBackoffStart
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || !isSQLiteBusy(err) || attempt == busyAttempts {
			return err
		}
		timer := time.NewTimer(pause)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
		pause = min(pause*2, busyBackoffLimit)
	}
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx = ensureContext(ctx)
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}
