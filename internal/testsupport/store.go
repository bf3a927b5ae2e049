package testsupport

import (
	"testing"

	"github.com/kostyll/HudlFfmpeg/internal/config"
	"github.com/kostyll/HudlFfmpeg/internal/planstore"
)

// MustOpenStore opens a planstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *planstore.Store {
	t.Helper()

	store, err := planstore.Open(cfg)
	if err != nil {
		t.Fatalf("planstore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
