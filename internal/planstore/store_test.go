package planstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/fault"
	"github.com/kostyll/HudlFfmpeg/internal/filter"
	"github.com/kostyll/HudlFfmpeg/internal/planstore"
	"github.com/kostyll/HudlFfmpeg/internal/testsupport"
)

func samplePlan(t *testing.T) command.Plan {
	t.Helper()
	p := command.NewPipeline(command.WithIDGenerator(command.NewSequentialGenerator("s")))
	c := p.NewCommand()
	in, err := c.WithInputNoLoad("a.mp4")
	if err != nil {
		t.Fatalf("WithInputNoLoad: %v", err)
	}
	stage, err := c.WithStreamsFrom(in)
	if err != nil {
		t.Fatalf("WithStreamsFrom: %v", err)
	}
	chain, err := stage.Filter(filter.Scale{Width: 640, Height: 360})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if _, err := chain.MapTo("small.mp4"); err != nil {
		t.Fatalf("MapTo: %v", err)
	}
	return command.Snapshot(c)
}

func TestSaveAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	plan := samplePlan(t)
	record, err := store.Save(ctx, "thumbs", plan)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if record.ID == 0 || record.Status != planstore.StatusBuilt {
		t.Fatalf("unexpected record: %#v", record)
	}
	if record.Inputs != 1 || record.Filterchains != 1 || record.Outputs != 1 {
		t.Fatalf("unexpected counts: %#v", record)
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp")
	}

	fetched, err := store.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	decoded, err := fetched.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if decoded.CommandID != plan.CommandID || len(decoded.Filterchains) != 1 {
		t.Fatalf("snapshot did not round trip: %#v", decoded)
	}
	if decoded.Outputs[0].Receipts[0] != plan.Filterchains[0].Outputs[0] {
		t.Fatal("output receipts lost in storage")
	}
}

func TestSaveReplacesByName(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	first, err := store.Save(ctx, "clip", samplePlan(t))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(ctx, "clip", command.Plan{CommandID: "other"})
	if err != nil {
		t.Fatalf("Save again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same id, got %d and %d", first.ID, second.ID)
	}
	if second.CommandID != "other" || second.Inputs != 0 {
		t.Fatalf("record not replaced: %#v", second)
	}
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
}

func TestRecordFailureClassifiesErrors(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	invalid, err := store.RecordFailure(ctx, "broken", fault.Wrap(fault.ErrConfiguration, "apply filters", "arity", nil))
	if err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if invalid.Status != planstore.StatusInvalid || invalid.ErrorKind != "configuration" {
		t.Fatalf("unexpected record: %#v", invalid)
	}
	if _, err := invalid.Plan(); err == nil {
		t.Fatal("failed record should carry no snapshot")
	}

	failed, err := store.RecordFailure(ctx, "offline", fault.Wrap(fault.ErrProbe, "load metadata", "a.mp4", errors.New("exit 1")))
	if err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if failed.Status != planstore.StatusFailed || failed.ErrorKind != "probe" {
		t.Fatalf("unexpected record: %#v", failed)
	}

	unclassified, err := store.RecordFailure(ctx, "odd", errors.New("boom"))
	if err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if unclassified.Status != planstore.StatusFailed || unclassified.ErrorKind != "" {
		t.Fatalf("unexpected record: %#v", unclassified)
	}

	onlyInvalid, err := store.List(ctx, planstore.StatusInvalid)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(onlyInvalid) != 1 || onlyInvalid[0].Name != "broken" {
		t.Fatalf("unexpected filtered list: %#v", onlyInvalid)
	}

	if _, err := store.RecordFailure(ctx, "x", nil); err == nil {
		t.Fatal("expected error for nil failure")
	}
}

func TestRemoveAndNotFound(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	record, err := store.Save(ctx, "gone", samplePlan(t))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Remove(ctx, record.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove(ctx, record.ID); !errors.Is(err, planstore.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.GetByID(ctx, record.ID); !errors.Is(err, planstore.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.GetByName(ctx, "gone"); !errors.Is(err, planstore.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOpenHoldsExclusiveLock(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := planstore.Open(cfg); !errors.Is(err, planstore.ErrLocked) {
		t.Fatalf("expected lock error, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reopened, err := planstore.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = reopened.Close()
}

func TestOpenRejectsDisabledStore(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStoreDisabled())
	if _, err := planstore.Open(cfg); err == nil {
		t.Fatal("expected error for disabled store")
	}
}

func TestSaveRequiresName(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if _, err := store.Save(context.Background(), "  ", command.Plan{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}
