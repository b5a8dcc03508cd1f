package unitindex

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.BeginRun()
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	if err := store.RecordFile(runID, "top.vhd", 100, 0); err != nil {
		t.Fatal(err)
	}

	clean, err := store.UpToDate("top.vhd", 100)
	if err != nil {
		t.Fatal(err)
	}
	if !clean {
		t.Error("unchanged clean file reported as stale")
	}

	clean, err = store.UpToDate("top.vhd", 200)
	if err != nil {
		t.Fatal(err)
	}
	if clean {
		t.Error("modified file reported as up to date")
	}
}

func TestFilesWithDiagnosticsAreAlwaysReanalyzed(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.BeginRun()
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordFile(runID, "broken.vhd", 100, 3); err != nil {
		t.Fatal(err)
	}

	clean, err := store.UpToDate("broken.vhd", 100)
	if err != nil {
		t.Fatal(err)
	}
	if clean {
		t.Error("file with diagnostics reported as up to date")
	}
}

func TestUnknownFileIsStale(t *testing.T) {
	store := openTestStore(t)
	clean, err := store.UpToDate("never-seen.vhd", 1)
	if err != nil {
		t.Fatal(err)
	}
	if clean {
		t.Error("unknown file reported as up to date")
	}
}

func TestRecordFileUpserts(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.BeginRun()
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordFile(runID, "top.vhd", 100, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordFile(runID, "top.vhd", 200, 0); err != nil {
		t.Fatal(err)
	}

	clean, err := store.UpToDate("top.vhd", 200)
	if err != nil {
		t.Fatal(err)
	}
	if !clean {
		t.Error("upserted file not reported as up to date")
	}
}
