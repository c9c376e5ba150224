package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchTimeout = 2 * time.Second

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

// waitForChanges polls Drain until something arrives or the timeout passes.
func waitForChanges(w *Watcher, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if got := w.Drain(); len(got) > 0 {
			return got
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// settle waits long enough for any pending burst to be reported.
func settle(w *Watcher) []string {
	time.Sleep(3 * watchDebounce)
	return w.Drain()
}

func TestWatcherReportsPrefabWrites(t *testing.T) {
	w, dir := newTestWatcher(t)
	level := filepath.Join(dir, "level.yaml")
	notes := filepath.Join(dir, "notes.txt")

	writeFile(t, notes, "ignored")
	writeFile(t, level, "name: test\n")

	got := append(waitForChanges(w, watchTimeout), settle(w)...)
	if len(got) == 0 {
		t.Fatal("expected level.yaml to be reported")
	}
	for _, name := range got {
		if name != level {
			t.Fatalf("expected only %s, got %v", level, got)
		}
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	w, dir := newTestWatcher(t)
	level := filepath.Join(dir, "level.yaml")

	for i := 0; i < 5; i++ {
		writeFile(t, level, "name: test\n")
		time.Sleep(watchDebounce / 5)
	}

	got := append(waitForChanges(w, watchTimeout), settle(w)...)
	if len(got) != 1 || got[0] != level {
		t.Fatalf("expected one report for the burst, got %v", got)
	}
}

func TestWatcherKeepsWriteAfterReport(t *testing.T) {
	w, dir := newTestWatcher(t)
	level := filepath.Join(dir, "level.yaml")

	writeFile(t, level, "name: first\n")
	if got := waitForChanges(w, watchTimeout); len(got) == 0 {
		t.Fatal("expected the first write to be reported")
	}

	// lands well inside watchDebounce of the first report
	writeFile(t, level, "name: second\n")
	if got := waitForChanges(w, watchTimeout); len(got) == 0 || got[0] != level {
		t.Fatalf("expected the second write to be reported, got %v", got)
	}
	body, err := os.ReadFile(level)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "name: second\n" {
		t.Fatalf("expected the last write on disk, got %q", body)
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, _ := newTestWatcher(t)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if errs := w.DrainErrors(); len(errs) != 0 {
		t.Fatalf("expected no watch errors, got %v", errs)
	}
}

func TestIsPrefabFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"prefabs/level.yaml", true},
		{"prefabs/critters.YML", true},
		{"prefabs/scripts/unlock.tengo", true},
		{"prefabs/level.yaml.swp", false},
		{"prefabs/notes.txt", false},
		{"prefabs/scripts", false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := isPrefabFile(tc.path); got != tc.want {
				t.Fatalf("isPrefabFile(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
