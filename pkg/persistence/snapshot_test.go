package persistence

import (
	"path/filepath"
	"testing"

	"github.com/solartime/lmt-go/pkg/offset"
	"github.com/solartime/lmt-go/pkg/timezone"
)

func populatedRegistry(t *testing.T) *timezone.Registry {
	t.Helper()
	reg := timezone.NewRegistry()
	for name, sec := range map[string]int{
		"Berlin": 3218,
		"Suva":   42826,
		"Nome":   -39685,
	} {
		if err := reg.Register(name, offset.Offset(sec)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}
	return reg
}

func assertRestored(t *testing.T, snap *Snapshot) {
	t.Helper()

	restored := timezone.NewRegistry()
	if err := snap.Restore(restored); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if restored.Len() != 3 {
		t.Fatalf("restored registry has %d aliases, want 3", restored.Len())
	}
	for name, want := range map[string]int{
		"Berlin": 3218,
		"Suva":   42826,
		"Nome":   -39685,
	} {
		off, ok := restored.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) not found", name)
			continue
		}
		if off.Seconds() != want {
			t.Errorf("Lookup(%q) = %d seconds, want %d", name, off.Seconds(), want)
		}
	}
}

func TestStore_JSONRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "aliases.json"))

	if err := store.Save(populatedRegistry(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Version != SnapshotVersion {
		t.Errorf("Version = %d, want %d", snap.Version, SnapshotVersion)
	}
	if snap.SavedAt.IsZero() {
		t.Error("SavedAt is zero")
	}
	assertRestored(t, snap)
}

func TestStore_CBORRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "aliases"+BinaryExt))

	if err := store.Save(populatedRegistry(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertRestored(t, snap)
}

func TestStore_LoadNonExistent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Aliases) != 0 {
		t.Errorf("Aliases = %v, want empty", snap.Aliases)
	}
}

func TestStore_CreatesParentDirs(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "deep", "aliases.json"))

	if err := store.Save(timezone.NewRegistry()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestSnapshot_RestoreBadOffset(t *testing.T) {
	snap := &Snapshot{
		Version: SnapshotVersion,
		Aliases: map[string]string{"Broken": "12:00"},
	}

	if err := snap.Restore(timezone.NewRegistry()); err == nil {
		t.Fatal("Restore() expected error for malformed offset")
	}
}
