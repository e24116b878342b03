package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/solartime/lmt-go/pkg/offset"
	"github.com/solartime/lmt-go/pkg/timezone"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// BinaryExt is the file extension for CBOR snapshots.
const BinaryExt = ".lmtz"

// snapEncMode is the CBOR encoder mode for snapshots, configured for
// deterministic encoding.
var snapEncMode cbor.EncMode

// snapDecMode is the CBOR decoder mode for snapshots.
var snapDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}
	snapEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}
	snapDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// Snapshot is the persisted form of a registry's alias table.
type Snapshot struct {
	// Version is the snapshot file format version.
	Version int `json:"version" cbor:"1,keyasint"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `json:"saved_at" cbor:"2,keyasint"`

	// Aliases maps alias names to canonically encoded offsets.
	Aliases map[string]string `json:"aliases,omitempty" cbor:"3,keyasint,omitempty"`
}

// Capture builds a snapshot of the registry's current alias table.
func Capture(reg *timezone.Registry) *Snapshot {
	aliases := make(map[string]string)
	for _, name := range reg.Names() {
		if off, ok := reg.Lookup(name); ok {
			aliases[name] = off.String()
		}
	}
	return &Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now(),
		Aliases: aliases,
	}
}

// Restore registers every snapshot alias into the given registry.
func (s *Snapshot) Restore(reg *timezone.Registry) error {
	for name, encoded := range s.Aliases {
		off, err := offset.Parse(encoded)
		if err != nil {
			return fmt.Errorf("alias %q: %w", name, err)
		}
		if err := reg.Register(name, off); err != nil {
			return fmt.Errorf("alias %q: %w", name, err)
		}
	}
	return nil
}

// Store manages persistence of registry snapshots to a single file.
// The format is chosen by the path's extension: BinaryExt selects CBOR,
// anything else JSON.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a snapshot store for the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save captures the registry and writes the snapshot to disk.
// The write goes through a temp file and rename so a crash never leaves
// a half-written snapshot behind.
func (s *Store) Save(reg *timezone.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Capture(reg)

	var data []byte
	var err error
	if s.binary() {
		data, err = snapEncMode.Marshal(snap)
	} else {
		data, err = json.MarshalIndent(snap, "", "  ")
	}
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reads the snapshot from disk.
// Returns an empty snapshot if the file doesn't exist.
func (s *Store) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Snapshot{Version: SnapshotVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	if s.binary() {
		err = snapDecMode.Unmarshal(data, snap)
	} else {
		err = json.Unmarshal(data, snap)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("%s: unsupported snapshot version %d", s.path, snap.Version)
	}
	return snap, nil
}

func (s *Store) binary() bool {
	return strings.EqualFold(filepath.Ext(s.path), BinaryExt)
}
