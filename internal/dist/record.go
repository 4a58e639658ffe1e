package dist

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Record format changes
const recordSchemaVersion uint16 = 1

// FileDigest is one assembled file with its content hash.
type FileDigest struct {
	Path   string
	SHA256 []byte
}

// Record captures what one assembly run produced. Two runs over identical
// inputs yield identical records, which is how idempotency is checked.
type Record struct {
	Schema uint16
	Count  uint32
	Files  []FileDigest
}

func (r *Record) finalize() {
	count, err := safecast.Conv[uint32](len(r.Files))
	if err != nil {
		count = ^uint32(0)
	}
	r.Count = count
}

// Equal reports whether two records describe byte-identical output trees.
func (r Record) Equal(other Record) bool {
	if r.Schema != other.Schema || r.Count != other.Count || len(r.Files) != len(other.Files) {
		return false
	}
	for i := range r.Files {
		if r.Files[i].Path != other.Files[i].Path {
			return false
		}
		if !bytes.Equal(r.Files[i].SHA256, other.Files[i].SHA256) {
			return false
		}
	}
	return true
}

// RecordStore persists assembly records outside the project tree so the
// dist directory itself stays byte-identical across runs.
type RecordStore struct {
	dir string
}

// OpenRecordStore initializes a store at the standard cache location.
func OpenRecordStore(app string) (*RecordStore, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RecordStore{dir: dir}, nil
}

func (s *RecordStore) pathFor(projectRoot string) string {
	sum := sha256.Sum256([]byte(projectRoot))
	// подкаталог "dist" — для удобства очистки
	return filepath.Join(s.dir, "dist", hex.EncodeToString(sum[:])+".mp")
}

// Put serializes and writes the record for a project root.
func (s *RecordStore) Put(projectRoot string, record Record) error {
	if s == nil {
		return nil
	}
	p := s.pathFor(projectRoot)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&record); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads the stored record for a project root. The second result is
// false when no record exists or its schema is stale.
func (s *RecordStore) Get(projectRoot string) (Record, bool, error) {
	if s == nil {
		return Record{}, false, nil
	}
	p := s.pathFor(projectRoot)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	defer func() { _ = f.Close() }()

	var record Record
	if err := msgpack.NewDecoder(f).Decode(&record); err != nil {
		return Record{}, false, fmt.Errorf("failed to decode %q: %w", p, err)
	}
	if record.Schema != recordSchemaVersion {
		return Record{}, false, nil
	}
	return record, true, nil
}
