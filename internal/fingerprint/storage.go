package fingerprint

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"readiness-backend/internal/shared/telemetry"
	"readiness-backend/internal/shared/util"
)

// Storage persists one device's fingerprint across sessions, mirroring the
// client-side storage slot a browser profile would use.
type Storage interface {
	Load() (Fingerprint, bool, error)
	Save(Fingerprint) error
}

// Generator produces a stable fingerprint for one storage context: the first
// call computes and persists, later calls return the stored value unchanged
// even if the probe has drifted. It never fails; storage errors degrade to a
// fresh computation.
type Generator struct {
	Storage Storage
}

// Get returns the device fingerprint for the given probe.
func (g *Generator) Get(probe Probe) Fingerprint {
	if g == nil || g.Storage == nil {
		return Compute(probe)
	}
	if stored, ok, err := g.Storage.Load(); err != nil {
		telemetry.Warn("fingerprint.load_failed", map[string]any{"error": err.Error()})
	} else if ok {
		return stored
	}

	fp := Compute(probe)
	if err := g.Storage.Save(fp); err != nil {
		telemetry.Warn("fingerprint.save_failed", map[string]any{"error": err.Error()})
	}
	return fp
}

// MemoryStorage holds a fingerprint in memory, for tests and embedded use.
type MemoryStorage struct {
	mu sync.Mutex
	fp *Fingerprint
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (Fingerprint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fp == nil {
		return Fingerprint{}, false, nil
	}
	return *s.fp, true, nil
}

func (s *MemoryStorage) Save(fp Fingerprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fp = &fp
	return nil
}

// FileStorage persists the fingerprint as a JSON file under Dir, keyed by a
// caller-chosen profile key.
type FileStorage struct {
	Dir string
	Key string
}

func (s *FileStorage) path() string {
	return filepath.Join(s.Dir, util.HashStorageKey(s.Key)+".json")
}

func (s *FileStorage) Load() (Fingerprint, bool, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Fingerprint{}, false, nil
		}
		return Fingerprint{}, false, err
	}
	var fp Fingerprint
	if err := json.Unmarshal(data, &fp); err != nil {
		return Fingerprint{}, false, err
	}
	if fp.ID == "" {
		return Fingerprint{}, false, nil
	}
	return fp, true, nil
}

func (s *FileStorage) Save(fp Fingerprint) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(fp)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}
