package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"
)

// FileStore keeps each collection in <dataDir>/<collection>.json as an
// indented JSON array, byte-compatible with the shapes in
// internal/core/datamodel. Writes go through a temp file and rename so a
// crash mid-write never leaves a truncated collection behind.
type FileStore struct {
	dataDir string
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[Collection]*sync.Mutex
}

func NewFileStore(dataDir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		dataDir: dataDir,
		logger:  logger,
		locks:   make(map[Collection]*sync.Mutex),
	}
}

// lockFor returns the mutex guarding one collection's file.
func (s *FileStore) lockFor(kind Collection) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[kind]
	if !ok {
		l = &sync.Mutex{}
		s.locks[kind] = l
	}
	return l
}

func (s *FileStore) path(kind Collection) string {
	return filepath.Join(s.dataDir, string(kind)+".json")
}

func (s *FileStore) Load(kind Collection, out any) error {
	l := s.lockFor(kind)
	l.Lock()
	defer l.Unlock()

	resetSlice(out)

	data, err := os.ReadFile(s.path(kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", kind, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Malformed storage is recovered as an empty collection. The next
		// save overwrites the bad file; the warn log is the only trace.
		s.logger.Warn("corrupt collection treated as empty",
			"collection", kind,
			"path", s.path(kind),
			"error", err)
		resetSlice(out)
		return nil
	}

	return nil
}

func (s *FileStore) Save(kind Collection, records any) error {
	l := s.lockFor(kind)
	l.Lock()
	defer l.Unlock()

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}

	tmp, err := os.CreateTemp(s.dataDir, string(kind)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(kind)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", kind, err)
	}

	return nil
}

// Ping verifies the data directory is usable.
func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	return nil
}

// resetSlice empties *out so a failed or absent load never leaks records
// from a previous use of the same destination.
func resetSlice(out any) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return
	}
	v.Elem().Set(reflect.MakeSlice(v.Elem().Type(), 0, 0))
}
