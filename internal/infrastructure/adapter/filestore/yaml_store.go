package filestore

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/persistence"
)

const documentVersion = 1

type yamlDocument struct {
	Version int          `yaml:"version"`
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Key  uint32 `yaml:"key"`
	Size int    `yaml:"size"`
	Data string `yaml:"data"`
}

// YAMLStore keeps every record in one YAML document. Each Save rewrites the
// document through a temporary file and a rename, so a crash leaves either
// the old or the new document on disk.
type YAMLStore struct {
	mu      sync.Mutex
	path    string
	records map[uint32][]byte
	closed  bool
}

var _ persistence.BlobStore = (*YAMLStore)(nil)

// Open reads the document at path. A missing file is an empty store.
func Open(path string) (*YAMLStore, error) {
	s := &YAMLStore{
		path:    path,
		records: make(map[uint32][]byte),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: read state file: %v", errs.ErrStoreUnavailable, err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse state file: %v", errs.ErrStoreUnavailable, err)
	}

	for _, rec := range doc.Records {
		data, err := hex.DecodeString(rec.Data)
		if err != nil || len(data) != rec.Size {
			// A damaged entry only loses that record
			continue
		}
		s.records[rec.Key] = data
	}
	return s, nil
}

// Save replaces the record under key and rewrites the document
func (s *YAMLStore) Save(_ context.Context, key uint32, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errs.NewPersistenceError("save", key, errs.ErrStoreUnavailable)
	}

	previous, had := s.records[key]
	s.records[key] = append([]byte(nil), data...)

	if err := s.write(); err != nil {
		if had {
			s.records[key] = previous
		} else {
			delete(s.records, key)
		}
		return errs.NewPersistenceError("save", key, fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err))
	}
	return nil
}

// Load returns the record under key if it has the expected size
func (s *YAMLStore) Load(_ context.Context, key uint32, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errs.NewPersistenceError("load", key, errs.ErrStoreUnavailable)
	}
	data, ok := s.records[key]
	if !ok {
		return nil, errs.NewPersistenceError("load", key, errs.ErrRecordNotFound)
	}
	if len(data) != size {
		return nil, errs.NewSizeMismatchError(key, size, len(data))
	}
	return append([]byte(nil), data...), nil
}

// Close stops accepting calls. Every Save is already on disk.
func (s *YAMLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *YAMLStore) write() error {
	doc := yamlDocument{Version: documentVersion}
	for key, data := range s.records {
		doc.Records = append(doc.Records, yamlRecord{Key: key, Size: len(data), Data: hex.EncodeToString(data)})
	}
	sort.Slice(doc.Records, func(i, j int) bool { return doc.Records[i].Key < doc.Records[j].Key })

	serialized, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(serialized); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
