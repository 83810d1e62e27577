package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"csat/internal/models/db_models"
	"csat/pkg/utils"
)

// FileStore keeps the whole collection under one durable key: a JSON file
// holding the serialized array. Every mutation is a read-modify-write of the
// full collection.
//
// Seeding happens only when the key is absent (the file does not exist).
// After ClearAll the key holds an empty array, so a cleared store stays
// empty instead of re-seeding.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) SupportsClear() bool { return true }

// load reads the collection, seeding first if the file has never been
// written. Callers must hold s.mu.
func (s *FileStore) load() ([]db_models.SurveyRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		seed := SeedRecords()
		if err := s.persist(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", utils.ErrConnection, s.path, err)
	}

	var records []db_models.SurveyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s is not a survey collection: %v", utils.ErrConnection, s.path, err)
	}
	return records, nil
}

// persist writes the full collection atomically via a temp-file rename so a
// failed write never leaves a truncated collection behind. Callers must hold
// s.mu.
func (s *FileStore) persist(records []db_models.SurveyRecord) error {
	if records == nil {
		records = []db_models.SurveyRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".surveys-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	return nil
}

func (s *FileStore) ListAll(ctx context.Context) ([]db_models.SurveyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) Insert(ctx context.Context, record *db_models.SurveyRecord) (*db_models.SurveyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	records = append(records, *record)
	if err := s.persist(records); err != nil {
		return nil, err
	}
	stored := *record
	return &stored, nil
}

func (s *FileStore) RemoveByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return false, err
	}

	kept := records[:0]
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist([]db_models.SurveyRecord{})
}

func (s *FileStore) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return false, err
	}
	needle := strings.TrimSpace(ticketID)
	for _, r := range records {
		if strings.TrimSpace(r.TicketID) == needle {
			return true, nil
		}
	}
	return false, nil
}
