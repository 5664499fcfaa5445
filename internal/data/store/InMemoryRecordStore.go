package store

import (
	"context"
	"sync"

	"github.com/nkondratev/doctasks/pkg/logger_i"
)

type InMemoryRecordStore struct {
	mutex   sync.RWMutex
	records map[string]ProcessingRecord
	logger  *logger_i.Logger
}

func InitInMemoryRecordStore() *InMemoryRecordStore {
	return &InMemoryRecordStore{
		records: make(map[string]ProcessingRecord),
		logger:  logger_i.NewLogger("InMem RecordStore"),
	}
}

func (s *InMemoryRecordStore) SaveRecord(ctx context.Context, record ProcessingRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.records[record.Id] = record
	s.logger.Debug("Saved processing record", "recordId", record.Id)
	return nil
}

func (s *InMemoryRecordStore) GetRecord(ctx context.Context, id string) (ProcessingRecord, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	record, found := s.records[id]
	return record, found
}

func (s *InMemoryRecordStore) DeleteRecord(ctx context.Context, id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.records, id)
}
