package store

import (
	"context"
	"encoding/json"

	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/internal/data/redisStore"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

type RedisRecordStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisRecordStore returns nil when redis is unreachable; main falls back
// to the in-memory store in that case.
func GetRedisRecordStore(ctx context.Context) *RedisRecordStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisRecordStore)
	if inner == nil {
		return nil
	}
	return &RedisRecordStore{
		store:  inner,
		logger: logger_i.NewLogger("RecordStore"),
	}
}

func (s *RedisRecordStore) SaveRecord(ctx context.Context, record ProcessingRecord) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "record Id", record.Id)
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, record.Id, data, config.RedisRecordStoreTTL)
	if err == nil {
		log.Debug("Saved processing record to Redis")
	}
	return err
}

func (s *RedisRecordStore) GetRecord(ctx context.Context, id string) (ProcessingRecord, bool) {
	var record ProcessingRecord
	val, err := s.store.Get(ctx, id)
	if s.store.IsNil(err) || err != nil {
		return record, false
	}

	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return record, false
	}
	return record, true
}

func (s *RedisRecordStore) DeleteRecord(ctx context.Context, id string) {
	if err := s.store.Del(ctx, id); err != nil {
		s.logger.Error("Error deleting record from Redis", "recordId", id)
		return
	}
	s.logger.Debug("Record deleted from Redis", "recordId", id)
}

// TestRecordStore is for miniredis-backed tests only.
func TestRecordStore(store *redisStore.Store) *RedisRecordStore {
	return &RedisRecordStore{
		store:  store,
		logger: logger_i.NewLogger("test record store"),
	}
}
