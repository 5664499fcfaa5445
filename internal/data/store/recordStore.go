package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RecordStatus string

const (
	RecordStatusProcessing RecordStatus = "processing"
	RecordStatusProcessed  RecordStatus = "processed"
)

// ProcessingRecord is the persisted trace of one document run. Persistence
// is a boundary concern: the pipeline saves records best effort and never
// fails because of the store.
type ProcessingRecord struct {
	Id           string       `json:"id"`
	DocumentName string       `json:"document_name"`
	Model        string       `json:"model"`
	Status       RecordStatus `json:"status"`
	Summary      string       `json:"summary,omitempty"`
	CreatedTime  time.Time    `json:"created_time"`
}

func NewProcessingRecord(documentName, model string) ProcessingRecord {
	return ProcessingRecord{
		Id:           uuid.New().String(),
		DocumentName: documentName,
		Model:        model,
		CreatedTime:  time.Now(),
	}
}

type RecordStore interface {
	SaveRecord(ctx context.Context, record ProcessingRecord) error
	GetRecord(ctx context.Context, id string) (ProcessingRecord, bool)
	DeleteRecord(ctx context.Context, id string)
}
