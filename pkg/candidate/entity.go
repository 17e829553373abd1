package candidate

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record: структурированное представление одного загруженного резюме.
// Создаётся один раз в Builder и дальше только читается.
type Record struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name,omitempty"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	Skills []string  `json:"skills"`
	// RawText is the extracted document text, kept verbatim for vector ranking.
	// Records stored before text retention may have it empty.
	RawText string `json:"-"`

	Filename   string    `json:"filename,omitempty"`
	MimeType   string    `json:"mimeType,omitempty"`
	Size       int64     `json:"sizeBytes,omitempty"`
	StorageURI string    `json:"storageUri,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Source describes the uploaded file a record was built from.
type Source struct {
	Filename string
	MimeType string
	Size     int64
}

// Repository: порт хранилища кандидатов.
type Repository interface {
	// Save persists a new record and returns its id.
	Save(ctx context.Context, r Record) (uuid.UUID, error)
	// ListAll returns a snapshot of every record in creation order.
	ListAll(ctx context.Context) ([]Record, error)
	// List returns a page of records, newest first.
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	// Delete removes a record and returns what was deleted.
	Delete(ctx context.Context, id uuid.UUID) (Record, error)
}
