package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/candidate"
)

// stored mirrors candidate.Record including the raw text the API hides.
type stored struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Skills     []string  `json:"skills"`
	RawText    string    `json:"rawText"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	StorageURI string    `json:"storageUri"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toStored(r candidate.Record) stored {
	return stored{
		ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Skills: r.Skills,
		RawText: r.RawText, Filename: r.Filename, MimeType: r.MimeType, Size: r.Size,
		StorageURI: r.StorageURI, CreatedAt: r.CreatedAt,
	}
}

func (s stored) record() candidate.Record {
	skills := s.Skills
	if skills == nil {
		skills = []string{}
	}
	return candidate.Record{
		ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone, Skills: skills,
		RawText: s.RawText, Filename: s.Filename, MimeType: s.MimeType, Size: s.Size,
		StorageURI: s.StorageURI, CreatedAt: s.CreatedAt.UTC(),
	}
}

// CandidateRepository implements candidate.Repository on a Backend.
type CandidateRepository struct {
	backend *Backend
}

var _ candidate.Repository = (*CandidateRepository)(nil)

func NewCandidateRepository(backend *Backend) *CandidateRepository {
	return &CandidateRepository{backend: backend}
}

// Save stores the record. Saving an existing id replaces the previous record.
func (r *CandidateRepository) Save(ctx context.Context, c candidate.Record) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	value, err := json.Marshal(toStored(c))
	if err != nil {
		return uuid.Nil, err
	}

	key := recordKey(c.CreatedAt, c.ID)
	err = r.backend.db.Update(func(tx *badger.Txn) error {
		prev, err := tx.Get(idKey(c.ID))
		switch {
		case err == nil:
			old, err := prev.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := tx.Delete(old); err != nil {
				return err
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Set(idKey(c.ID), key)
	})
	if err != nil {
		return uuid.Nil, err
	}
	r.backend.logger.Debug("candidate saved", zap.Stringer("id", c.ID))
	return c.ID, nil
}

func (r *CandidateRepository) ListAll(ctx context.Context) ([]candidate.Record, error) {
	return r.scan(ctx, false, 0, -1)
}

func (r *CandidateRepository) List(ctx context.Context, limit, offset int) ([]candidate.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return r.scan(ctx, true, offset, limit)
}

// scan walks data keys in creation order (or reversed), skipping offset
// entries and stopping after limit; limit < 0 means no bound.
func (r *CandidateRepository) scan(ctx context.Context, reverse bool, offset, limit int) ([]candidate.Record, error) {
	res := []candidate.Record{}
	err := r.backend.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix)
		opts.Reverse = reverse
		it := tx.NewIterator(opts)
		defer it.Close()

		if reverse {
			it.Seek(recordSeekLast())
		} else {
			it.Rewind()
		}
		skipped := 0
		for ; it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if skipped < offset {
				skipped++
				continue
			}
			if limit >= 0 && len(res) >= limit {
				break
			}
			rec, err := decode(it.Item())
			if err != nil {
				return err
			}
			res = append(res, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *CandidateRepository) Get(ctx context.Context, id uuid.UUID) (candidate.Record, error) {
	if err := ctx.Err(); err != nil {
		return candidate.Record{}, err
	}
	var rec candidate.Record
	err := r.backend.db.View(func(tx *badger.Txn) error {
		var err error
		rec, _, err = lookup(tx, id)
		return err
	})
	return rec, err
}

func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) (candidate.Record, error) {
	if err := ctx.Err(); err != nil {
		return candidate.Record{}, err
	}
	var rec candidate.Record
	err := r.backend.db.Update(func(tx *badger.Txn) error {
		var key []byte
		var err error
		rec, key, err = lookup(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Delete(idKey(id))
	})
	if err != nil {
		return candidate.Record{}, err
	}
	return rec, nil
}

func lookup(tx *badger.Txn, id uuid.UUID) (candidate.Record, []byte, error) {
	ref, err := tx.Get(idKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return candidate.Record{}, nil, apperrors.ErrNotFound
	}
	if err != nil {
		return candidate.Record{}, nil, err
	}
	key, err := ref.ValueCopy(nil)
	if err != nil {
		return candidate.Record{}, nil, err
	}
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return candidate.Record{}, nil, apperrors.ErrNotFound
	}
	if err != nil {
		return candidate.Record{}, nil, err
	}
	rec, err := decode(item)
	return rec, key, err
}

func decode(item *badger.Item) (candidate.Record, error) {
	var s stored
	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &s)
	})
	if err != nil {
		return candidate.Record{}, err
	}
	return s.record(), nil
}
