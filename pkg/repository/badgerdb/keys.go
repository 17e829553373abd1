package badgerdb

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

// Data keys sort by creation time, then id: candidate:<created BE><id>.
// The id index maps candidate_id:<id> to the data key.
const (
	recordPrefix = "candidate:"
	idPrefix     = "candidate_id:"
)

func recordKey(created time.Time, id uuid.UUID) []byte {
	key := make([]byte, 0, len(recordPrefix)+8+16)
	key = append(key, recordPrefix...)
	// sign bit flipped so pre-1970 times still sort first
	key = binary.BigEndian.AppendUint64(key, uint64(created.UnixNano())^(1<<63))
	return append(key, id[:]...)
}

func idKey(id uuid.UUID) []byte {
	key := make([]byte, 0, len(idPrefix)+16)
	key = append(key, idPrefix...)
	return append(key, id[:]...)
}

// recordSeekLast is greater than any data key.
func recordSeekLast() []byte {
	key := []byte(recordPrefix)
	for i := 0; i < 8+16+1; i++ {
		key = append(key, 0xFF)
	}
	return key
}
