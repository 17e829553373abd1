package checkers

import (
	"context"
	"time"
)

type blobStore interface {
	Check(ctx context.Context) error
}

// BlobChecker verifies the upload store (local directory or bucket).
type BlobChecker struct {
	store blobStore
}

func NewBlobChecker(store blobStore) *BlobChecker {
	return &BlobChecker{store: store}
}

func (c *BlobChecker) Name() string { return "blob" }

func (c *BlobChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.store.Check(ctx)
}
