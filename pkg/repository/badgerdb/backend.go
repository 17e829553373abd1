// Package badgerdb stores candidate records in an embedded Badger database.
// It backs single-node deployments and tests that need no PostgreSQL.
package badgerdb

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"
)

// Backend wraps a Badger instance.
type Backend struct {
	db     *badger.DB
	logger *zap.Logger
}

type zapBadgerLogger struct {
	log *zap.SugaredLogger
}

var _ badger.Logger = (*zapBadgerLogger)(nil)

func (l *zapBadgerLogger) Errorf(msg string, items ...any)   { l.log.Errorf(msg, items...) }
func (l *zapBadgerLogger) Warningf(msg string, items ...any) { l.log.Warnf(msg, items...) }
func (l *zapBadgerLogger) Infof(msg string, items ...any)    { l.log.Infof(msg, items...) }
func (l *zapBadgerLogger) Debugf(msg string, items ...any)   { l.log.Debugf(msg, items...) }

// Open opens the database in dir, creating the directory when missing.
// An empty dir opens an in-memory instance.
func Open(dir string, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		info, err := os.Stat(dir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = &zapBadgerLogger{log: logger.Named("badger").Sugar()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Backend{db: db, logger: logger}, nil
}

// OpenInMemory is Open("") for tests and throwaway runs.
func OpenInMemory() (*Backend, error) {
	return Open("", nil)
}

func (b *Backend) Close() error {
	return b.db.Close()
}

// Ping reports whether the database is still usable.
func (b *Backend) Ping() error {
	if b.db.IsClosed() {
		return fmt.Errorf("badger is closed")
	}
	return b.db.View(func(*badger.Txn) error { return nil })
}
