package checkers

import "context"

// Pinger is satisfied by badgerdb.Backend.
type Pinger interface {
	Ping() error
}

type BadgerChecker struct {
	db Pinger
}

func NewBadgerChecker(db Pinger) *BadgerChecker {
	return &BadgerChecker{db: db}
}

func (c *BadgerChecker) Name() string { return "badger" }

func (c *BadgerChecker) Check(context.Context) error {
	return c.db.Ping()
}
