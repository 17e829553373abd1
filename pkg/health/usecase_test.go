package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestReady(t *testing.T) {
	a := &stubChecker{name: "postgres"}
	b := &stubChecker{name: "blob"}
	require.NoError(t, NewService(a, nil, b).Ready(context.Background()))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestReadyStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("connection refused")
	a := &stubChecker{name: "postgres", err: boom}
	b := &stubChecker{name: "blob"}

	err := NewService(a, b).Ready(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "postgres")
	assert.Zero(t, b.calls)
}
