package server

import (
	"bytes"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	calls int
	err   error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func TestCloseAll_ClosesEveryResource(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	failing := &countingCloser{err: errors.New("already closed")}
	db := &countingCloser{}

	closeAll(&logger, failing, db)

	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, db.calls)
	assert.Contains(t, buf.String(), "already closed")
}

func TestCloseAll_ReleasesRedisClient(t *testing.T) {
	logger := zerolog.Nop()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})

	closeAll(&logger, client)

	require.ErrorIs(t, client.Close(), redis.ErrClosed)
}
