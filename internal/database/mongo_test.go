package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClient struct {
	pingErr      error
	disconnected bool
}

func (c *fakeClient) Ping(ctx context.Context, _ *readpref.ReadPref) error { return c.pingErr }

func (c *fakeClient) Database(string, ...*options.DatabaseOptions) *mongo.Database { return nil }

func (c *fakeClient) Disconnect(context.Context) error {
	c.disconnected = true
	return nil
}

// scriptedDialer fails the first `failures` dials and succeeds afterwards.
func scriptedDialer(failures int, calls *int) Dialer {
	return func(ctx context.Context, uri string) (Client, error) {
		*calls++
		if *calls <= failures {
			return nil, errors.New("connection refused")
		}
		return &fakeClient{}, nil
	}
}

func TestConnect_SucceedsAfterRetries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	calls := 0

	client, _, err := Connect(context.Background(), Options{
		URI:         "mongodb://unused",
		Database:    "todoapp",
		MaxAttempts: 5,
		RetryDelay:  time.Millisecond,
		Dial:        scriptedDialer(2, &calls),
	}, zap.New(core))

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("Successfully connected to MongoDB").Len())
}

func TestConnect_ExhaustsAttempts(t *testing.T) {
	calls := 0
	delay := 5 * time.Millisecond

	start := time.Now()
	_, _, err := Connect(context.Background(), Options{
		MaxAttempts: 10,
		RetryDelay:  delay,
		Dial:        scriptedDialer(100, &calls),
	}, zap.NewNop())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectExhausted)
	assert.Contains(t, err.Error(), "after 10 attempts")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 10, calls)
	// 9 sleeps between 10 attempts, none after the last one
	assert.GreaterOrEqual(t, elapsed, 9*delay)
}

func TestConnect_PingFailureRetriesAndDisconnects(t *testing.T) {
	var clients []*fakeClient
	dial := func(ctx context.Context, uri string) (Client, error) {
		c := &fakeClient{}
		if len(clients) == 0 {
			c.pingErr = errors.New("server selection timeout")
		}
		clients = append(clients, c)
		return c, nil
	}

	_, _, err := Connect(context.Background(), Options{
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
		PingTimeout: time.Second,
		Dial:        dial,
	}, zap.NewNop())

	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.True(t, clients[0].disconnected)
	assert.False(t, clients[1].disconnected)
}

func TestConnect_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	calls := 0

	_, _, err := Connect(ctx, Options{
		MaxAttempts: 10,
		RetryDelay:  time.Hour,
		Dial:        scriptedDialer(100, &calls),
	}, zap.NewNop())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}

func TestConnect_AtLeastOneAttempt(t *testing.T) {
	calls := 0
	_, _, err := Connect(context.Background(), Options{
		MaxAttempts: 0,
		Dial:        scriptedDialer(100, &calls),
	}, zap.NewNop())

	assert.ErrorIs(t, err, ErrConnectExhausted)
	assert.Equal(t, 1, calls)
}

func TestMongoDialer_InvalidURI(t *testing.T) {
	_, err := MongoDialer(context.Background(), "not-a-mongo-uri")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse connection string")
}
