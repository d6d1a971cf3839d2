package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/metrics"
)

var ErrConnectExhausted = errors.New("failed to connect to MongoDB")

// Client is the part of *mongo.Client the connector needs.
type Client interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
	Disconnect(ctx context.Context) error
}

// Dialer builds a client for uri. mongo.Connect does not touch the network,
// so a successful dial only means the options were valid.
type Dialer func(ctx context.Context, uri string) (Client, error)

func MongoDialer(ctx context.Context, uri string) (Client, error) {
	opts := options.Client().ApplyURI(uri)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

type Options struct {
	URI         string
	Database    string
	MaxAttempts int
	RetryDelay  time.Duration
	PingTimeout time.Duration
	Dial        Dialer // nil means MongoDialer
}

// Connect tries to reach the store up to MaxAttempts times, sleeping
// RetryDelay between attempts. The delay is flat: no backoff, no jitter.
func Connect(ctx context.Context, opts Options, logger *zap.Logger) (Client, *mongo.Database, error) {
	dial := opts.Dial
	if dial == nil {
		dial = MongoDialer
	}
	attempts := opts.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		metrics.ConnectAttempts.Inc()

		client, err := tryConnect(ctx, dial, opts)
		if err == nil {
			logger.Info("Successfully connected to MongoDB",
				zap.String("database", opts.Database),
				zap.Int("attempt", attempt),
			)
			return client, client.Database(opts.Database), nil
		}

		metrics.ConnectFailures.Inc()
		lastErr = err
		logger.Warn("Failed to connect to MongoDB, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Duration("retry_delay", opts.RetryDelay),
			zap.Error(err),
		)

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}

	return nil, nil, fmt.Errorf("%w after %d attempts: %v", ErrConnectExhausted, attempts, lastErr)
}

func tryConnect(ctx context.Context, dial Dialer, opts Options) (Client, error) {
	client, err := dial(ctx, opts.URI)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if opts.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.PingTimeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}
