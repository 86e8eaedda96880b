package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/whiteboard/pkg/cache"
	"github.com/matzehuels/whiteboard/pkg/errors"
)

// Backend names.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Backends lists the supported backend names.
var Backends = []string{BackendFile, BackendMemory, BackendRedis, BackendMongo}

// Options selects and configures a backend for Open.
type Options struct {
	Backend string

	Dir string // file

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	MongoURI      string
	MongoDatabase string
}

// Open connects to the configured backend. Network backends are pinged,
// with retries, before Open returns; the returned store owns the connection.
func Open(ctx context.Context, opts Options) (Store, error) {
	if err := errors.ValidateFormat(opts.Backend, Backends); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", opts.Backend)
	}
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return openRedis(ctx, opts)
	case BackendMongo:
		return openMongo(ctx, opts)
	default:
		return NewFileStore(opts.Dir)
	}
}

func openRedis(ctx context.Context, opts Options) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})
	err := cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect redis %s", opts.RedisAddr)
	}
	return newRecordStore(BackendRedis, newRedisBackend(client, opts.RedisPrefix, true)), nil
}

func openMongo(ctx context.Context, opts Options) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.MongoURI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect mongo")
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongo")
	}
	db := opts.MongoDatabase
	if db == "" {
		db = "whiteboard"
	}
	return newRecordStore(BackendMongo, newMongoBackend(client, db, true)), nil
}

// Describe returns a one-line description of opts for logs.
func (o Options) Describe() string {
	switch o.Backend {
	case BackendFile:
		return fmt.Sprintf("file:%s", o.Dir)
	case BackendRedis:
		return fmt.Sprintf("redis://%s/%d", o.RedisAddr, o.RedisDB)
	case BackendMongo:
		return fmt.Sprintf("mongo:%s", o.MongoDatabase)
	default:
		return o.Backend
	}
}
