// Package kvcache is a badger-backed TTL cache for provider responses. Keys
// are derived from an operation name plus its ordered arguments; values are
// gob-encoded. Expired entries are evicted lazily on read, so cold and warm
// lookups of live data stay consistent within the TTL window.
package kvcache

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"strings"
	"time"

	"github.com/albertinopadin/baseball-mcp/lib/timezone"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/kvcache")

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = badger.ErrKeyNotFound

type entry struct {
	Value     []byte
	ExpiresAt int64
}

type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// Open opens or creates a cache at dir.
func Open(dir string, ttl time.Duration) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// OpenInMemory opens an ephemeral cache, used in tests and one-shot CLI runs.
func OpenInMemory(ttl time.Duration) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Key derives the cache key for an operation and its ordered arguments. The
// argument list is hashed so arbitrary user input cannot blow up key size.
func Key(op string, args ...string) string {
	sum := sha1.Sum([]byte(op + "|" + strings.Join(args, "|")))
	return op + ":" + hex.EncodeToString(sum[:])
}

// Get decodes the cached value for key into out. Returns ErrMiss when the key
// is absent or past its TTL; expired entries are deleted on the way out.
func (c *Cache) Get(ctx context.Context, key string, out any) error {
	_, span := tracer.Start(ctx, "get")
	defer span.End()
	span.SetAttributes(attribute.String("cache_key", key))

	tx := c.db.NewTransaction(false)
	defer tx.Discard()

	item, err := tx.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return ErrMiss
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return err
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy cached item")
		return err
	}

	var cached entry
	if err := gob.NewDecoder(bytes.NewBuffer(serialized)).Decode(&cached); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached item")
		return err
	}

	if timezone.Now().Unix() >= cached.ExpiresAt {
		span.AddEvent("delete expired cache key")

		wtx := c.db.NewTransaction(true)
		defer wtx.Commit()
		if err := wtx.Delete([]byte(key)); err != nil {
			span.RecordError(err)
		}
		return ErrMiss
	}

	if err := gob.NewDecoder(bytes.NewBuffer(cached.Value)).Decode(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached value")
		return err
	}
	return nil
}

// Set stores value under key with the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	_, span := tracer.Start(ctx, "set")
	defer span.End()
	span.SetAttributes(attribute.String("cache_key", key))

	encoded := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(encoded).Encode(value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize value")
		return err
	}
	serialized := bytes.NewBuffer(nil)
	err := gob.NewEncoder(serialized).Encode(entry{
		Value:     encoded.Bytes(),
		ExpiresAt: timezone.Now().Add(c.ttl).Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize cache entry")
		return err
	}

	tx := c.db.NewTransaction(true)
	defer tx.Commit()

	if err := tx.Set([]byte(key), serialized.Bytes()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set badger item")
		return err
	}
	return nil
}
