// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Load returns the JSON array stored under key.
// Absent keys, corrupt values and read errors all yield an empty slice.
func Load[T any](ctx context.Context, kv KV, key string) []T {
	var items []T
	if !LoadValue(ctx, kv, key, &items) || items == nil {
		return []T{}
	}
	return items
}

// Save overwrites the array stored under key. Failures are logged only.
func Save[T any](ctx context.Context, kv KV, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	SaveValue(ctx, kv, key, items)
}

// LoadValue decodes the value under key into v and reports whether it did.
func LoadValue(ctx context.Context, kv KV, key string, v any) bool {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		slog.Warn("storage read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("discarding corrupt stored value", "key", key, "error", err)
		return false
	}
	return true
}

// SaveValue encodes v under key. Failures are logged only.
func SaveValue(ctx context.Context, kv KV, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("storage encode failed", "key", key, "error", err)
		return
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		slog.Warn("storage write failed", "key", key, "error", err)
	}
}

// Collection is a most-recent-first list stored as one JSON array.
type Collection[T any] struct {
	mu  sync.Mutex
	kv  KV
	key string
}

func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

func (c *Collection[T]) All(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Load[T](ctx, c.kv, c.key)
}

// Prepend puts item at the head of the stored list.
func (c *Collection[T]) Prepend(ctx context.Context, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing := Load[T](ctx, c.kv, c.key)
	items := make([]T, 0, len(existing)+1)
	items = append(items, item)
	items = append(items, existing...)
	Save(ctx, c.kv, c.key, items)
}

func (c *Collection[T]) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.kv.Delete(ctx, c.key); err != nil {
		slog.Warn("storage delete failed", "key", c.key, "error", err)
	}
}

func (c *Collection[T]) lock()   { c.mu.Lock() }
func (c *Collection[T]) unlock() { c.mu.Unlock() }

// Clearable is a collection ClearAll can wipe.
type Clearable interface {
	Key() string
	lock()
	unlock()
}

// ClearAll deletes the given collections with a single KV.Delete while
// holding each of their locks. Callers must pass collections in a fixed order.
func ClearAll(ctx context.Context, kv KV, cols ...Clearable) error {
	keys := make([]string, 0, len(cols))
	for _, c := range cols {
		c.lock()
		defer c.unlock()
		keys = append(keys, c.Key())
	}
	if err := kv.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear %v: %w", keys, err)
	}
	return nil
}
