package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Fixed document keys. Each holds one whole JSON document.
const (
	ProjectsKey = "roboshow_projects"
	UsersKey    = "roboshow_users"
	SessionKey  = "roboshow_session"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a flat key/value space of JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

type prefixedStore struct {
	inner  Store
	prefix string
}

// Prefixed namespaces every key of inner with prefix.
func Prefixed(inner Store, prefix string) Store {
	if prefix == "" {
		return inner
	}
	return &prefixedStore{inner: inner, prefix: prefix}
}

func (p *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixedStore) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}

// loadCollection reads the JSON array under key. A missing key is an empty
// collection.
func loadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection rewrites the whole collection under key.
func saveCollection[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
