package storage

import (
	"context"
	"time"
)

// Keys persisted per visitor. They play the role browser storage plays for a
// single-page client.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "carrinho"
)

// Repository persists small string values per visitor.
type Repository interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Set(ctx context.Context, visitorID, key, value string) error
	Delete(ctx context.Context, visitorID, key string) error
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}

// Bucket is a Repository bound to one visitor.
type Bucket struct {
	repo      Repository
	visitorID string
}

func NewBucket(repo Repository, visitorID string) Bucket {
	return Bucket{repo: repo, visitorID: visitorID}
}

func (b Bucket) VisitorID() string { return b.visitorID }

func (b Bucket) Get(ctx context.Context, key string) (string, error) {
	return b.repo.Get(ctx, b.visitorID, key)
}

func (b Bucket) Set(ctx context.Context, key, value string) error {
	return b.repo.Set(ctx, b.visitorID, key, value)
}

func (b Bucket) Delete(ctx context.Context, key string) error {
	return b.repo.Delete(ctx, b.visitorID, key)
}
